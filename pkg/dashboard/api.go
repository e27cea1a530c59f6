/*
Copyright 2023 The SODA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dashboard serves one driver's generated telemetry as JSON, so
// dashboards and client tooling can be pointed at fake data end to end.
package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitsriv76/delfin/pkg/driver"
)

// API wraps one driver instance.
type API struct {
	storageID string
	driver    driver.StorageDriver
}

// NewAPI builds the telemetry API for one storage device.
func NewAPI(storageID string, drv driver.StorageDriver) *API {
	return &API{
		storageID: storageID,
		driver:    drv,
	}
}

// Handle registers the telemetry routes on the given group.
func (api *API) Handle(group *gin.RouterGroup) {
	group.GET("/storage", api.getStorage())
	group.GET("/pools", api.listPools())
	group.GET("/volumes", api.listVolumes())
	group.GET("/controllers", api.listControllers())
	group.GET("/metrics/array", api.collectArrayMetrics())
}

func (api *API) getStorage() gin.HandlerFunc {
	return func(c *gin.Context) {
		storage, err := api.driver.GetStorage(c.Request.Context())
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.IndentedJSON(http.StatusOK, storage)
	}
}

func (api *API) listPools() gin.HandlerFunc {
	return func(c *gin.Context) {
		pools, err := api.driver.ListStoragePools(c.Request.Context())
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.IndentedJSON(http.StatusOK, pools)
	}
}

func (api *API) listVolumes() gin.HandlerFunc {
	return func(c *gin.Context) {
		volumes, err := api.driver.ListVolumes(c.Request.Context())
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.IndentedJSON(http.StatusOK, volumes)
	}
}

func (api *API) listControllers() gin.HandlerFunc {
	return func(c *gin.Context) {
		controllers, err := api.driver.ListControllers(c.Request.Context())
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.IndentedJSON(http.StatusOK, controllers)
	}
}

func (api *API) collectArrayMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := api.driver.CollectArrayMetrics(c.Request.Context(), api.storageID, 0, false)
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.IndentedJSON(http.StatusOK, records)
	}
}
