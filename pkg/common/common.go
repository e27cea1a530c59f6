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

// Package common holds the constants shared between the platform and its
// storage drivers: resource statuses, resource types and the supported
// array-level performance metric names.
package common

// Storage device status
const (
	StorageNormal   = "normal"
	StorageOffline  = "offline"
	StorageAbnormal = "abnormal"
	StorageDegraded = "degraded"
)

// Storage pool / volume status
const (
	StatusNormal   = "normal"
	StatusOffline  = "offline"
	StatusAbnormal = "abnormal"
)

// Controller status
const (
	ControllerNormal   = "normal"
	ControllerOffline  = "offline"
	ControllerFault    = "fault"
	ControllerDegraded = "degraded"
	ControllerUnknown  = "unknown"
)

// AllControllerStatus enumerates every state a controller may report.
var AllControllerStatus = []string{
	ControllerNormal,
	ControllerOffline,
	ControllerFault,
	ControllerDegraded,
	ControllerUnknown,
}

// Resource types carried in metric labels.
const (
	ResourceTypeArray      = "array"
	ResourceTypePool       = "storagePool"
	ResourceTypeVolume     = "volume"
	ResourceTypeController = "controller"
)

// ArrayMetrics is the fixed set of array-level performance metrics a driver
// may report.
var ArrayMetrics = []string{
	"iops",
	"readIops",
	"writeIops",
	"throughput",
	"readThroughput",
	"writeThroughput",
	"responseTime",
}
