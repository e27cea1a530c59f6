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

package main

import (
	"context"
	"encoding/json"
	goflag "flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/ankitsriv76/delfin/pkg/config"
	"github.com/ankitsriv76/delfin/pkg/dashboard"
	"github.com/ankitsriv76/delfin/pkg/driver"
	"github.com/ankitsriv76/delfin/pkg/fake"
	"github.com/ankitsriv76/delfin/pkg/metrics"
)

var (
	cfgFile   string
	storageID string
	port      uint16
	devMode   bool
)

func main() {
	var cmd = &cobra.Command{
		Use:   "fakedriver",
		Short: "fake storage array driver",
		Long: `fakedriver generates randomized storage array telemetry (device,
pools, volumes, controllers, performance metrics) behind the platform's
storage driver contract, for testing clients without a real backend.`,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&storageID, "storage-id", uuid.New().String(), "storage device id")
	goFlag := goflag.CommandLine
	klog.InitFlags(goFlag)
	cmd.PersistentFlags().AddGoFlagSet(goFlag)

	cmd.AddCommand(
		dumpCmd("storage", "Show the generated storage device record", func(ctx context.Context, drv driver.StorageDriver) (interface{}, error) {
			return drv.GetStorage(ctx)
		}),
		dumpCmd("pools", "List generated storage pools", func(ctx context.Context, drv driver.StorageDriver) (interface{}, error) {
			return drv.ListStoragePools(ctx)
		}),
		dumpCmd("volumes", "List generated volumes", func(ctx context.Context, drv driver.StorageDriver) (interface{}, error) {
			return drv.ListVolumes(ctx)
		}),
		dumpCmd("controllers", "List generated controllers", func(ctx context.Context, drv driver.StorageDriver) (interface{}, error) {
			return drv.ListControllers(ctx)
		}),
		dumpCmd("perf", "Collect generated array performance metrics", func(ctx context.Context, drv driver.StorageDriver) (interface{}, error) {
			return drv.CollectArrayMetrics(ctx, storageID, 0, false)
		}),
		serveCmd(),
	)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newDriver builds the fake driver. Without a config file it goes through
// the driver registry, which resolves options from the environment.
func newDriver() (driver.StorageDriver, error) {
	info := driver.AccessInfo{
		StorageID: storageID,
		Vendor:    "fake_vendor",
		Model:     "fake_model",
	}
	if cfgFile == "" {
		return driver.New(fake.DriverName, info)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return fake.New(info, cfg.FakeDriver)
}

func dumpCmd(use, short string, generate func(context.Context, driver.StorageDriver) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := newDriver()
			if err != nil {
				return err
			}
			out, err := generate(context.Background(), drv)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated telemetry over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := newDriver()
			if err != nil {
				return err
			}
			if !devMode {
				gin.SetMode(gin.ReleaseMode)
			}
			r := gin.Default()
			api := dashboard.NewAPI(storageID, drv)
			api.Handle(r.Group("/api/v1"))

			registry := prometheus.NewRegistry()
			registry.MustRegister(metrics.NewArrayCollector(storageID, drv))
			r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

			klog.Infof("Serving fake telemetry for %s on :%d", storageID, port)
			return r.Run(fmt.Sprintf(":%d", port))
		},
	}
	cmd.Flags().Uint16Var(&port, "port", 8088, "port to listen on")
	cmd.Flags().BoolVar(&devMode, "dev", false, "enable dev mode")
	return cmd
}
