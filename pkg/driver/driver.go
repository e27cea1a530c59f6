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

// Package driver defines the storage driver contract the platform programs
// against, plus the registry drivers add themselves to.
package driver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"k8s.io/klog"
)

// StorageDriver is the plugin interface every storage array driver
// implements. One instance serves one logical storage device.
type StorageDriver interface {
	// ResetConnection re-establishes the session with the backend.
	ResetConnection(ctx context.Context) error

	// GetStorage returns the storage device record.
	GetStorage(ctx context.Context) (*StorageDevice, error)

	// ListStoragePools returns all storage pools of the device.
	ListStoragePools(ctx context.Context) ([]*StoragePool, error)

	// ListVolumes returns all volumes of the device.
	ListVolumes(ctx context.Context) ([]*Volume, error)

	// ListControllers returns all controllers of the device.
	ListControllers(ctx context.Context) ([]*StorageController, error)

	// AddTrapConfig registers a trap receiver with the backend.
	AddTrapConfig(ctx context.Context, trapConfig TrapConfig) error

	// RemoveTrapConfig deregisters a trap receiver from the backend.
	RemoveTrapConfig(ctx context.Context, trapConfig TrapConfig) error

	// ParseAlert converts a raw trap notification into an Alert.
	ParseAlert(ctx context.Context, alert map[string]string) (*Alert, error)

	// ClearAlert clears the alert with the given sequence number.
	ClearAlert(ctx context.Context, sequenceNumber string) error

	// ListAlerts returns the backend's active alerts within the query window.
	ListAlerts(ctx context.Context, query *AlertQuery) ([]*Alert, error)

	// CollectArrayMetrics returns array-level performance metrics for the
	// device. interval is the sampling interval in seconds; isHistory
	// selects historical rather than live samples.
	CollectArrayMetrics(ctx context.Context, storageID string, interval int64, isHistory bool) ([]*MetricRecord, error)
}

// Factory builds a driver instance for one storage device.
type Factory func(info AccessInfo) (StorageDriver, error)

var factories = make(map[string]Factory)

// Register makes a driver available under the given name. Drivers call it
// from their package init.
func Register(name string, factory Factory) {
	klog.Infof("Registering storage driver: %v", name)
	factories[name] = factory
}

// New builds a driver registered under name for the given device.
func New(name string, info AccessInfo) (StorageDriver, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "storage driver %q is not registered", name)
	}
	return factory(info)
}
