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

package driver

// AccessInfo identifies one logical storage device and carries the
// connection parameters a driver needs to reach it. The fake driver only
// uses the storage id.
type AccessInfo struct {
	StorageID string `json:"storage_id"`
	Vendor    string `json:"vendor"`
	Model     string `json:"model"`
	RestHost  string `json:"rest_host,omitempty"`
	RestPort  int    `json:"rest_port,omitempty"`
}

// StorageDevice describes one storage array. Capacities are reported in a
// consistent unit chosen by the driver; used + free always equals total.
type StorageDevice struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Vendor             string `json:"vendor"`
	Model              string `json:"model"`
	Status             string `json:"status"`
	SerialNumber       string `json:"serial_number"`
	FirmwareVersion    string `json:"firmware_version"`
	Location           string `json:"location"`
	TotalCapacity      int64  `json:"total_capacity"`
	UsedCapacity       int64  `json:"used_capacity"`
	FreeCapacity       int64  `json:"free_capacity"`
	RawCapacity        int64  `json:"raw_capacity"`
	SubscribedCapacity int64  `json:"subscribed_capacity"`
}

// StoragePool is a logical grouping of raw capacity within a device.
type StoragePool struct {
	Name                string `json:"name"`
	StorageID           string `json:"storage_id"`
	NativeStoragePoolID string `json:"native_storage_pool_id"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	TotalCapacity       int64  `json:"total_capacity"`
	UsedCapacity        int64  `json:"used_capacity"`
	FreeCapacity        int64  `json:"free_capacity"`
}

// Volume is an allocatable unit of storage presented to consumers.
type Volume struct {
	Name           string `json:"name"`
	StorageID      string `json:"storage_id"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	NativeVolumeID string `json:"native_volume_id"`
	WWN            string `json:"wwn"`
	TotalCapacity  int64  `json:"total_capacity"`
	UsedCapacity   int64  `json:"used_capacity"`
	FreeCapacity   int64  `json:"free_capacity"`
}

// StorageController is a management unit within a storage device.
type StorageController struct {
	Name               string `json:"name"`
	StorageID          string `json:"storage_id"`
	NativeControllerID string `json:"native_controller_id"`
	Location           string `json:"location"`
	Status             string `json:"status"`
	MemorySize         int64  `json:"memory_size"`
	CPUInfo            string `json:"cpu_info"`
	SoftVersion        string `json:"soft_version"`
}

// MetricRecord is one named, labeled time series for a monitored resource.
// Values maps millisecond epoch timestamps to sampled values.
type MetricRecord struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
	Values map[int64]float64 `json:"values"`
}

// TrapConfig describes where a driver should deliver SNMP traps.
type TrapConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Community string `json:"community"`
	Version   string `json:"version"`
}

// Alert is one event reported by or parsed out of a storage backend.
type Alert struct {
	AlertID        string `json:"alert_id"`
	AlertName      string `json:"alert_name"`
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Type           string `json:"type"`
	SequenceNumber string `json:"sequence_number"`
	OccurTime      int64  `json:"occur_time"`
	Description    string `json:"description"`
	ResourceType   string `json:"resource_type"`
	Location       string `json:"location"`
}

// AlertQuery narrows a ListAlerts call to a time window, in millisecond
// epoch timestamps. A nil query means all alerts.
type AlertQuery struct {
	BeginTime int64 `json:"begin_time"`
	EndTime   int64 `json:"end_time"`
}
