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

// Package fake implements a storage driver without a backend. Every call
// resamples randomized records conforming to the driver contract, so
// clients, dashboards and test harnesses can be exercised end to end.
package fake

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"k8s.io/klog"

	"github.com/ankitsriv76/delfin/pkg/common"
	"github.com/ankitsriv76/delfin/pkg/config"
	"github.com/ankitsriv76/delfin/pkg/driver"
	"github.com/ankitsriv76/delfin/pkg/util"
)

// DriverName is the name the fake driver registers under.
const DriverName = "fake_storage"

const (
	minControllers, maxControllers = 1, 5
	minMetricBatch, maxMetricBatch = 1, 10
	minCapacity, maxCapacity       = 1000, 2000
	minRawCap, maxRawCap           = 2000, 3000
	minSubscribed, maxSubscribed   = 3000, 4000
)

var cpuModels = []string{"Intel Xenon", "Intel Core ix", "ARM"}

func init() {
	driver.Register(DriverName, func(info driver.AccessInfo) (driver.StorageDriver, error) {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		return New(info, cfg.FakeDriver)
	})
}

// Driver resamples its answers on every call; no state is shared between
// calls beyond the bounds fixed at construction, so one instance is safe
// for concurrent use.
type Driver struct {
	storageID string
	wait      waitWindow

	minPool, maxPool     int
	minVolume, maxVolume int
	minPerf, maxPerf     int
	pageLimit            int
}

var _ driver.StorageDriver = &Driver{}

// New builds a fake driver for one storage device. Malformed ranges and a
// page limit below 1 fail with InvalidArgument.
func New(info driver.AccessInfo, opts config.FakeDriver) (*Driver, error) {
	minWait, maxWait, err := util.ParseFloatRange(opts.APITimeRange)
	if err != nil {
		return nil, err
	}
	minPool, maxPool, err := util.ParseIntRange(opts.PoolRange)
	if err != nil {
		return nil, err
	}
	minVolume, maxVolume, err := util.ParseIntRange(opts.VolumeRange)
	if err != nil {
		return nil, err
	}
	minPerf, maxPerf, err := util.ParseIntRange(opts.PerfValueRange)
	if err != nil {
		return nil, err
	}
	if opts.PageQueryLimit < 1 {
		klog.Errorf("Invalid page query limit: %d", opts.PageQueryLimit)
		return nil, status.Errorf(codes.InvalidArgument, "invalid page query limit: %d", opts.PageQueryLimit)
	}
	return &Driver{
		storageID: info.StorageID,
		wait:      waitWindow{low: minWait, high: maxWait},
		minPool:   minPool,
		maxPool:   maxPool,
		minVolume: minVolume,
		maxVolume: maxVolume,
		minPerf:   minPerf,
		maxPerf:   maxPerf,
		pageLimit: opts.PageQueryLimit,
	}, nil
}

// ResetConnection is a no-op; there is no backend session to reset.
func (d *Driver) ResetConnection(ctx context.Context) error {
	return nil
}

// GetStorage returns a storage device record with a fresh serial number.
func (d *Driver) GetStorage(ctx context.Context) (*driver.StorageDevice, error) {
	d.wait.wait()
	total, used, free := randomCapacity()
	return &driver.StorageDevice{
		Name:               "fake_driver",
		Description:        "fake driver.",
		Vendor:             "fake_vendor",
		Model:              "fake_model",
		Status:             common.StorageNormal,
		SerialNumber:       uuid.New().String(),
		FirmwareVersion:    "1.0.0",
		Location:           "HK",
		TotalCapacity:      total,
		UsedCapacity:       used,
		FreeCapacity:       free,
		RawCapacity:        int64(randInt(minRawCap, maxRawCap)),
		SubscribedCapacity: int64(randInt(minSubscribed, maxSubscribed)),
	}, nil
}

// ListStoragePools generates a pool count within the configured bounds.
func (d *Driver) ListStoragePools(ctx context.Context) ([]*driver.StoragePool, error) {
	d.wait.wait()
	count := randInt(d.minPool, d.maxPool)
	klog.Infof("Fake pools for %s: %d", d.storageID, count)
	pools := make([]*driver.StoragePool, 0, count)
	for i := 0; i < count; i++ {
		total, used, free := randomCapacity()
		pools = append(pools, &driver.StoragePool{
			Name:                "fake_pool_" + strconv.Itoa(i),
			StorageID:           d.storageID,
			NativeStoragePoolID: "fake_original_id_" + strconv.Itoa(i),
			Description:         "Fake Pool",
			Status:              common.StatusNormal,
			TotalCapacity:       total,
			UsedCapacity:        used,
			FreeCapacity:        free,
		})
	}
	return pools, nil
}

// ListVolumes generates a volume count within the configured bounds, in
// pages of at most the configured page limit. Each page pays its own
// simulated latency, the way a real backend's paged queries would.
func (d *Driver) ListVolumes(ctx context.Context) ([]*driver.Volume, error) {
	count := randInt(d.minVolume, d.maxVolume)
	klog.Infof("Fake volumes for %s: %d", d.storageID, count)
	volumes := make([]*driver.Volume, 0, count)
	for start := 0; start < count; start += d.pageLimit {
		end := start + d.pageLimit
		if end > count {
			end = count
		}
		volumes = append(volumes, d.volumeRange(start, end)...)
	}
	return volumes, nil
}

// volumeRange generates one page of volumes for indices [start, end).
func (d *Driver) volumeRange(start, end int) []*driver.Volume {
	d.wait.wait()
	volumes := make([]*driver.Volume, 0, end-start)
	for i := start; i < end; i++ {
		total, used, free := randomCapacity()
		volumes = append(volumes, &driver.Volume{
			Name:           "fake_vol_" + strconv.Itoa(i),
			StorageID:      d.storageID,
			Description:    "Fake Volume",
			Status:         common.StatusNormal,
			NativeVolumeID: "fake_original_id_" + strconv.Itoa(i),
			WWN:            "fake_wwn_" + strconv.Itoa(i),
			TotalCapacity:  total,
			UsedCapacity:   used,
			FreeCapacity:   free,
		})
	}
	return volumes
}

// ListControllers generates between 1 and 5 controllers.
func (d *Driver) ListControllers(ctx context.Context) ([]*driver.StorageController, error) {
	count := randInt(minControllers, maxControllers)
	klog.Infof("Fake controllers for %s: %d", d.storageID, count)
	controllers := make([]*driver.StorageController, 0, count)
	for i := 0; i < count; i++ {
		total, _, _ := randomCapacity()
		controllers = append(controllers, &driver.StorageController{
			Name:               "fake_ctrl_" + strconv.Itoa(i),
			StorageID:          d.storageID,
			NativeControllerID: "fake_original_id_" + strconv.Itoa(i),
			Location:           "loc_" + strconv.Itoa(randInt(0, 99)),
			Status:             common.AllControllerStatus[randInt(0, len(common.AllControllerStatus)-1)],
			MemorySize:         total,
			CPUInfo:            cpuModels[randInt(0, len(cpuModels)-1)],
			SoftVersion:        "ver_" + strconv.Itoa(randInt(0, 999)),
		})
	}
	return controllers, nil
}

// AddTrapConfig satisfies the driver contract; the fake has no trap source.
func (d *Driver) AddTrapConfig(ctx context.Context, trapConfig driver.TrapConfig) error {
	return nil
}

// RemoveTrapConfig satisfies the driver contract.
func (d *Driver) RemoveTrapConfig(ctx context.Context, trapConfig driver.TrapConfig) error {
	return nil
}

// ParseAlert satisfies the driver contract.
func (d *Driver) ParseAlert(ctx context.Context, alert map[string]string) (*driver.Alert, error) {
	return nil, nil
}

// ClearAlert satisfies the driver contract.
func (d *Driver) ClearAlert(ctx context.Context, sequenceNumber string) error {
	return nil
}

// ListAlerts satisfies the driver contract.
func (d *Driver) ListAlerts(ctx context.Context, query *driver.AlertQuery) ([]*driver.Alert, error) {
	return nil, nil
}

// CollectArrayMetrics emits between 1 and 10 metric batches. All batches of
// one call share the same time series per metric name. interval and
// isHistory are accepted but do not change the output shape.
func (d *Driver) CollectArrayMetrics(ctx context.Context, storageID string, interval int64, isHistory bool) ([]*driver.MetricRecord, error) {
	d.wait.wait()
	batches := randInt(minMetricBatch, maxMetricBatch)
	klog.Infof("Fake array metric batches for %s: %d", storageID, batches)
	labels := map[string]string{
		"storage_id":    storageID,
		"resource_type": common.ResourceTypeArray,
	}
	series := d.randomPerformance()
	records := make([]*driver.MetricRecord, 0, batches*len(common.ArrayMetrics))
	for i := 0; i < batches; i++ {
		for _, name := range common.ArrayMetrics {
			records = append(records, &driver.MetricRecord{
				Name:   name,
				Labels: labels,
				Values: series[name],
			})
		}
	}
	return records, nil
}

// randomPerformance builds one time series per supported array metric.
// Timestamps increment monotonically from now so the point count is exact.
func (d *Driver) randomPerformance() map[string]map[int64]float64 {
	series := make(map[string]map[int64]float64, len(common.ArrayMetrics))
	for _, name := range common.ArrayMetrics {
		points := randInt(d.minPerf, d.maxPerf)
		values := make(map[int64]float64, points)
		base := time.Now().UnixMilli()
		for i := 0; i < points; i++ {
			values[base+int64(i)] = 1 + rand.Float64()*99
		}
		series[name] = values
	}
	return series
}

// randomCapacity draws a (total, used, free) triple with used+free == total.
func randomCapacity() (total, used, free int64) {
	total = int64(randInt(minCapacity, maxCapacity))
	used = total * int64(randInt(0, 100)) / 100
	free = total - used
	return total, used, free
}

// randInt draws uniformly from [min, max].
func randInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
