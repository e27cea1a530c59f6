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

package fake

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/agiledragon/gomonkey/v2"
	. "github.com/smartystreets/goconvey/convey"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ankitsriv76/delfin/pkg/common"
	"github.com/ankitsriv76/delfin/pkg/config"
	"github.com/ankitsriv76/delfin/pkg/driver"
	"github.com/ankitsriv76/delfin/pkg/util"
)

const testStorageID = "storage-1"

// testOptions zeroes the latency window so suites do not sleep.
func testOptions() config.FakeDriver {
	return config.FakeDriver{
		PoolRange:      "1-100",
		VolumeRange:    "1-2000",
		APITimeRange:   "0-0",
		PageQueryLimit: 500,
		PerfValueRange: "1-4",
	}
}

func newTestDriver(t *testing.T, opts config.FakeDriver) *Driver {
	t.Helper()
	drv, err := New(driver.AccessInfo{StorageID: testStorageID}, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return drv
}

func TestNew(t *testing.T) {
	Convey("Test New", t, func() {
		Convey("normal", func() {
			drv, err := New(driver.AccessInfo{StorageID: testStorageID}, testOptions())
			So(err, ShouldBeNil)
			So(drv, ShouldNotBeNil)
		})
		Convey("malformed pool range", func() {
			opts := testOptions()
			opts.PoolRange = "1~100"
			_, err := New(driver.AccessInfo{}, opts)
			So(status.Code(err), ShouldEqual, codes.InvalidArgument)
		})
		Convey("malformed volume range", func() {
			opts := testOptions()
			opts.VolumeRange = "many"
			_, err := New(driver.AccessInfo{}, opts)
			So(status.Code(err), ShouldEqual, codes.InvalidArgument)
		})
		Convey("malformed api time range", func() {
			opts := testOptions()
			opts.APITimeRange = "0.1-0.5-0.9"
			_, err := New(driver.AccessInfo{}, opts)
			So(status.Code(err), ShouldEqual, codes.InvalidArgument)
		})
		Convey("malformed perf value range", func() {
			opts := testOptions()
			opts.PerfValueRange = "x-4"
			_, err := New(driver.AccessInfo{}, opts)
			So(status.Code(err), ShouldEqual, codes.InvalidArgument)
		})
		Convey("page limit below one", func() {
			opts := testOptions()
			opts.PageQueryLimit = 0
			_, err := New(driver.AccessInfo{}, opts)
			So(status.Code(err), ShouldEqual, codes.InvalidArgument)
		})
	})
}

func TestGetStorage(t *testing.T) {
	drv := newTestDriver(t, testOptions())

	Convey("Test GetStorage", t, func() {
		storage, err := drv.GetStorage(context.Background())
		So(err, ShouldBeNil)
		So(storage.Name, ShouldEqual, "fake_driver")
		So(storage.Vendor, ShouldEqual, "fake_vendor")
		So(storage.Model, ShouldEqual, "fake_model")
		So(storage.Status, ShouldEqual, common.StorageNormal)
		So(storage.FirmwareVersion, ShouldEqual, "1.0.0")
		So(storage.Location, ShouldEqual, "HK")
		So(storage.SerialNumber, ShouldNotBeEmpty)
		So(storage.UsedCapacity+storage.FreeCapacity, ShouldEqual, storage.TotalCapacity)
		So(storage.TotalCapacity, ShouldBeBetweenOrEqual, 1000, 2000)
		So(storage.RawCapacity, ShouldBeBetweenOrEqual, 2000, 3000)
		So(storage.SubscribedCapacity, ShouldBeBetweenOrEqual, 3000, 4000)

		Convey("a fresh serial number per call", func() {
			again, err := drv.GetStorage(context.Background())
			So(err, ShouldBeNil)
			So(again.SerialNumber, ShouldNotEqual, storage.SerialNumber)
		})
	})
}

func TestListStoragePools(t *testing.T) {
	opts := testOptions()
	opts.PoolRange = "3-7"
	drv := newTestDriver(t, opts)

	Convey("Test ListStoragePools", t, func() {
		for i := 0; i < 20; i++ {
			pools, err := drv.ListStoragePools(context.Background())
			So(err, ShouldBeNil)
			So(len(pools), ShouldBeBetweenOrEqual, 3, 7)
			for idx, pool := range pools {
				So(pool.Name, ShouldEqual, fmt.Sprintf("fake_pool_%d", idx))
				So(pool.NativeStoragePoolID, ShouldEqual, fmt.Sprintf("fake_original_id_%d", idx))
				So(pool.StorageID, ShouldEqual, testStorageID)
				So(pool.Description, ShouldEqual, "Fake Pool")
				So(pool.Status, ShouldEqual, common.StatusNormal)
				So(pool.UsedCapacity+pool.FreeCapacity, ShouldEqual, pool.TotalCapacity)
			}
		}
	})
}

func TestListVolumesPagination(t *testing.T) {
	type args struct {
		volumeRange string
		pageLimit   int
	}
	tests := []struct {
		name      string
		args      args
		wantCount int
		wantPages int
	}{
		{
			name:      "test-multiple-full-pages",
			args:      args{volumeRange: "90-90", pageLimit: 30},
			wantCount: 90,
			wantPages: 3,
		},
		{
			name:      "test-partial-last-page",
			args:      args{volumeRange: "100-100", pageLimit: 30},
			wantCount: 100,
			wantPages: 4,
		},
		{
			name:      "test-single-page",
			args:      args{volumeRange: "10-10", pageLimit: 500},
			wantCount: 10,
			wantPages: 1,
		},
		{
			name:      "test-page-limit-one",
			args:      args{volumeRange: "5-5", pageLimit: 1},
			wantCount: 5,
			wantPages: 5,
		},
		{
			name:      "test-zero-volumes",
			args:      args{volumeRange: "0-0", pageLimit: 1},
			wantCount: 0,
			wantPages: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A nonzero window plus a stubbed sleep counts the page queries.
			opts := testOptions()
			opts.APITimeRange = "1-1"
			opts.VolumeRange = tt.args.volumeRange
			opts.PageQueryLimit = tt.args.pageLimit
			drv := newTestDriver(t, opts)

			pages := 0
			patch := ApplyFunc(time.Sleep, func(d time.Duration) {
				pages++
			})
			defer patch.Reset()

			volumes, err := drv.ListVolumes(context.Background())
			if err != nil {
				t.Fatalf("ListVolumes() error = %v", err)
			}
			if len(volumes) != tt.wantCount {
				t.Errorf("ListVolumes() count = %d, want %d", len(volumes), tt.wantCount)
			}
			if pages != tt.wantPages {
				t.Errorf("ListVolumes() page queries = %d, want %d", pages, tt.wantPages)
			}
			for i, vol := range volumes {
				if vol.Name != fmt.Sprintf("fake_vol_%d", i) {
					t.Fatalf("volume %d name = %s, want fake_vol_%d", i, vol.Name, i)
				}
				if vol.WWN != fmt.Sprintf("fake_wwn_%d", i) {
					t.Fatalf("volume %d wwn = %s, want fake_wwn_%d", i, vol.WWN, i)
				}
				if vol.NativeVolumeID != fmt.Sprintf("fake_original_id_%d", i) {
					t.Fatalf("volume %d native id = %s", i, vol.NativeVolumeID)
				}
				if vol.UsedCapacity+vol.FreeCapacity != vol.TotalCapacity {
					t.Fatalf("volume %d capacity invariant broken", i)
				}
			}
		})
	}
}

func TestListVolumesWithinBounds(t *testing.T) {
	opts := testOptions()
	opts.VolumeRange = "2-9"
	drv := newTestDriver(t, opts)
	for i := 0; i < 20; i++ {
		volumes, err := drv.ListVolumes(context.Background())
		if err != nil {
			t.Fatalf("ListVolumes() error = %v", err)
		}
		if len(volumes) < 2 || len(volumes) > 9 {
			t.Fatalf("ListVolumes() count = %d, want within [2, 9]", len(volumes))
		}
	}
}

func TestListControllers(t *testing.T) {
	drv := newTestDriver(t, testOptions())

	Convey("Test ListControllers", t, func() {
		for i := 0; i < 20; i++ {
			controllers, err := drv.ListControllers(context.Background())
			So(err, ShouldBeNil)
			So(len(controllers), ShouldBeBetweenOrEqual, 1, 5)
			for idx, ctrl := range controllers {
				So(ctrl.Name, ShouldEqual, fmt.Sprintf("fake_ctrl_%d", idx))
				So(ctrl.NativeControllerID, ShouldEqual, fmt.Sprintf("fake_original_id_%d", idx))
				So(util.ContainsString(common.AllControllerStatus, ctrl.Status), ShouldBeTrue)
				So(util.ContainsString(cpuModels, ctrl.CPUInfo), ShouldBeTrue)
				So(ctrl.MemorySize, ShouldBeBetweenOrEqual, 1000, 2000)
				So(ctrl.Location, ShouldStartWith, "loc_")
				So(ctrl.SoftVersion, ShouldStartWith, "ver_")
			}
		}
	})
}

func TestCollectArrayMetrics(t *testing.T) {
	opts := testOptions()
	opts.PerfValueRange = "2-3"
	drv := newTestDriver(t, opts)

	Convey("Test CollectArrayMetrics", t, func() {
		records, err := drv.CollectArrayMetrics(context.Background(), testStorageID, 0, false)
		So(err, ShouldBeNil)

		metricCount := len(common.ArrayMetrics)
		So(len(records)%metricCount, ShouldEqual, 0)
		batches := len(records) / metricCount
		So(batches, ShouldBeBetweenOrEqual, 1, 10)

		for _, record := range records {
			So(util.ContainsString(common.ArrayMetrics, record.Name), ShouldBeTrue)
			So(record.Labels["storage_id"], ShouldEqual, testStorageID)
			So(record.Labels["resource_type"], ShouldEqual, common.ResourceTypeArray)
			So(len(record.Values), ShouldBeBetweenOrEqual, 2, 3)
			for _, v := range record.Values {
				So(v, ShouldBeBetweenOrEqual, 1, 100)
			}
		}

		Convey("batches share one series per metric", func() {
			if batches > 1 {
				for i := 0; i < metricCount; i++ {
					So(records[i].Name, ShouldEqual, records[i+metricCount].Name)
					So(records[i].Values, ShouldResemble, records[i+metricCount].Values)
				}
			}
		})
	})
}

func TestNoopAlertSurface(t *testing.T) {
	drv := newTestDriver(t, testOptions())
	ctx := context.Background()

	Convey("Test alert and trap surface", t, func() {
		So(drv.ResetConnection(ctx), ShouldBeNil)
		So(drv.AddTrapConfig(ctx, driver.TrapConfig{Host: "127.0.0.1", Port: 162}), ShouldBeNil)
		So(drv.RemoveTrapConfig(ctx, driver.TrapConfig{}), ShouldBeNil)
		So(drv.ClearAlert(ctx, "42"), ShouldBeNil)

		alert, err := drv.ParseAlert(ctx, map[string]string{"oid": "1.3.6.1"})
		So(err, ShouldBeNil)
		So(alert, ShouldBeNil)

		alerts, err := drv.ListAlerts(ctx, nil)
		So(err, ShouldBeNil)
		So(alerts, ShouldBeEmpty)
	})
}

func TestEndToEndScenario(t *testing.T) {
	opts := config.FakeDriver{
		PoolRange:      "2-2",
		VolumeRange:    "0-0",
		APITimeRange:   "0-0",
		PageQueryLimit: 1,
		PerfValueRange: "1-4",
	}
	drv := newTestDriver(t, opts)

	pools, err := drv.ListStoragePools(context.Background())
	if err != nil {
		t.Fatalf("ListStoragePools() error = %v", err)
	}
	if len(pools) != 2 {
		t.Errorf("ListStoragePools() count = %d, want 2", len(pools))
	}

	volumes, err := drv.ListVolumes(context.Background())
	if err != nil {
		t.Fatalf("ListVolumes() error = %v", err)
	}
	if len(volumes) != 0 {
		t.Errorf("ListVolumes() count = %d, want 0", len(volumes))
	}
}

func TestRandomCapacity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		total, used, free := randomCapacity()
		if total < 1000 || total > 2000 {
			t.Fatalf("total = %d, want within [1000, 2000]", total)
		}
		if used < 0 || used > total {
			t.Fatalf("used = %d, want within [0, %d]", used, total)
		}
		if used+free != total {
			t.Fatalf("used+free = %d, want %d", used+free, total)
		}
	}
}
