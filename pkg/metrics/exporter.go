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

// Package metrics exposes a driver's array performance metrics in
// prometheus exposition format.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog"

	"github.com/ankitsriv76/delfin/pkg/common"
	"github.com/ankitsriv76/delfin/pkg/driver"
)

const (
	namespace = "fake"
	subsystem = "array"
)

// ArrayCollector collects one batch of array metrics from a driver per
// scrape. Batches of one collection share a single time series per metric
// name, so each name is exported once, with the newest point's value.
type ArrayCollector struct {
	storageID string
	driver    driver.StorageDriver
	descs     map[string]*prometheus.Desc
}

var _ prometheus.Collector = &ArrayCollector{}

// NewArrayCollector builds a collector over the given driver.
func NewArrayCollector(storageID string, drv driver.StorageDriver) *ArrayCollector {
	descs := make(map[string]*prometheus.Desc, len(common.ArrayMetrics))
	for _, name := range common.ArrayMetrics {
		descs[name] = prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, name),
			"Synthetic array performance metric.",
			[]string{"storage_id", "resource_type"},
			nil,
		)
	}
	return &ArrayCollector{
		storageID: storageID,
		driver:    drv,
		descs:     descs,
	}
}

// Describe implements prometheus.Collector.
func (c *ArrayCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range c.descs {
		ch <- desc
	}
}

// Collect implements prometheus.Collector.
func (c *ArrayCollector) Collect(ch chan<- prometheus.Metric) {
	records, err := c.driver.CollectArrayMetrics(context.Background(), c.storageID, 0, false)
	if err != nil {
		klog.Errorf("Failed to collect array metrics for %s: %v", c.storageID, err)
		return
	}
	seen := make(map[string]bool, len(c.descs))
	for _, record := range records {
		desc, ok := c.descs[record.Name]
		if !ok || seen[record.Name] {
			continue
		}
		seen[record.Name] = true
		ts, value := newestPoint(record.Values)
		if ts == 0 {
			continue
		}
		metric, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, value,
			record.Labels["storage_id"], record.Labels["resource_type"])
		if err != nil {
			klog.Errorf("Failed to build metric %s: %v", record.Name, err)
			continue
		}
		ch <- metric
	}
}

func newestPoint(values map[int64]float64) (int64, float64) {
	var ts int64
	var value float64
	for t, v := range values {
		if t > ts {
			ts, value = t, v
		}
	}
	return ts, value
}
