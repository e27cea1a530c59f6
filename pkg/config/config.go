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

// Package config carries the driver options the platform hands to a driver
// at construction time. Options are resolved once (defaults, then an
// optional YAML file, then environment overrides) and are immutable
// afterwards; drivers keep their own copy.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults for the fake driver options.
const (
	DefaultPoolRange      = "1-100"
	DefaultVolumeRange    = "1-2000"
	DefaultAPITimeRange   = "0.1-0.5"
	DefaultPageQueryLimit = 500
	DefaultPerfValueRange = "1-4"
)

// Environment overrides, applied after the config file.
const (
	EnvPoolRange      = "FAKE_POOL_RANGE"
	EnvVolumeRange    = "FAKE_VOLUME_RANGE"
	EnvAPITimeRange   = "FAKE_API_TIME_RANGE"
	EnvPageQueryLimit = "FAKE_PAGE_QUERY_LIMIT"
	EnvPerfValueRange = "FAKE_PERF_VALUE_RANGE"
)

// FakeDriver holds the fake driver's tunables. Ranges are "<min>-<max>"
// strings; they are validated when a driver instance is built.
type FakeDriver struct {
	// PoolRange bounds the pool count drawn per call.
	PoolRange string `yaml:"fake_pool_range"`
	// VolumeRange bounds the volume count drawn per call.
	VolumeRange string `yaml:"fake_volume_range"`
	// APITimeRange bounds the simulated per-call latency, in seconds.
	APITimeRange string `yaml:"fake_api_time_range"`
	// PageQueryLimit is the volume count generated per simulated page query.
	PageQueryLimit int `yaml:"fake_page_query_limit"`
	// PerfValueRange bounds the point count of each generated time series.
	PerfValueRange string `yaml:"fake_perf_value_range"`
}

// Config is the top-level option block.
type Config struct {
	FakeDriver FakeDriver `yaml:"fake_driver"`
}

// Default returns the built-in option values.
func Default() Config {
	return Config{
		FakeDriver: FakeDriver{
			PoolRange:      DefaultPoolRange,
			VolumeRange:    DefaultVolumeRange,
			APITimeRange:   DefaultAPITimeRange,
			PageQueryLimit: DefaultPageQueryLimit,
			PerfValueRange: DefaultPerfValueRange,
		},
	}
}

// Load resolves the configuration: defaults, then the YAML file at path if
// one is given, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPoolRange); v != "" {
		c.FakeDriver.PoolRange = v
	}
	if v := os.Getenv(EnvVolumeRange); v != "" {
		c.FakeDriver.VolumeRange = v
	}
	if v := os.Getenv(EnvAPITimeRange); v != "" {
		c.FakeDriver.APITimeRange = v
	}
	if v := os.Getenv(EnvPerfValueRange); v != "" {
		c.FakeDriver.PerfValueRange = v
	}
	if v := os.Getenv(EnvPageQueryLimit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvPageQueryLimit)
		}
		c.FakeDriver.PageQueryLimit = limit
	}
	return nil
}
