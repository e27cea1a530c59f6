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

package util

import (
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"k8s.io/klog"
)

// ParseIntRange parses a "<min>-<max>" string into its integer bounds.
// Anything that does not split into exactly two integer halves fails with
// an InvalidArgument status.
func ParseIntRange(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	return min, max, nil
}

// ParseFloatRange parses a "<min>-<max>" string into its float bounds.
func ParseFloatRange(s string) (float64, float64, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		klog.Errorf("Invalid range: %s", s)
		return 0, 0, status.Errorf(codes.InvalidArgument, "invalid range: %s", s)
	}
	return min, max, nil
}

// ContainsString reports whether slice holds s.
func ContainsString(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
