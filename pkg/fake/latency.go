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
	"math/rand"
	"time"
)

// waitWindow models variable backend response time. Bounds are seconds.
// Each call draws a fresh delay: an integer percentile in [0,100] mapped
// linearly into the window.
type waitWindow struct {
	low  float64
	high float64
}

// duration draws one delay from the window without sleeping.
func (w waitWindow) duration() time.Duration {
	p := rand.Intn(101)
	secs := w.low + (w.high-w.low)*float64(p)/100
	return time.Duration(secs * float64(time.Second))
}

// wait blocks the calling goroutine for one drawn delay. The sleep is not
// cancelable; a call in flight always pays its full delay.
func (w waitWindow) wait() {
	if d := w.duration(); d > 0 {
		time.Sleep(d)
	}
}
