/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package timermock provides a manually driven clock.
package timermock

import (
	"sort"
	"sync"
	"time"

	"github.com/invity/authflow/internal/system/timer"
)

// FakeClock is a clock whose time only moves on Advance. Due callbacks run on the caller goroutine.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*FakeTimer
}

// FakeTimer is a timer armed on a FakeClock.
type FakeTimer struct {
	clock    *FakeClock
	Deadline time.Time
	Duration time.Duration
	fn       func()
	done     bool
}

var _ timer.Clock = (*FakeClock)(nil)

// NewFakeClock creates a fake clock at the given time.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc arms a fake timer.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) timer.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &FakeTimer{clock: c, Deadline: c.now.Add(d), Duration: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop disarms the timer.
func (t *FakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Advance moves the clock forward and runs the callbacks that became due, in deadline order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*FakeTimer
	for _, t := range c.timers {
		if !t.done && !t.Deadline.After(c.now) {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].Deadline.Before(due[j].Deadline) })
	for _, t := range due {
		t.fn()
	}
}

// Armed returns the durations of the timers that have not fired or been stopped.
func (c *FakeClock) Armed() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var armed []time.Duration
	for _, t := range c.timers {
		if !t.done {
			armed = append(armed, t.Duration)
		}
	}
	return armed
}
