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

// Package timer provides the clock used for page-scoped timers.
package timer

import (
	"sync"
	"time"
)

// Timer is a fire-once timer.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer already fired or was stopped.
	Stop() bool
}

// Clock tells the time and schedules callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// NewSystemClock returns a clock backed by the time package.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// PageClock tracks the timers armed during a page lifetime so they can be discarded with the page.
type PageClock struct {
	clock  Clock
	mu     sync.Mutex
	timers []Timer
	closed bool
}

// NewPageClock creates a page clock on top of the given clock.
func NewPageClock(clock Clock) *PageClock {
	return &PageClock{clock: clock}
}

// Now returns the current time.
func (c *PageClock) Now() time.Time {
	return c.clock.Now()
}

// AfterFunc arms a timer owned by the page. After StopAll the callback never runs.
func (c *PageClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.clock.AfterFunc(d, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if !closed {
			f()
		}
	})
	if c.closed {
		t.Stop()
		return t
	}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of timers armed on the page.
func (c *PageClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// StopAll stops every timer armed on the page.
func (c *PageClock) StopAll() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.closed = true
	c.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
}
