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

// Package headless runs flow pages without a browser, writing host messages as JSON lines.
package headless

import (
	"io"
	"net/url"
	"sync"

	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
)

const navigationBuffer = 16

// WindowOptions describe the host as seen by the headless window.
type WindowOptions struct {
	Embedded      bool
	CurrentPath   string
	ContentHeight int
}

// Window is a HostWindow that writes posted messages to an output stream and queues navigations.
type Window struct {
	location    *url.URL
	options     WindowOptions
	out         io.Writer
	navigations chan string

	mu       sync.Mutex
	revealed bool
	logger   *log.Logger
}

var _ host.HostWindow = (*Window)(nil)

// NewWindow creates a headless window at the frame location.
func NewWindow(location *url.URL, options WindowOptions, out io.Writer) *Window {
	return &Window{
		location:    location,
		options:     options,
		out:         out,
		navigations: make(chan string, navigationBuffer),
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HeadlessWindow")),
	}
}

// Location returns a copy of the frame location.
func (w *Window) Location() *url.URL {
	copied := *w.location
	return &copied
}

// IsEmbedded reports the configured embedding.
func (w *Window) IsEmbedded() (bool, error) {
	return w.options.Embedded, nil
}

// Navigate queues a navigation for the driver.
func (w *Window) Navigate(target string) {
	select {
	case w.navigations <- target:
		w.logger.Debug("Navigation requested", log.String("target", target))
	default:
		w.logger.Warn("Navigation queue is full, dropping navigation", log.String("target", target))
	}
}

// Navigations returns the queue of requested navigations.
func (w *Window) Navigations() <-chan string {
	return w.navigations
}

// Reveal marks the page as visible.
func (w *Window) Reveal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.revealed = true
}

// Revealed reports whether the page was revealed.
func (w *Window) Revealed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revealed
}

// CurrentPath returns the configured top-level path.
func (w *Window) CurrentPath() string {
	return w.options.CurrentPath
}

// ContentHeight returns the configured content height.
func (w *Window) ContentHeight() int {
	return w.options.ContentHeight
}

// PostMessage writes the payload as a single line.
func (w *Window) PostMessage(payload []byte, targetOrigin string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	line := make([]byte, 0, len(payload)+1)
	line = append(line, payload...)
	line = append(line, '\n')
	if _, err := w.out.Write(line); err != nil {
		return err
	}
	w.logger.Debug("Posted message to host", log.String("targetOrigin", targetOrigin))
	return nil
}
