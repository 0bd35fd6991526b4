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

// Package hostmock provides test doubles for the host package.
package hostmock

import (
	"encoding/json"
	"net/url"
	"sync"
)

// FakeWindow is an in-memory HostWindow that records everything the orchestrator does to it.
type FakeWindow struct {
	mu sync.Mutex

	URL         *url.URL
	Embedded    bool
	EmbeddedErr error
	Path        string
	Height      int
	PostErr     error

	revealed    bool
	navigations []string
	posted      [][]byte
	origins     []string
}

// NewFakeWindow creates an embedded fake window at the given frame URL.
func NewFakeWindow(rawURL string) *FakeWindow {
	location, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return &FakeWindow{
		URL:      location,
		Embedded: true,
		Path:     "/",
		Height:   320,
	}
}

// Location returns the frame location.
func (w *FakeWindow) Location() *url.URL {
	copied := *w.URL
	return &copied
}

// IsEmbedded returns the configured embedding state.
func (w *FakeWindow) IsEmbedded() (bool, error) {
	return w.Embedded, w.EmbeddedErr
}

// Navigate records a navigation.
func (w *FakeWindow) Navigate(target string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.navigations = append(w.navigations, target)
}

// Reveal records that the page was revealed.
func (w *FakeWindow) Reveal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.revealed = true
}

// CurrentPath returns the configured top-level path.
func (w *FakeWindow) CurrentPath() string {
	return w.Path
}

// ContentHeight returns the configured height.
func (w *FakeWindow) ContentHeight() int {
	return w.Height
}

// PostMessage records a posted payload.
func (w *FakeWindow) PostMessage(payload []byte, targetOrigin string) error {
	if w.PostErr != nil {
		return w.PostErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.posted = append(w.posted, payload)
	w.origins = append(w.origins, targetOrigin)
	return nil
}

// Revealed reports whether Reveal was called.
func (w *FakeWindow) Revealed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revealed
}

// Navigations returns the recorded navigations.
func (w *FakeWindow) Navigations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.navigations...)
}

// Origins returns the target origins used for posted messages.
func (w *FakeWindow) Origins() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.origins...)
}

// Messages decodes the posted payloads.
func (w *FakeWindow) Messages() []map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()
	messages := make([]map[string]any, 0, len(w.posted))
	for _, payload := range w.posted {
		var message map[string]any
		if err := json.Unmarshal(payload, &message); err != nil {
			panic(err)
		}
		messages = append(messages, message)
	}
	return messages
}

// Summaries returns a compact description of each posted message, such as "action=loading",
// "action=resize", "redirectTo=logout", "state=login-successful" or "action.type=reload".
func (w *FakeWindow) Summaries() []string {
	messages := w.Messages()
	summaries := make([]string, 0, len(messages))
	for _, message := range messages {
		switch {
		case message["redirectTo"] != nil:
			summaries = append(summaries, "redirectTo="+message["redirectTo"].(string))
		case message["state"] != nil:
			summaries = append(summaries, "state="+message["state"].(string))
		default:
			switch action := message["action"].(type) {
			case string:
				summaries = append(summaries, "action="+action)
			case map[string]any:
				summaries = append(summaries, "action.type="+action["type"].(string))
			}
		}
	}
	return summaries
}

// Reset clears recorded messages and navigations.
func (w *FakeWindow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.posted = nil
	w.origins = nil
	w.navigations = nil
}
