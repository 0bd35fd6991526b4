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

// Package host models the window that embeds the orchestrator and the outbound message
// channel towards it.
package host

import "net/url"

// HostWindow is the capability the orchestrator uses instead of touching a browser window.
type HostWindow interface {
	// Location returns the location of the frame running the orchestrator.
	Location() *url.URL
	// IsEmbedded reports whether the frame is embedded in another window. An error means the
	// check itself was rejected, which only happens for cross-origin parents.
	IsEmbedded() (bool, error)
	// Navigate replaces the frame location with the target URL.
	Navigate(target string)
	// Reveal removes the hidden state of the page.
	Reveal()
	// CurrentPath returns the path of the top-level window.
	CurrentPath() string
	// ContentHeight returns the current scroll height of the page body.
	ContentHeight() int
	// PostMessage delivers a serialized message to the host window.
	PostMessage(payload []byte, targetOrigin string) error
}
