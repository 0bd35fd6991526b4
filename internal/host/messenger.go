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

package host

import (
	"encoding/json"

	"github.com/invity/authflow/internal/system/log"
)

// MessageChannelName identifies messages of this component on the host side.
const MessageChannelName = "invity-authentication"

// TargetOriginAny delivers messages regardless of the host origin.
// TODO: restrict to the trusted host origins once product confirms the list.
const TargetOriginAny = "*"

// MessengerInterface is the outbound channel from the frame to its host window.
type MessengerInterface interface {
	Send(msg OutboundMessage) error
}

// Messenger serializes messages and posts them to the host window.
type Messenger struct {
	window       HostWindow
	name         string
	targetOrigin string
}

// NewMessenger creates a messenger posting to the given window.
func NewMessenger(window HostWindow) MessengerInterface {
	return &Messenger{
		window:       window,
		name:         MessageChannelName,
		targetOrigin: TargetOriginAny,
	}
}

// Send serializes the message and posts it to the host.
func (m *Messenger) Send(msg OutboundMessage) error {
	payload, err := json.Marshal(msg.Envelope(m.name))
	if err != nil {
		return err
	}
	return m.window.PostMessage(payload, m.targetOrigin)
}

// NotifierInterface is the convenience surface used by orchestrator components.
type NotifierInterface interface {
	// Send delivers a message. Delivery failures are logged, never returned.
	Send(msg OutboundMessage)
	// Resize sends a resize message with the current content height.
	Resize()
}

// Notifier sends host messages and knows how to measure the page for resize messages.
type Notifier struct {
	messenger MessengerInterface
	window    HostWindow
	logger    *log.Logger
}

// NewNotifier creates a notifier on top of a messenger.
func NewNotifier(messenger MessengerInterface, window HostWindow) NotifierInterface {
	return &Notifier{
		messenger: messenger,
		window:    window,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Notifier")),
	}
}

// Send delivers a message to the host.
func (n *Notifier) Send(msg OutboundMessage) {
	if err := n.messenger.Send(msg); err != nil {
		n.logger.Error("Failed to post message to host", log.String("kind", string(msg.Kind)), log.Error(err))
	}
}

// Resize sends a resize message with the current content height.
func (n *Notifier) Resize() {
	n.Send(Resize(n.window.ContentHeight()))
}
