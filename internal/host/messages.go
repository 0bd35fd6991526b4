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

// MessageKind identifies the variant of an OutboundMessage.
type MessageKind string

const (
	// MessageKindResize asks the host to resize the frame.
	MessageKindResize MessageKind = "resize"
	// MessageKindLoading tells the host the flow is loading.
	MessageKindLoading MessageKind = "loading"
	// MessageKindLoaded tells the host the flow form is ready.
	MessageKindLoaded MessageKind = "loaded"
	// MessageKindRedirectTo asks the host to navigate to another flow.
	MessageKindRedirectTo MessageKind = "redirectTo"
	// MessageKindAction reports a flow outcome or asks the host to act.
	MessageKindAction MessageKind = "action"
	// MessageKindState reports the session state.
	MessageKindState MessageKind = "state"
)

// RedirectTarget is a destination the host can be asked to navigate to.
type RedirectTarget string

const (
	RedirectLogin        RedirectTarget = "login"
	RedirectLogout       RedirectTarget = "logout"
	RedirectRecovery     RedirectTarget = "recovery"
	RedirectRegistration RedirectTarget = "registration"
	RedirectVerification RedirectTarget = "verification"
	RedirectSettings     RedirectTarget = "settings"
)

// Named actions sent as plain strings.
const (
	ActionLoading                = "loading"
	ActionLoaded                 = "loaded"
	ActionResize                 = "resize"
	ActionRegistrationSuccessful = "registration-successful"
	ActionRecoverySent           = "recovery-sent"
	ActionSettingsSuccessful     = "settings-successful"
)

// Structured action types.
const (
	ActionTypeReload      = "reload"
	ActionTypeShowMessage = "showMessage"
)

// StateLoginSuccessful reports an authenticated visitor.
const StateLoginSuccessful = "login-successful"

// ActionPayload is a structured action.
type ActionPayload struct {
	Type    string `json:"type"`
	Variant string `json:"variant,omitempty"`
	Text    string `json:"text,omitempty"`
}

// OutboundMessage is a tagged union of the messages sent to the host window.
type OutboundMessage struct {
	Kind       MessageKind
	Action     string
	Payload    *ActionPayload
	Height     int
	RedirectTo RedirectTarget
	State      string
}

// Envelope is the JSON shape posted to the host.
type Envelope struct {
	Name       string         `json:"name"`
	Action     any            `json:"action,omitempty"`
	Data       *int           `json:"data,omitempty"`
	RedirectTo RedirectTarget `json:"redirectTo,omitempty"`
	State      string         `json:"state,omitempty"`
}

// Loading returns the loading notification.
func Loading() OutboundMessage {
	return OutboundMessage{Kind: MessageKindLoading, Action: ActionLoading}
}

// Loaded returns the loaded notification.
func Loaded() OutboundMessage {
	return OutboundMessage{Kind: MessageKindLoaded, Action: ActionLoaded}
}

// Resize returns a resize notification for the given content height.
func Resize(height int) OutboundMessage {
	return OutboundMessage{Kind: MessageKindResize, Action: ActionResize, Height: height}
}

// RedirectTo asks the host to navigate to the target.
func RedirectTo(target RedirectTarget) OutboundMessage {
	return OutboundMessage{Kind: MessageKindRedirectTo, RedirectTo: target}
}

// NamedAction returns an action message carrying a plain action name.
func NamedAction(name string) OutboundMessage {
	return OutboundMessage{Kind: MessageKindAction, Action: name}
}

// Reload asks the host to reload the frame.
func Reload() OutboundMessage {
	return OutboundMessage{Kind: MessageKindAction, Payload: &ActionPayload{Type: ActionTypeReload}}
}

// ShowMessage asks the host to show a message with the given variant.
func ShowMessage(variant, text string) OutboundMessage {
	return OutboundMessage{
		Kind:    MessageKindAction,
		Payload: &ActionPayload{Type: ActionTypeShowMessage, Variant: variant, Text: text},
	}
}

// LoginSuccessful reports an authenticated visitor.
func LoginSuccessful() OutboundMessage {
	return OutboundMessage{Kind: MessageKindState, State: StateLoginSuccessful}
}

// Envelope converts the message to its wire shape under the given channel name.
func (m OutboundMessage) Envelope(name string) Envelope {
	envelope := Envelope{Name: name}
	switch m.Kind {
	case MessageKindResize:
		height := m.Height
		envelope.Action = m.Action
		envelope.Data = &height
	case MessageKindLoading, MessageKindLoaded:
		envelope.Action = m.Action
	case MessageKindAction:
		if m.Payload != nil {
			envelope.Action = m.Payload
		} else {
			envelope.Action = m.Action
		}
	case MessageKindRedirectTo:
		envelope.RedirectTo = m.RedirectTo
	case MessageKindState:
		envelope.State = m.State
	}
	return envelope
}
