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

// Package form holds the typed view-state of the flow form and the client-side rules bound to it.
package form

import "sync"

// ElementID identifies an element of the flow page.
type ElementID string

// Element ids of the flow page.
const (
	ElementForm          ElementID = "form"
	ElementEmail         ElementID = "email"
	ElementPassword      ElementID = "password"
	ElementSubmit        ElementID = "submit"
	ElementSubmitLink    ElementID = "submit_link"
	ElementCSRFToken     ElementID = "csrf_token"
	ElementAuthEmail     ElementID = "auth_email"
	ElementAuthPassword  ElementID = "auth_password"
	ElementErrorEmail    ElementID = "error-email"
	ElementErrorPassword ElementID = "error-password"
	ElementInfo          ElementID = "info"
	ElementVerification  ElementID = "verification"
)

// AllElements lists every element of the full page layout.
var AllElements = []ElementID{
	ElementForm, ElementEmail, ElementPassword, ElementSubmit, ElementSubmitLink, ElementCSRFToken,
	ElementAuthEmail, ElementAuthPassword, ElementErrorEmail, ElementErrorPassword, ElementInfo,
	ElementVerification,
}

// EventType is an input event that triggers live validation.
type EventType string

const (
	EventKeyDown EventType = "keydown"
	EventPaste   EventType = "paste"
	EventInput   EventType = "input"
)

// Input type values.
const (
	InputTypePassword = "password"
	InputTypeText     = "text"
)

// Validation classes of an input.
const (
	ClassValid   = "valid"
	ClassInvalid = "invalid"
)

// Listener reacts to an input event carrying the new input value.
type Listener func(view *View, value string)

// SubmitHandler decides whether a submit proceeds.
type SubmitHandler func(view *View) bool

// Input is the state of a single text input.
type Input struct {
	Name        string
	Value       string
	Placeholder string
	Type        string
	Class       string
	Disabled    bool
}

// View is the typed view-state of a flow page. All methods are safe for concurrent use; listeners
// and submit handlers run without the lock held.
type View struct {
	mu sync.Mutex

	present map[ElementID]bool

	action string
	method string

	csrfToken string
	inputs    map[ElementID]*Input
	texts     map[ElementID]string

	submitValue    string
	submitDisabled bool

	listeners map[ElementID]map[EventType][]Listener
	onSubmit  SubmitHandler
}

// NewView creates a view with the given elements present. With no ids the full layout is used.
func NewView(ids ...ElementID) *View {
	if len(ids) == 0 {
		ids = AllElements
	}
	view := &View{
		present: make(map[ElementID]bool, len(ids)),
		inputs: map[ElementID]*Input{
			ElementEmail:    {Type: InputTypeText},
			ElementPassword: {Type: InputTypePassword},
		},
		texts:     map[ElementID]string{},
		listeners: map[ElementID]map[EventType][]Listener{},
	}
	for _, id := range ids {
		view.present[id] = true
	}
	return view
}

// Has reports whether the element exists on the page.
func (v *View) Has(id ElementID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.present[id]
}

// Remove removes an element from the page.
func (v *View) Remove(id ElementID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.present, id)
}

// PromoteSubmitLink removes the primary submit control and lets the link-button take its place.
func (v *View) PromoteSubmitLink() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.present[ElementSubmitLink] {
		return
	}
	delete(v.present, ElementSubmitLink)
	v.present[ElementSubmit] = true
	v.submitValue = ""
	v.submitDisabled = false
}

// SetAction sets the form action URL.
func (v *View) SetAction(action string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.action = action
}

// Action returns the form action URL.
func (v *View) Action() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.action
}

// SetMethod sets the form method.
func (v *View) SetMethod(method string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.method = method
}

// Method returns the form method.
func (v *View) Method() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.method
}

// SetCSRFToken writes the hidden CSRF token.
func (v *View) SetCSRFToken(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.csrfToken = token
}

// CSRFToken returns the hidden CSRF token.
func (v *View) CSRFToken() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.csrfToken
}

// Input returns a copy of the input state. The second value is false when the input is absent.
func (v *View) Input(id ElementID) (Input, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	input, ok := v.inputs[id]
	if !ok || !v.present[id] {
		return Input{}, false
	}
	return *input, true
}

func (v *View) updateInput(id ElementID, update func(input *Input)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	input, ok := v.inputs[id]
	if !ok || !v.present[id] {
		return false
	}
	update(input)
	return true
}

// SetInputName sets the submitted name of an input.
func (v *View) SetInputName(id ElementID, name string) bool {
	return v.updateInput(id, func(input *Input) { input.Name = name })
}

// SetInputValue sets the value of an input without firing listeners.
func (v *View) SetInputValue(id ElementID, value string) bool {
	return v.updateInput(id, func(input *Input) { input.Value = value })
}

// SetInputPlaceholder sets the placeholder of an input.
func (v *View) SetInputPlaceholder(id ElementID, placeholder string) bool {
	return v.updateInput(id, func(input *Input) { input.Placeholder = placeholder })
}

// SetInputType sets the exposed type of an input.
func (v *View) SetInputType(id ElementID, inputType string) bool {
	return v.updateInput(id, func(input *Input) { input.Type = inputType })
}

// SetInputClass replaces the validation class of an input.
func (v *View) SetInputClass(id ElementID, class string) bool {
	return v.updateInput(id, func(input *Input) { input.Class = class })
}

// Text returns the text of a message element.
func (v *View) Text(id ElementID) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.texts[id]
}

// SetText sets the text of a message element.
func (v *View) SetText(id ElementID, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.texts[id] = text
}

// SetSubmitValue sets the value of the submit control.
func (v *View) SetSubmitValue(value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitValue = value
}

// SubmitValue returns the value of the submit control.
func (v *View) SubmitValue() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitValue
}

// SetSubmitDisabled enables or disables the submit control.
func (v *View) SetSubmitDisabled(disabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitDisabled = disabled
}

// SubmitDisabled reports whether the submit control is disabled.
func (v *View) SubmitDisabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitDisabled
}

// Disable disables the email and password inputs and the submit control.
func (v *View) Disable() {
	v.updateInput(ElementEmail, func(input *Input) { input.Disabled = true })
	v.updateInput(ElementPassword, func(input *Input) { input.Disabled = true })
	v.SetSubmitDisabled(true)
}

// ShowMessage shows a message in the info region for info messages and in the single error line
// otherwise, optionally disabling the form first.
func (v *View) ShowMessage(messageType, text string, disableForm bool) {
	if disableForm {
		v.Disable()
	}
	if messageType == "info" {
		v.SetText(ElementInfo, text)
		return
	}
	v.SetText(ElementErrorPassword, text)
}

// AddListener registers a listener for an input event.
func (v *View) AddListener(id ElementID, event EventType, listener Listener) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.listeners[id] == nil {
		v.listeners[id] = map[EventType][]Listener{}
	}
	v.listeners[id][event] = append(v.listeners[id][event], listener)
}

// Dispatch sets the input value as the user would and fires the listeners of the event.
func (v *View) Dispatch(id ElementID, event EventType, value string) {
	if !v.SetInputValue(id, value) {
		return
	}
	v.mu.Lock()
	listeners := append([]Listener(nil), v.listeners[id][event]...)
	v.mu.Unlock()

	for _, listener := range listeners {
		listener(v, value)
	}
}

// SetSubmitHandler replaces the submit handler of the form.
func (v *View) SetSubmitHandler(handler SubmitHandler) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onSubmit = handler
}

// Submit runs the submit handler and reports whether the form submission proceeds.
func (v *View) Submit() bool {
	v.mu.Lock()
	handler := v.onSubmit
	v.mu.Unlock()

	if handler == nil {
		return true
	}
	return handler(v)
}
