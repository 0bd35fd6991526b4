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

// Package binder applies a flow definition to the form and dispatches the identity server messages.
package binder

import (
	"strings"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/translate"
)

const loggerComponentName = "FormBinder"

// Binder binds flow definitions to a form view.
type Binder struct {
	window     host.HostWindow
	notifier   host.NotifierInterface
	view       *form.View
	translator *translate.Translator
	logger     *log.Logger
}

// NewBinder creates a binder.
func NewBinder(window host.HostWindow, notifier host.NotifierInterface, view *form.View,
	translator *translate.Translator) *Binder {
	return &Binder{
		window:     window,
		notifier:   notifier,
		view:       view,
		translator: translator,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Bind applies the definition to the form: action and method, node values and names, node
// messages and the first flow message.
func (b *Binder) Bind(definition *model.FlowDefinition, flowType constants.FlowType) model.Outcome {
	if len(definition.Errors) > 0 {
		b.notifier.Send(host.ShowMessage(constants.ShowMessageVariantError, constants.TextUnexpectedError))
		b.logger.Error("Flow definition carries errors", log.String("message", definition.Errors[0].Message))
		return model.Exited()
	}

	b.view.SetAction(definition.UI.Action)
	b.view.SetMethod(definition.UI.Method)

	if definition.Error != nil {
		b.view.ShowMessage(constants.MessageTypeError, constants.TextUnexpectedError, false)
		return model.Failed(&model.FlowError{Payload: *definition.Error})
	}

	for _, node := range definition.UI.Nodes {
		b.bindNode(node, flowType)
		if len(node.Messages) > 0 {
			message := node.Messages[0]
			if constants.MessageID(message.ID) == constants.MessageIDPasswordPolicyViolation {
				message.Text = passwordPolicyText(message.Text)
			}
			b.view.ShowMessage(message.Type, message.Text, false)
		}
	}

	if len(definition.UI.Messages) == 0 {
		return model.Continue()
	}
	message := definition.UI.Messages[0]
	if handler, ok := messageCatalog[constants.MessageID(message.ID)]; ok {
		if outcome := handler(b, flowType, &message); !outcome.Proceed() {
			return outcome
		}
	} else {
		b.logger.Error("Unexpected message id", log.Int64("id", message.ID))
	}
	b.view.ShowMessage(message.Type, message.Text, false)
	b.notifier.Resize()
	return model.Continue()
}

func (b *Binder) bindNode(node model.FormNode, flowType constants.FlowType) {
	name := node.Attributes.Name
	value := node.Attributes.ValueString()
	switch {
	case name == constants.NodeNameCSRFToken:
		b.view.SetCSRFToken(value)
	case isEmailNode(name) && flowType != constants.FlowTypeSettings:
		b.view.SetInputName(form.ElementEmail, name)
		if value != "" {
			b.view.SetInputValue(form.ElementEmail, value)
		}
	case name == constants.NodeNamePassword:
		b.view.SetInputName(form.ElementPassword, name)
	case name == constants.NodeNameMethod && value != "":
		b.view.SetSubmitValue(value)
	}
}

func isEmailNode(name string) bool {
	switch name {
	case constants.NodeNamePasswordIdentifier, constants.NodeNameTraitsEmail, constants.NodeNameEmail:
		return true
	}
	return false
}

// passwordPolicyText classifies the shared password policy message. Every variant keeps the
// server text until product review settles the wording.
func passwordPolicyText(text string) string {
	switch {
	case strings.Contains(text, constants.TextBreachedPassword):
		log.GetLogger().Debug("Password found in data breaches")
	case strings.Contains(text, constants.TextPasswordTooSimilar):
		log.GetLogger().Debug("Password too similar to the identifier")
	default:
		log.GetLogger().Debug("Password too short")
	}
	return text
}
