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

package form

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/host"
)

// MinLivePasswordLength is the exclusive lower bound on password length for live validation.
const MinLivePasswordLength = 6

var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\pZ\s\x{FEFF}@"]+(\.[^<>()\[\]\\.,;:\pZ\s\x{FEFF}@"]+)*)|(".+"))@` +
		`((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

var validatedEvents = []EventType{EventKeyDown, EventPaste, EventInput}

// IsValidEmail reports whether the value has the local@domain shape, ignoring case.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(strings.ToLower(value))
}

// IsValidPassword reports whether the password passes live validation.
func IsValidPassword(value string) bool {
	return PasswordLength(value) > MinLivePasswordLength
}

// PasswordLength counts UTF-16 code units, the length the host page sees for the input value.
func PasswordLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

// InstallValidators binds live validation of the email and password inputs for the flow type.
func InstallValidators(view *View, flowType constants.FlowType, notifier host.NotifierInterface) {
	if !flowType.In(constants.FlowTypeLogin, constants.FlowTypeRegistration, constants.FlowTypeSettings,
		constants.FlowTypeRecovery) {
		return
	}
	if view.Has(ElementEmail) {
		onEmail := func(v *View, value string) {
			validateEmail(v, value)
			notifier.Resize()
		}
		for _, event := range validatedEvents {
			view.AddListener(ElementEmail, event, onEmail)
		}
	}
	if flowType != constants.FlowTypeLogin && view.Has(ElementPassword) {
		onPassword := func(v *View, value string) {
			validatePassword(v, value)
			notifier.Resize()
		}
		for _, event := range validatedEvents {
			view.AddListener(ElementPassword, event, onPassword)
		}
	}
}

func validateEmail(view *View, value string) {
	if IsValidEmail(value) {
		view.SetInputClass(ElementEmail, ClassValid)
		view.SetText(ElementErrorEmail, "")
		view.SetSubmitDisabled(view.Text(ElementErrorPassword) != "")
		return
	}
	view.SetInputClass(ElementEmail, ClassInvalid)
	view.SetText(ElementErrorEmail, constants.TextInvalidEmail)
	view.SetSubmitDisabled(true)
}

func validatePassword(view *View, value string) {
	if IsValidPassword(value) {
		view.SetInputClass(ElementPassword, ClassValid)
		view.SetText(ElementErrorPassword, "")
		view.SetSubmitDisabled(view.Text(ElementErrorEmail) != "")
		return
	}
	view.SetInputClass(ElementPassword, ClassInvalid)
	view.SetText(ElementErrorPassword, constants.TextPasswordTooShort)
	view.SetSubmitDisabled(true)
}
