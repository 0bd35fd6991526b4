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

// Package constants defines the constants used by the flow orchestrator.
package constants

import (
	"errors"
	"fmt"
)

// FlowType defines the type of identity flow handled by a page.
type FlowType string

const (
	// FlowTypeLogin represents a login flow.
	FlowTypeLogin FlowType = "login"
	// FlowTypeRegistration represents a registration flow.
	FlowTypeRegistration FlowType = "registration"
	// FlowTypeRecovery represents an account recovery flow.
	FlowTypeRecovery FlowType = "recovery"
	// FlowTypeVerification represents an address verification flow.
	FlowTypeVerification FlowType = "verification"
	// FlowTypeSettings represents a settings (password change) flow.
	FlowTypeSettings FlowType = "settings"
	// FlowTypeError represents the identity server error page.
	FlowTypeError FlowType = "error"
)

// ErrUnknownFlowType is returned when a flow type string is not part of the closed set.
var ErrUnknownFlowType = errors.New("unknown flow type")

// ParseFlowType converts a string to a FlowType.
func ParseFlowType(value string) (FlowType, error) {
	switch flowType := FlowType(value); flowType {
	case FlowTypeLogin, FlowTypeRegistration, FlowTypeRecovery, FlowTypeVerification,
		FlowTypeSettings, FlowTypeError:
		return flowType, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFlowType, value)
}

// In reports whether the flow type is one of the given types.
func (f FlowType) In(types ...FlowType) bool {
	for _, t := range types {
		if f == t {
			return true
		}
	}
	return false
}

// Query parameters read from the frame location.
const (
	QueryParamFlow                      = "flow"
	QueryParamError                     = "error"
	QueryParamID                        = "id"
	QueryParamReturnTo                  = "return_to"
	QueryParamAfterVerificationReturnTo = "after_verification_return_to"
	QueryParamState                     = "state"
	QueryStateSuccess                   = "success"
)

// Top-level host paths that change the orchestrator's behaviour.
const (
	HostPathResetSent    = "/account/reset-sent"
	HostPathReset        = "/account/reset"
	HostPathVerification = "/account/verification"
)

// Form node attribute names sent by the identity server.
const (
	NodeNameCSRFToken          = "csrf_token"
	NodeNamePasswordIdentifier = "password_identifier"
	NodeNameTraitsEmail        = "traits.email"
	NodeNameEmail              = "email"
	NodeNamePassword           = "password"
	NodeNameMethod             = "method"
)

// MessageID is a numeric message code owned by the identity server.
type MessageID int64

// Known message ids.
const (
	MessageIDPasswordPolicyViolation MessageID = 4000005
	MessageIDInvalidCredentials      MessageID = 4000006
	MessageIDAlreadyRegistered       MessageID = 4000007
	MessageIDRecoveryEmailSent       MessageID = 1060002
	MessageIDSettingsSaved           MessageID = 1050001
	MessageIDFlowExpired             MessageID = 4060005
	MessageIDVerificationEmailSent   MessageID = 1070001
)

// Message types used by identity server messages.
const (
	MessageTypeInfo  = "info"
	MessageTypeError = "error"
)

// User visible texts.
const (
	TextUnexpectedError     = "An unexpected error has occured."
	TextInvalidCredentials  = "The provided credentials are invalid, check for spelling mistakes in your password or username, email address, or phone number."
	TextRecoveryLinkSent    = "An email containing a recovery link has been sent to the email address you provided."
	TextInvalidEmail        = "Please, enter a valid email address"
	TextPasswordTooShort    = "Your password is too short!"
	TextPasswordMinLength   = "You password should be at least 5 characters long!"
	TextBreachedPassword    = "data breaches"
	TextPasswordTooSimilar  = "too similar"
	ShowMessageVariantError = "danger"
)

// Translation keys looked up before falling back to the built-in texts.
const (
	TranslationKeyInvalidCredentials = "accounts.invalid_credentials"
	TranslationKeyRecoveryLinkSent   = "accounts.recovery_link_sent"
)
