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

import "github.com/invity/authflow/internal/flow/constants"

// PrefillEmail fills the email input from a known address or, for unauthenticated visitors, from
// the verification cookie. Settings only shows the address as a placeholder. It reports whether
// the input was filled.
func PrefillEmail(view *View, email string, flowType constants.FlowType, currentPath string,
	cookies CookieStore) bool {
	if email != "" && flowType == constants.FlowTypeSettings {
		view.SetInputPlaceholder(ElementEmail, email)
		return true
	}
	if !flowType.In(constants.FlowTypeVerification, constants.FlowTypeRecovery) ||
		currentPath == constants.HostPathReset {
		return false
	}
	if email == "" && cookies != nil {
		email, _ = cookies.Cookie(VerificationEmailCookieName)
	}
	if email == "" {
		return false
	}
	view.SetInputValue(ElementEmail, email)
	return true
}
