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
	"net/url"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/host"
)

// MinSubmitPasswordLength is the minimum password length accepted on submit.
const MinSubmitPasswordLength = 5

// SubmitWiring carries what the flow-type-specific submit rules need from the page.
type SubmitWiring struct {
	View        *View
	FlowType    constants.FlowType
	Location    *url.URL
	CurrentPath string
	Notifier    host.NotifierInterface
	Cookies     CookieStore
}

// InstallSubmitRules applies the flow-type-specific form changes and submit handlers. A registration
// page carrying the success marker asks the host for verification and exits.
func InstallSubmitRules(w SubmitWiring) model.Outcome {
	switch w.FlowType {
	case constants.FlowTypeRegistration:
		if w.Location != nil && w.Location.Query().Get(constants.QueryParamState) == constants.QueryStateSuccess {
			w.View.Disable()
			w.Notifier.Send(host.RedirectTo(host.RedirectVerification))
			return model.Exited()
		}
	case constants.FlowTypeSettings:
		w.View.SetSubmitHandler(loadingSubmitHandler(w.Notifier))
		return model.Continue()
	case constants.FlowTypeRecovery:
		w.View.SetSubmitHandler(loadingSubmitHandler(w.Notifier))
		if w.CurrentPath == constants.HostPathResetSent {
			w.View.PromoteSubmitLink()
		} else {
			w.View.Remove(ElementVerification)
		}
	case constants.FlowTypeLogin, constants.FlowTypeVerification:
	default:
		return model.Continue()
	}

	w.View.SetSubmitHandler(defaultSubmitHandler(w.Notifier, w.Cookies))
	return model.Continue()
}

// SetLogoutOnSubmit turns the submit action into a logout request.
func SetLogoutOnSubmit(view *View, notifier host.NotifierInterface) {
	view.SetSubmitHandler(func(*View) bool {
		notifier.Send(host.RedirectTo(host.RedirectLogout))
		return false
	})
}

func loadingSubmitHandler(notifier host.NotifierInterface) SubmitHandler {
	return func(*View) bool {
		notifier.Send(host.Loading())
		return true
	}
}

func defaultSubmitHandler(notifier host.NotifierInterface, cookies CookieStore) SubmitHandler {
	return func(view *View) bool {
		if view.Has(ElementAuthPassword) {
			view.SetInputType(ElementPassword, InputTypePassword)
			password, _ := view.Input(ElementPassword)
			if PasswordLength(password.Value) < MinSubmitPasswordLength {
				view.ShowMessage(constants.MessageTypeError, constants.TextPasswordMinLength, false)
				notifier.Resize()
				return false
			}
		}
		if email, ok := view.Input(ElementEmail); ok && email.Value != "" && cookies != nil {
			cookies.SetCookie(NewVerificationEmailCookie(email.Value))
		}
		return true
	}
}
