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

package form_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/tests/mocks/hostmock"
)

type SubmitTestSuite struct {
	suite.Suite
	window   *hostmock.FakeWindow
	notifier host.NotifierInterface
	cookies  *form.MemoryCookieStore
	view     *form.View
}

func TestSubmitSuite(t *testing.T) {
	suite.Run(t, new(SubmitTestSuite))
}

func (suite *SubmitTestSuite) SetupTest() {
	suite.window = hostmock.NewFakeWindow("https://suite.example.com/flow.html#https://auth.example.com")
	suite.notifier = host.NewNotifier(host.NewMessenger(suite.window), suite.window)
	suite.cookies = form.NewMemoryCookieStore()
	suite.view = form.NewView()
}

func (suite *SubmitTestSuite) wiring(flowType constants.FlowType, rawQuery, currentPath string) form.SubmitWiring {
	return form.SubmitWiring{
		View:        suite.view,
		FlowType:    flowType,
		Location:    &url.URL{Scheme: "https", Host: "suite.example.com", Path: "/flow.html", RawQuery: rawQuery},
		CurrentPath: currentPath,
		Notifier:    suite.notifier,
		Cookies:     suite.cookies,
	}
}

func (suite *SubmitTestSuite) TestRegistrationSuccessMarkerExits() {
	outcome := form.InstallSubmitRules(suite.wiring(constants.FlowTypeRegistration, "state=success", "/"))

	assert.Equal(suite.T(), model.OutcomeExited, outcome.Kind)
	assert.True(suite.T(), suite.view.SubmitDisabled())
	assert.Equal(suite.T(), []string{"redirectTo=verification"}, suite.window.Summaries())
}

func (suite *SubmitTestSuite) TestPasswordLengthGuard() {
	outcome := form.InstallSubmitRules(suite.wiring(constants.FlowTypeLogin, "flow=abc", "/"))
	require.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)

	testCases := []struct {
		password string
		allowed  bool
	}{
		{"", false},
		{"1234", false},
		{"12345", true},
		{"a-much-longer-password", true},
		{"ééé", false},
		{"ąąąą", false},
		{"ééééé", true},
		{"😀😀", false},
		{"😀😀😀", true},
	}
	var resizes []string
	for _, tc := range testCases {
		suite.view.SetText(form.ElementErrorPassword, "")
		suite.view.SetInputValue(form.ElementPassword, tc.password)

		assert.Equal(suite.T(), tc.allowed, suite.view.Submit(), tc.password)
		if tc.allowed {
			assert.Empty(suite.T(), suite.view.Text(form.ElementErrorPassword))
		} else {
			assert.Equal(suite.T(), constants.TextPasswordMinLength, suite.view.Text(form.ElementErrorPassword))
			resizes = append(resizes, "action=resize")
		}
	}
	assert.Equal(suite.T(), resizes, suite.window.Summaries())
}

func (suite *SubmitTestSuite) TestSubmitForcesPasswordType() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeRegistration, "", "/"))
	suite.view.SetInputType(form.ElementPassword, form.InputTypeText)
	suite.view.SetInputValue(form.ElementPassword, "secret-pass")

	assert.True(suite.T(), suite.view.Submit())

	password, _ := suite.view.Input(form.ElementPassword)
	assert.Equal(suite.T(), form.InputTypePassword, password.Type)
}

func (suite *SubmitTestSuite) TestSubmitPersistsEmailCookie() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeVerification, "", "/"))
	suite.view.SetInputValue(form.ElementEmail, "user@example.com")
	suite.view.SetInputValue(form.ElementPassword, "secret-pass")

	assert.True(suite.T(), suite.view.Submit())

	cookie, ok := suite.cookies.Raw(form.VerificationEmailCookieName)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "user@example.com", cookie.Value)
	assert.Equal(suite.T(), "/", cookie.Path)
	assert.Equal(suite.T(), http.SameSiteLaxMode, cookie.SameSite)
}

func (suite *SubmitTestSuite) TestSubmitWithoutEmailSkipsCookie() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeLogin, "", "/"))
	suite.view.SetInputValue(form.ElementPassword, "secret-pass")

	assert.True(suite.T(), suite.view.Submit())

	_, ok := suite.cookies.Cookie(form.VerificationEmailCookieName)
	assert.False(suite.T(), ok)
}

func (suite *SubmitTestSuite) TestWithoutPasswordFieldSkipsLengthGuard() {
	suite.view = form.NewView(form.ElementForm, form.ElementEmail, form.ElementAuthEmail, form.ElementSubmit)
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeVerification, "", "/"))
	suite.view.SetInputValue(form.ElementEmail, "user@example.com")

	assert.True(suite.T(), suite.view.Submit())
}

func (suite *SubmitTestSuite) TestSettingsSubmitNotifiesLoading() {
	outcome := form.InstallSubmitRules(suite.wiring(constants.FlowTypeSettings, "", "/accounts/invity/settings"))
	assert.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)

	assert.True(suite.T(), suite.view.Submit())
	assert.Equal(suite.T(), []string{"action=loading"}, suite.window.Summaries())
}

func (suite *SubmitTestSuite) TestRecoveryOnResetSentPromotesLink() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeRecovery, "", constants.HostPathResetSent))

	assert.False(suite.T(), suite.view.Has(form.ElementSubmitLink))
	assert.True(suite.T(), suite.view.Has(form.ElementSubmit))
	assert.True(suite.T(), suite.view.Has(form.ElementVerification))
}

func (suite *SubmitTestSuite) TestRecoveryElsewhereRemovesVerificationBlock() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeRecovery, "", constants.HostPathReset))

	assert.False(suite.T(), suite.view.Has(form.ElementVerification))
	assert.True(suite.T(), suite.view.Has(form.ElementSubmitLink))
}

func (suite *SubmitTestSuite) TestRecoveryUsesDefaultSubmitRules() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeRecovery, "", constants.HostPathReset))
	suite.view.SetInputValue(form.ElementPassword, "123")

	assert.False(suite.T(), suite.view.Submit())
	assert.Equal(suite.T(), []string{"action=resize"}, suite.window.Summaries())
}

func (suite *SubmitTestSuite) TestErrorFlowHasNoSubmitRules() {
	outcome := form.InstallSubmitRules(suite.wiring(constants.FlowTypeError, "", "/"))

	assert.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)
	assert.True(suite.T(), suite.view.Submit())
}

func (suite *SubmitTestSuite) TestLogoutOnSubmit() {
	form.InstallSubmitRules(suite.wiring(constants.FlowTypeSettings, "", "/"))
	form.SetLogoutOnSubmit(suite.view, suite.notifier)

	assert.False(suite.T(), suite.view.Submit())
	assert.Equal(suite.T(), []string{"redirectTo=logout"}, suite.window.Summaries())
}
