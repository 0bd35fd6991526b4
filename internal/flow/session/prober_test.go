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

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/flowctx"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/error/serviceerror"
	httpservice "github.com/invity/authflow/internal/system/http"
	"github.com/invity/authflow/tests/mocks/hostmock"
	"github.com/invity/authflow/tests/mocks/timermock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type ProberTestSuite struct {
	suite.Suite
	server   *httptest.Server
	body     string
	window   *hostmock.FakeWindow
	notifier host.NotifierInterface
	view     *form.View
	cookies  *form.MemoryCookieStore
	clock    *timermock.FakeClock
}

func TestProberSuite(t *testing.T) {
	suite.Run(t, new(ProberTestSuite))
}

func (suite *ProberTestSuite) SetupTest() {
	suite.body = `{}`
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions/whoami" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, suite.body)
	}))
	suite.window = hostmock.NewFakeWindow("https://suite.example.com/flow.html#" + suite.server.URL)
	suite.notifier = host.NewNotifier(host.NewMessenger(suite.window), suite.window)
	suite.view = form.NewView()
	suite.cookies = form.NewMemoryCookieStore()
	suite.clock = timermock.NewFakeClock(testNow)
}

func (suite *ProberTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ProberTestSuite) probe(flowType constants.FlowType) model.Outcome {
	fctx, err := flowctx.New(suite.window.Location(), flowType)
	require.NoError(suite.T(), err)
	monitor := NewPrivilegedSessionMonitor(suite.clock, suite.view, suite.notifier)
	prober := NewProber(httpservice.NewHTTPClientWithTimeout(5*time.Second), suite.window, suite.notifier,
		suite.view, suite.cookies, monitor)
	return prober.Probe(context.Background(), fctx)
}

func sessionBody(authenticatedAt time.Time, email string, verified bool) string {
	return fmt.Sprintf(`{"active":true,"authenticated_at":%q,"identity":{"id":"i-1",`+
		`"verifiable_addresses":[{"value":%q,"verified":%t}]}}`,
		authenticatedAt.Format(time.RFC3339), email, verified)
}

const unauthorizedBody = `{"error":{"code":401,"status":"Unauthorized","reason":"No valid session credentials found"}}`

func (suite *ProberTestSuite) emailValue() string {
	input, _ := suite.view.Input(form.ElementEmail)
	return input.Value
}

func (suite *ProberTestSuite) TestUnauthenticatedLoginExitsSilently() {
	suite.body = unauthorizedBody

	outcome := suite.probe(constants.FlowTypeLogin)

	assert.Equal(suite.T(), model.OutcomeExited, outcome.Kind)
	assert.Empty(suite.T(), suite.window.Summaries())
}

func (suite *ProberTestSuite) TestUnauthenticatedOnResetSentRedirectsToRecovery() {
	suite.body = unauthorizedBody
	suite.window.Path = constants.HostPathResetSent

	outcome := suite.probe(constants.FlowTypeRecovery)

	assert.Equal(suite.T(), model.OutcomeExited, outcome.Kind)
	assert.Equal(suite.T(), []string{"redirectTo=recovery"}, suite.window.Summaries())
}

func (suite *ProberTestSuite) TestUnauthenticatedOnVerificationRedirectsToRegistration() {
	suite.body = unauthorizedBody
	suite.window.Path = constants.HostPathVerification

	outcome := suite.probe(constants.FlowTypeVerification)

	assert.Equal(suite.T(), model.OutcomeExited, outcome.Kind)
	assert.Equal(suite.T(), []string{"redirectTo=registration"}, suite.window.Summaries())
}

func (suite *ProberTestSuite) TestUnauthenticatedWithCookieContinues() {
	suite.body = unauthorizedBody
	suite.window.Path = constants.HostPathVerification
	suite.cookies.SetCookie(form.NewVerificationEmailCookie("cookie@example.com"))

	outcome := suite.probe(constants.FlowTypeVerification)

	assert.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)
	assert.Equal(suite.T(), "cookie@example.com", suite.emailValue())
	assert.Empty(suite.T(), suite.window.Summaries())
}

func (suite *ProberTestSuite) TestLoginAndRegistrationAlwaysReportLoginSuccessful() {
	for _, flowType := range []constants.FlowType{constants.FlowTypeLogin, constants.FlowTypeRegistration} {
		for _, verified := range []bool{true, false} {
			suite.window.Reset()
			suite.body = sessionBody(testNow.Add(-time.Hour), "user@example.com", verified)

			outcome := suite.probe(flowType)

			assert.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)
			assert.Equal(suite.T(), []string{"state=login-successful"}, suite.window.Summaries())
			assert.Empty(suite.T(), suite.emailValue())
		}
	}
}

func (suite *ProberTestSuite) TestVerification() {
	suite.body = sessionBody(testNow, "user@example.com", true)
	assert.Equal(suite.T(), model.OutcomeContinue, suite.probe(constants.FlowTypeVerification).Kind)
	assert.Equal(suite.T(), []string{"state=login-successful"}, suite.window.Summaries())

	suite.window.Reset()
	suite.body = sessionBody(testNow, "pending@example.com", false)
	assert.Equal(suite.T(), model.OutcomeContinue, suite.probe(constants.FlowTypeVerification).Kind)
	assert.Empty(suite.T(), suite.window.Summaries())
	assert.Equal(suite.T(), "pending@example.com", suite.emailValue())
}

func (suite *ProberTestSuite) TestRecoveryWithSessionAlwaysExits() {
	suite.body = sessionBody(testNow, "user@example.com", true)
	assert.Equal(suite.T(), model.OutcomeExited, suite.probe(constants.FlowTypeRecovery).Kind)
	assert.Equal(suite.T(), []string{"redirectTo=settings"}, suite.window.Summaries())

	suite.window.Reset()
	suite.body = sessionBody(testNow, "user@example.com", false)
	assert.Equal(suite.T(), model.OutcomeExited, suite.probe(constants.FlowTypeRecovery).Kind)
	assert.Equal(suite.T(), []string{"redirectTo=verification"}, suite.window.Summaries())
	assert.Empty(suite.T(), suite.emailValue())
}

func (suite *ProberTestSuite) TestSettingsPrefillsPlaceholder() {
	suite.body = sessionBody(testNow.Add(-time.Minute), "user@example.com", true)

	outcome := suite.probe(constants.FlowTypeSettings)

	assert.Equal(suite.T(), model.OutcomeContinue, outcome.Kind)
	input, _ := suite.view.Input(form.ElementEmail)
	assert.Equal(suite.T(), "user@example.com", input.Placeholder)
	assert.Empty(suite.T(), suite.window.Summaries())
}

func (suite *ProberTestSuite) TestSessionWithoutAddress() {
	suite.body = fmt.Sprintf(`{"active":true,"authenticated_at":%q,"identity":{"verifiable_addresses":[]}}`,
		testNow.Format(time.RFC3339))

	assert.Equal(suite.T(), model.OutcomeExited, suite.probe(constants.FlowTypeRecovery).Kind)
	assert.Equal(suite.T(), []string{"redirectTo=verification"}, suite.window.Summaries())
}

func (suite *ProberTestSuite) TestInvalidResponseFails() {
	suite.body = `<html>oops</html>`

	outcome := suite.probe(constants.FlowTypeLogin)

	assert.Equal(suite.T(), model.OutcomeFailed, outcome.Kind)
	var coded *serviceerror.CodedError
	require.True(suite.T(), errors.As(outcome.Reason, &coded))
	assert.Equal(suite.T(), constants.ErrorInvalidResponse.Code, coded.Service.Code)
}

func (suite *ProberTestSuite) TestUnreachableServerFails() {
	suite.server.Close()

	outcome := suite.probe(constants.FlowTypeLogin)

	assert.Equal(suite.T(), model.OutcomeFailed, outcome.Kind)
	var coded *serviceerror.CodedError
	require.True(suite.T(), errors.As(outcome.Reason, &coded))
	assert.Equal(suite.T(), constants.ErrorIdentityServerUnreachable.Code, coded.Service.Code)
}
