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

package headless

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/tests/mocks/timermock"
)

const testFrameURL = "https://suite.example.com/login.html"

type DriverTestSuite struct {
	suite.Suite
	server       *httptest.Server
	browserFlow  string
	sessionValid bool
	out          *bytes.Buffer
	clock        *timermock.FakeClock
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

func (suite *DriverTestSuite) SetupTest() {
	suite.browserFlow = "f-1"
	suite.sessionValid = true
	suite.out = &bytes.Buffer{}
	suite.clock = timermock.NewFakeClock(time.Now())

	mux := http.NewServeMux()
	mux.HandleFunc("/self-service/login/browser", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrf_token_abc", Value: "csrf", Path: "/"})
		target := testFrameURL
		if suite.browserFlow != "" {
			target += "?flow=" + suite.browserFlow
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
	mux.HandleFunc("/self-service/login/flows", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("csrf_token_abc"); err != nil {
			w.WriteHeader(http.StatusForbidden)
			_, _ = fmt.Fprint(w, `{"error":{"id":"security_csrf_violation","code":403}}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"id":%q,"ui":{"action":"/self-service/login?flow=%s","method":"POST",`+
			`"nodes":[{"attributes":{"name":"csrf_token","value":"csrf"},"messages":[]}]}}`,
			r.URL.Query().Get("id"), r.URL.Query().Get("id"))
	})
	mux.HandleFunc("/sessions/whoami", func(w http.ResponseWriter, r *http.Request) {
		if !suite.sessionValid {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"error":{"code":401}}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"active":true,"authenticated_at":%q,"identity":{"verifiable_addresses":`+
			`[{"value":"user@example.com","verified":true}]}}`, time.Now().Format(time.RFC3339))
	})
	suite.server = httptest.NewServer(mux)
}

func (suite *DriverTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *DriverTestSuite) driver(frameURL string, embedded bool) *Driver {
	driver, err := NewDriver(Options{
		FlowType:          constants.FlowTypeLogin,
		FrameURL:          frameURL,
		IdentityServerURL: suite.server.URL,
		Window:            WindowOptions{Embedded: embedded, CurrentPath: "/account/login", ContentHeight: 400},
		MaxNavigations:    3,
		Timeout:           5 * time.Second,
		Clock:             suite.clock,
		Out:               suite.out,
	})
	require.NoError(suite.T(), err)
	return driver
}

func (suite *DriverTestSuite) lines() []map[string]any {
	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(suite.out.Bytes()))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(suite.T(), json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func (suite *DriverTestSuite) actions() []string {
	var actions []string
	for _, line := range suite.lines() {
		switch {
		case line["state"] != nil:
			actions = append(actions, "state="+line["state"].(string))
		case line["redirectTo"] != nil:
			actions = append(actions, "redirectTo="+line["redirectTo"].(string))
		default:
			actions = append(actions, fmt.Sprintf("action=%v", line["action"]))
		}
	}
	return actions
}

func (suite *DriverTestSuite) TestFollowsFreshFlowNavigation() {
	err := suite.driver(testFrameURL, true).Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{
		"action=loading", "action=resize", "state=login-successful",
		"action=loading", "action=resize", "state=login-successful", "action=resize", "action=loaded",
	}, suite.actions())
	for _, line := range suite.lines() {
		assert.Equal(suite.T(), host.MessageChannelName, line["name"])
	}
}

func (suite *DriverTestSuite) TestStopsAfterMaxNavigations() {
	suite.browserFlow = ""

	err := suite.driver(testFrameURL, true).Run(context.Background())

	assert.True(suite.T(), errors.Is(err, ErrTooManyNavigations))
}

func (suite *DriverTestSuite) TestTopLevelPageLeavesFlow() {
	err := suite.driver(testFrameURL+"?flow=f-1", false).Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"action=loading", "action=resize"}, suite.actions())
}

func (suite *DriverTestSuite) TestUnauthenticatedLoginExits() {
	suite.sessionValid = false

	err := suite.driver(testFrameURL+"?flow=f-1", true).Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"action=loading", "action=resize"}, suite.actions())
}

func (suite *DriverTestSuite) TestFatalRunIsReturned() {
	driver, err := NewDriver(Options{
		FlowType:          constants.FlowTypeError,
		FrameURL:          "https://suite.example.com/error.html?error=e-1",
		IdentityServerURL: suite.server.URL,
		Window:            WindowOptions{Embedded: true},
		Clock:             suite.clock,
		Out:               suite.out,
	})
	require.NoError(suite.T(), err)

	assert.Error(suite.T(), driver.Run(context.Background()))
}

func (suite *DriverTestSuite) TestWaitReturnsWhenContextIsDone() {
	ctx, cancel := context.WithCancel(context.Background())
	driver, err := NewDriver(Options{
		FlowType:          constants.FlowTypeLogin,
		FrameURL:          testFrameURL + "?flow=f-1",
		IdentityServerURL: suite.server.URL,
		Window:            WindowOptions{Embedded: true},
		MaxNavigations:    1,
		Wait:              true,
		Clock:             suite.clock,
		Out:               suite.out,
	})
	require.NoError(suite.T(), err)

	done := make(chan error, 1)
	go func() { done <- driver.Run(ctx) }()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.T().Fatal("driver did not stop")
	}
}

func (suite *DriverTestSuite) TestInvalidIdentityServerURL() {
	_, err := NewDriver(Options{IdentityServerURL: "not a url"})

	assert.Error(suite.T(), err)
}
