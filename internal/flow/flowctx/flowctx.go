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

// Package flowctx derives the per-run flow context from the frame location.
package flowctx

import (
	"net/url"
	"strings"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/system/error/serviceerror"
)

const (
	settingsRedirectURL = "/accounts/invity/settings"
	errorsPath          = "/self-service/errors"
)

// FlowContext holds the URLs a run works with. It is computed once and never modified.
type FlowContext struct {
	flowType                     constants.FlowType
	authServerBaseURL            string
	flowRequestURL               string
	redirectURL                  string
	browserInitURL               string
	returnToURL                  string
	afterVerificationReturnToURL string
}

// New builds the flow context from the frame location. The identity server base URL is carried in
// the location fragment.
func New(location *url.URL, flowType constants.FlowType) (*FlowContext, error) {
	base := strings.TrimSuffix(location.Fragment, "/")
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, serviceerror.New(constants.ErrorInvalidFrameLocation, err)
	}

	query := location.Query()
	fctx := &FlowContext{
		flowType:                     flowType,
		authServerBaseURL:            base,
		flowRequestURL:               base + "/self-service/" + string(flowType) + "/flows",
		redirectURL:                  "/account/" + string(flowType),
		returnToURL:                  query.Get(constants.QueryParamReturnTo),
		afterVerificationReturnToURL: query.Get(constants.QueryParamAfterVerificationReturnTo),
	}
	switch flowType {
	case constants.FlowTypeSettings:
		fctx.redirectURL = settingsRedirectURL
	case constants.FlowTypeRecovery:
		fctx.redirectURL = constants.HostPathReset
	case constants.FlowTypeError:
		fctx.flowRequestURL = base + errorsPath
	}

	browserInit, err := url.Parse(base + "/self-service/" + string(flowType) + "/browser")
	if err != nil {
		return nil, serviceerror.New(constants.ErrorInvalidFrameLocation, err)
	}
	params := browserInit.Query()
	if fctx.returnToURL != "" {
		params.Add(constants.QueryParamReturnTo, fctx.returnToURL)
	}
	if fctx.afterVerificationReturnToURL != "" {
		params.Add(constants.QueryParamAfterVerificationReturnTo, fctx.afterVerificationReturnToURL)
	}
	browserInit.RawQuery = params.Encode()
	fctx.browserInitURL = browserInit.String()
	return fctx, nil
}

// FlowType returns the flow type of the run.
func (c *FlowContext) FlowType() constants.FlowType { return c.flowType }

// AuthServerBaseURL returns the identity server base URL.
func (c *FlowContext) AuthServerBaseURL() string { return c.authServerBaseURL }

// FlowRequestURL returns the URL the flow definition is fetched from.
func (c *FlowContext) FlowRequestURL() string { return c.flowRequestURL }

// RedirectURL returns the host page the frame is sent to when it is not embedded.
func (c *FlowContext) RedirectURL() string { return c.redirectURL }

// BrowserInitURL returns the URL that mints a fresh flow.
func (c *FlowContext) BrowserInitURL() string { return c.browserInitURL }

// ReturnToURL returns the return_to parameter, if any.
func (c *FlowContext) ReturnToURL() string { return c.returnToURL }

// AfterVerificationReturnToURL returns the after_verification_return_to parameter, if any.
func (c *FlowContext) AfterVerificationReturnToURL() string { return c.afterVerificationReturnToURL }

// SessionURL returns the session probe endpoint.
func (c *FlowContext) SessionURL() string { return c.authServerBaseURL + "/sessions/whoami" }
