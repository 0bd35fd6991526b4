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

// Package fetcher resolves the flow id of the page and retrieves the flow definition.
package fetcher

import (
	"context"
	"net/http"
	"net/url"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/flowctx"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	serverconst "github.com/invity/authflow/internal/system/constants"
	"github.com/invity/authflow/internal/system/error/serviceerror"
	httpservice "github.com/invity/authflow/internal/system/http"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/utils"
)

const loggerComponentName = "FlowFetcher"

// Fetcher talks to the flow endpoints of the identity server.
type Fetcher struct {
	client   httpservice.HTTPClientInterface
	window   host.HostWindow
	notifier host.NotifierInterface
	view     *form.View
}

// NewFetcher creates a flow fetcher.
func NewFetcher(client httpservice.HTTPClientInterface, window host.HostWindow, notifier host.NotifierInterface,
	view *form.View) *Fetcher {
	return &Fetcher{client: client, window: window, notifier: notifier, view: view}
}

// ResolveFlowID reads the flow id from the page query. Error flows read the error id instead. A
// page without a flow id is sent to mint a fresh flow and the run exits.
func (f *Fetcher) ResolveFlowID(fctx *flowctx.FlowContext) (string, model.Outcome) {
	query := f.window.Location().Query()
	if fctx.FlowType() == constants.FlowTypeError {
		f.notifier.Resize()
		return query.Get(constants.QueryParamError), model.Continue()
	}

	flowID := query.Get(constants.QueryParamFlow)
	if flowID == "" {
		f.window.Navigate(fctx.BrowserInitURL())
		return "", model.Exited()
	}
	f.notifier.Resize()
	return flowID, model.Continue()
}

// FetchFlow retrieves the flow definition. A flow error carrying a redirect is followed and the
// run exits; any other flow error is shown on the form and fails the run.
func (f *Fetcher) FetchFlow(ctx context.Context, fctx *flowctx.FlowContext,
	flowID string) (*model.FlowDefinition, model.Outcome) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowType, string(fctx.FlowType())), log.String(log.LoggerKeyFlowID, flowID))

	requestURL, err := flowRequestURL(fctx, flowID)
	if err != nil {
		return nil, model.Failed(serviceerror.New(constants.ErrorInvalidFrameLocation, err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, model.Failed(serviceerror.New(constants.ErrorIdentityServerUnreachable, err))
	}
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, model.Failed(serviceerror.New(constants.ErrorIdentityServerUnreachable, err))
	}
	defer utils.CloseResponseBody(resp, logger)

	var definition model.FlowDefinition
	if err := utils.DecodeJSONResponse(resp, &definition); err != nil {
		return nil, model.Failed(serviceerror.New(constants.ErrorInvalidResponse, err))
	}

	if definition.Error != nil {
		if redirectTo := definition.Error.Details.RedirectTo; redirectTo != "" {
			logger.Debug("Flow is no longer valid, following the server redirect")
			f.window.Navigate(redirectTo)
			return nil, model.Exited()
		}
		f.view.ShowMessage(constants.MessageTypeError, constants.TextUnexpectedError, true)
		return nil, model.Failed(serviceerror.New(constants.ErrorFlowResponse,
			&model.FlowError{Payload: *definition.Error}))
	}
	logger.Debug("Flow definition fetched", log.Int("nodes", len(definition.UI.Nodes)))
	return &definition, model.Continue()
}

func flowRequestURL(fctx *flowctx.FlowContext, flowID string) (string, error) {
	requestURL, err := url.Parse(fctx.FlowRequestURL())
	if err != nil {
		return "", err
	}
	key := constants.QueryParamID
	if fctx.FlowType() == constants.FlowTypeError {
		key = constants.QueryParamError
	}
	requestURL.RawQuery = url.Values{key: []string{flowID}}.Encode()
	return requestURL.String(), nil
}
