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

// Package session probes the identity server session and watches the privileged session window.
package session

import (
	"context"
	"net/http"

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

const loggerComponentName = "SessionProber"

// Prober classifies the visitor from the identity server session.
type Prober struct {
	client   httpservice.HTTPClientInterface
	window   host.HostWindow
	notifier host.NotifierInterface
	view     *form.View
	cookies  form.CookieStore
	monitor  *PrivilegedSessionMonitor
}

// NewProber creates a session prober.
func NewProber(client httpservice.HTTPClientInterface, window host.HostWindow, notifier host.NotifierInterface,
	view *form.View, cookies form.CookieStore, monitor *PrivilegedSessionMonitor) *Prober {
	return &Prober{
		client:   client,
		window:   window,
		notifier: notifier,
		view:     view,
		cookies:  cookies,
		monitor:  monitor,
	}
}

// Probe fetches the session and applies the flow-type-specific consequences. Unauthenticated
// visitors whose email cannot be prefilled end the run, as do visitors with a known session on a
// recovery flow.
func (p *Prober) Probe(ctx context.Context, fctx *flowctx.FlowContext) model.Outcome {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowType, string(fctx.FlowType())))

	whoami, err := p.fetchSession(ctx, fctx)
	if err != nil {
		return model.Failed(err)
	}

	flowType := fctx.FlowType()
	currentPath := p.window.CurrentPath()
	if whoami.Error != nil {
		logger.Debug("No active session", log.String("reason", whoami.Error.Reason))
		if form.PrefillEmail(p.view, "", flowType, currentPath, p.cookies) {
			return model.Continue()
		}
		switch currentPath {
		case constants.HostPathResetSent:
			p.notifier.Send(host.RedirectTo(host.RedirectRecovery))
		case constants.HostPathVerification:
			p.notifier.Send(host.RedirectTo(host.RedirectRegistration))
		}
		return model.Exited()
	}

	info := whoami.ToSessionInfo()
	p.monitor.Watch(info.AuthenticatedAt, flowType)

	address := model.VerifiableAddress{}
	if info.VerifiableAddress != nil {
		address = *info.VerifiableAddress
	} else {
		logger.Warn("Session carries no verifiable address")
	}
	logger.Debug("Active session found", log.String("email", log.MaskString(address.Value)),
		log.Bool("verified", address.Verified))

	switch {
	case flowType.In(constants.FlowTypeRegistration, constants.FlowTypeLogin),
		flowType == constants.FlowTypeVerification && address.Verified:
		p.notifier.Send(host.LoginSuccessful())
	case flowType == constants.FlowTypeRecovery:
		if address.Verified {
			p.notifier.Send(host.RedirectTo(host.RedirectSettings))
		} else {
			p.notifier.Send(host.RedirectTo(host.RedirectVerification))
		}
		return model.Exited()
	}
	form.PrefillEmail(p.view, address.Value, flowType, currentPath, p.cookies)
	return model.Continue()
}

func (p *Prober) fetchSession(ctx context.Context, fctx *flowctx.FlowContext) (*model.WhoamiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fctx.SessionURL(), nil)
	if err != nil {
		return nil, serviceerror.New(constants.ErrorIdentityServerUnreachable, err)
	}
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, serviceerror.New(constants.ErrorIdentityServerUnreachable, err)
	}
	defer utils.CloseResponseBody(resp, log.GetLogger())

	var whoami model.WhoamiResponse
	if err := utils.DecodeJSONResponse(resp, &whoami); err != nil {
		return nil, serviceerror.New(constants.ErrorInvalidResponse, err)
	}
	return &whoami, nil
}
