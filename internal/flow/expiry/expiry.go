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

// Package expiry reloads the flow before the identity server expires it.
package expiry

import (
	"errors"
	"fmt"
	"time"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/flowctx"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/system/timer"
)

// ErrUnexpectedFlowType is returned for flow types without an expiry window.
var ErrUnexpectedFlowType = errors.New("unexpected flow type")

const (
	shortLivedFlowExpiry = 30 * time.Minute
	longLivedFlowExpiry  = 120 * time.Minute
)

// Window returns the expiry window of the flow type.
func Window(flowType constants.FlowType) (time.Duration, error) {
	switch flowType {
	case constants.FlowTypeLogin, constants.FlowTypeRegistration, constants.FlowTypeSettings:
		return shortLivedFlowExpiry, nil
	case constants.FlowTypeVerification, constants.FlowTypeRecovery:
		return longLivedFlowExpiry, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedFlowType, flowType)
	}
}

// Scheduler arms the reload timer of a run.
type Scheduler struct {
	clock  timer.Clock
	window host.HostWindow
}

// NewScheduler creates a scheduler.
func NewScheduler(clock timer.Clock, window host.HostWindow) *Scheduler {
	return &Scheduler{clock: clock, window: window}
}

// Arm schedules a single navigation to the fresh-flow URL once the window of the flow type elapses.
func (s *Scheduler) Arm(fctx *flowctx.FlowContext, flowType constants.FlowType) error {
	window, err := Window(flowType)
	if err != nil {
		return err
	}
	target := fctx.BrowserInitURL()
	s.clock.AfterFunc(window, func() {
		log.GetLogger().Debug("Flow is about to expire, requesting a new one",
			log.String(log.LoggerKeyFlowType, string(flowType)))
		s.window.Navigate(target)
	})
	return nil
}
