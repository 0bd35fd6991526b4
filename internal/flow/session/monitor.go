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
	"time"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/system/timer"
)

// PrivilegedSessionMaxAge matches the identity server's privileged session max age for settings.
const PrivilegedSessionMaxAge = 5 * time.Minute

// PrivilegedSessionMonitor turns the settings submit into a logout once the privileged session
// window is over.
type PrivilegedSessionMonitor struct {
	clock    timer.Clock
	view     *form.View
	notifier host.NotifierInterface
}

// NewPrivilegedSessionMonitor creates a monitor.
func NewPrivilegedSessionMonitor(clock timer.Clock, view *form.View,
	notifier host.NotifierInterface) *PrivilegedSessionMonitor {
	return &PrivilegedSessionMonitor{clock: clock, view: view, notifier: notifier}
}

// Watch degrades the submit action now when the window already elapsed, or arms a timer for the
// moment it does. Only settings flows are watched.
func (m *PrivilegedSessionMonitor) Watch(authenticatedAt time.Time, flowType constants.FlowType) {
	if flowType != constants.FlowTypeSettings {
		return
	}
	elapsed := m.clock.Now().Sub(authenticatedAt)
	minutes := int64(elapsed / time.Minute)
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PrivilegedSessionMonitor"))

	if minutes > int64(PrivilegedSessionMaxAge/time.Minute) {
		logger.Debug("Privileged session expired, submit logs out", log.Int64("minutes", minutes))
		form.SetLogoutOnSubmit(m.view, m.notifier)
		return
	}
	m.clock.AfterFunc(PrivilegedSessionMaxAge-elapsed, func() {
		logger.Debug("Privileged session expired, submit logs out")
		form.SetLogoutOnSubmit(m.view, m.notifier)
	})
}
