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

package binder

import (
	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/host"
)

// messageHandler handles a flow level message. Returning a continuing outcome displays the
// possibly rewritten message.
type messageHandler func(b *Binder, flowType constants.FlowType, message *model.FlowMessage) model.Outcome

var messageCatalog = map[constants.MessageID]messageHandler{
	constants.MessageIDAlreadyRegistered:     onAlreadyRegistered,
	constants.MessageIDInvalidCredentials:    onInvalidCredentials,
	constants.MessageIDRecoveryEmailSent:     onRecoveryEmailSent,
	constants.MessageIDSettingsSaved:         onSettingsSaved,
	constants.MessageIDFlowExpired:           onFlowExpired,
	constants.MessageIDVerificationEmailSent: onVerificationEmailSent,
}

func onAlreadyRegistered(b *Binder, _ constants.FlowType, _ *model.FlowMessage) model.Outcome {
	b.view.Disable()
	b.notifier.Send(host.NamedAction(host.ActionRegistrationSuccessful))
	return model.Exited()
}

func onInvalidCredentials(b *Binder, _ constants.FlowType, message *model.FlowMessage) model.Outcome {
	message.Text = b.translator.Translate(constants.TranslationKeyInvalidCredentials, constants.TextInvalidCredentials)
	return model.Continue()
}

func onRecoveryEmailSent(b *Binder, _ constants.FlowType, _ *model.FlowMessage) model.Outcome {
	if b.window.CurrentPath() == constants.HostPathResetSent {
		return model.Continue()
	}
	b.view.Disable()
	b.notifier.Send(host.NamedAction(host.ActionRecoverySent))
	return model.Exited()
}

func onSettingsSaved(b *Binder, flowType constants.FlowType, _ *model.FlowMessage) model.Outcome {
	if flowType != constants.FlowTypeSettings {
		return model.Continue()
	}
	b.notifier.Send(host.NamedAction(host.ActionSettingsSuccessful))
	return model.Exited()
}

func onFlowExpired(b *Binder, _ constants.FlowType, _ *model.FlowMessage) model.Outcome {
	b.notifier.Send(host.Reload())
	return model.Exited()
}

func onVerificationEmailSent(b *Binder, _ constants.FlowType, message *model.FlowMessage) model.Outcome {
	message.Text = b.translator.Translate(constants.TranslationKeyRecoveryLinkSent, constants.TextRecoveryLinkSent)
	return model.Continue()
}
