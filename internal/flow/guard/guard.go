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

// Package guard keeps the flow page from running outside of its host frame.
package guard

import (
	"github.com/invity/authflow/internal/flow/flowctx"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
)

// CheckEmbedding sends a top-level page to the host UI and exits, or reveals an embedded page.
// A failing embedding check counts as embedded.
func CheckEmbedding(window host.HostWindow, fctx *flowctx.FlowContext) model.Outcome {
	embedded, err := window.IsEmbedded()
	if err != nil {
		log.GetLogger().Debug("Embedding check failed, assuming an embedded page", log.Error(err))
		embedded = true
	}
	if !embedded {
		window.Navigate(fctx.RedirectURL())
		return model.Exited()
	}
	window.Reveal()
	return model.Continue()
}
