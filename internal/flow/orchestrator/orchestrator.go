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

// Package orchestrator sequences the steps of a flow page run.
package orchestrator

import (
	"context"

	"github.com/google/uuid"

	"github.com/invity/authflow/internal/flow/binder"
	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/expiry"
	"github.com/invity/authflow/internal/flow/fetcher"
	"github.com/invity/authflow/internal/flow/flowctx"
	"github.com/invity/authflow/internal/flow/guard"
	"github.com/invity/authflow/internal/flow/model"
	"github.com/invity/authflow/internal/flow/session"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/journal"
	httpservice "github.com/invity/authflow/internal/system/http"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/system/timer"
	"github.com/invity/authflow/internal/translate"
)

// State is a state of the run state machine.
type State string

// Run states.
const (
	StateStart            State = "start"
	StateEmbeddingChecked State = "embedding-checked"
	StateSessionProbed    State = "session-probed"
	StateFlowFetched      State = "flow-fetched"
	StateBound            State = "bound"
	StateLoaded           State = "loaded"
	StateExited           State = "exited"
	StateFatal            State = "fatal"
)

// RunResult is the terminal state of a run.
type RunResult struct {
	RunID string
	// State is loaded, exited or fatal.
	State State
	// Reached is the last non-terminal state the run passed.
	Reached State
	Err     error
}

// Dependencies are the capabilities a page runs against.
type Dependencies struct {
	Window     host.HostWindow
	View       *form.View
	Clock      timer.Clock
	Client     httpservice.HTTPClientInterface
	Cookies    form.CookieStore
	Translator *translate.Translator
	// Journal is optional. When set every delivered host message is journaled.
	Journal journal.StoreInterface
}

// Page is a single flow page load. A page executes exactly one run.
type Page struct {
	flowType constants.FlowType
	deps     Dependencies
	runID    string
	notifier host.NotifierInterface
	logger   *log.Logger
}

// NewPage creates a page for the flow type.
func NewPage(flowType constants.FlowType, deps Dependencies) *Page {
	if deps.Clock == nil {
		deps.Clock = timer.NewSystemClock()
	}
	if deps.Client == nil {
		deps.Client = httpservice.GetHTTPClient()
	}
	runID := uuid.NewString()

	messenger := host.NewMessenger(deps.Window)
	if deps.Journal != nil {
		messenger = journal.NewMessenger(messenger, deps.Journal, deps.Clock, runID, string(flowType))
	}

	return &Page{
		flowType: flowType,
		deps:     deps,
		runID:    runID,
		notifier: host.NewNotifier(messenger, deps.Window),
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Orchestrator"),
			log.String(log.LoggerKeyRunID, runID), log.String(log.LoggerKeyFlowType, string(flowType))),
	}
}

// RunID returns the id of the page run.
func (p *Page) RunID() string {
	return p.runID
}

// OnResize forwards a window resize to the host.
func (p *Page) OnResize() {
	p.notifier.Resize()
}

// Run executes the flow steps in order until the form is loaded or a step ends the run.
func (p *Page) Run(ctx context.Context) RunResult {
	p.notifier.Send(host.Loading())
	p.notifier.Resize()

	reached := StateStart
	finish := func(outcome model.Outcome) RunResult {
		return p.finish(reached, outcome)
	}

	fctx, err := flowctx.New(p.deps.Window.Location(), p.flowType)
	if err != nil {
		return finish(model.Failed(err))
	}
	if err := expiry.NewScheduler(p.deps.Clock, p.deps.Window).Arm(fctx, p.flowType); err != nil {
		return finish(model.Failed(err))
	}

	if outcome := guard.CheckEmbedding(p.deps.Window, fctx); !outcome.Proceed() {
		return finish(outcome)
	}
	reached = StateEmbeddingChecked

	currentPath := p.deps.Window.CurrentPath()
	outcome := form.InstallSubmitRules(form.SubmitWiring{
		View:        p.deps.View,
		FlowType:    p.flowType,
		Location:    p.deps.Window.Location(),
		CurrentPath: currentPath,
		Notifier:    p.notifier,
		Cookies:     p.deps.Cookies,
	})
	if !outcome.Proceed() {
		return finish(outcome)
	}
	form.InstallValidators(p.deps.View, p.flowType, p.notifier)

	monitor := session.NewPrivilegedSessionMonitor(p.deps.Clock, p.deps.View, p.notifier)
	prober := session.NewProber(p.deps.Client, p.deps.Window, p.notifier, p.deps.View, p.deps.Cookies, monitor)
	if outcome := prober.Probe(ctx, fctx); !outcome.Proceed() {
		return finish(outcome)
	}
	reached = StateSessionProbed

	flowFetcher := fetcher.NewFetcher(p.deps.Client, p.deps.Window, p.notifier, p.deps.View)
	flowID, outcome := flowFetcher.ResolveFlowID(fctx)
	if !outcome.Proceed() {
		return finish(outcome)
	}
	definition, outcome := flowFetcher.FetchFlow(ctx, fctx, flowID)
	if !outcome.Proceed() {
		return finish(outcome)
	}
	reached = StateFlowFetched

	formBinder := binder.NewBinder(p.deps.Window, p.notifier, p.deps.View, p.deps.Translator)
	if outcome := formBinder.Bind(definition, p.flowType); !outcome.Proceed() {
		return finish(outcome)
	}
	reached = StateBound

	p.notifier.Send(host.Loaded())
	p.logger.Debug("Flow form loaded", log.String(log.LoggerKeyFlowID, flowID))
	return RunResult{RunID: p.runID, State: StateLoaded, Reached: reached}
}

func (p *Page) finish(reached State, outcome model.Outcome) RunResult {
	result := RunResult{RunID: p.runID, Reached: reached}
	switch outcome.Kind {
	case model.OutcomeExited:
		result.State = StateExited
		p.logger.Debug("Run exited", log.String("reached", string(reached)))
	default:
		result.State = StateFatal
		result.Err = outcome.Reason
		p.logger.Error("Run failed", log.String("reached", string(reached)), log.Error(outcome.Reason))
	}
	return result
}
