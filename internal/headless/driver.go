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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/flow/orchestrator"
	"github.com/invity/authflow/internal/form"
	"github.com/invity/authflow/internal/journal"
	serverconst "github.com/invity/authflow/internal/system/constants"
	httpservice "github.com/invity/authflow/internal/system/http"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/system/timer"
	"github.com/invity/authflow/internal/translate"
	"github.com/invity/authflow/internal/utils"
)

// ErrTooManyNavigations is returned when the pages keep navigating past the configured limit.
var ErrTooManyNavigations = errors.New("too many navigations")

// ErrUnexpectedNavigationResponse is returned when a fresh-flow request is not answered with a redirect.
var ErrUnexpectedNavigationResponse = errors.New("unexpected navigation response")

// Options configure the headless driver.
type Options struct {
	FlowType          constants.FlowType
	FrameURL          string
	IdentityServerURL string
	Window            WindowOptions
	MaxNavigations    int
	Timeout           time.Duration
	// Wait keeps the last page open until the context is done so armed timers can fire.
	Wait       bool
	Translator *translate.Translator
	Journal    journal.StoreInterface
	Clock      timer.Clock
	Out        io.Writer
}

// Driver loads flow pages one after another, following the navigations they request.
type Driver struct {
	options    Options
	jar        http.CookieJar
	pageClient httpservice.HTTPClientInterface
	navClient  httpservice.HTTPClientInterface
	identity   *url.URL
	logger     *log.Logger
}

// NewDriver creates a driver with a fresh cookie jar.
func NewDriver(options Options) (*Driver, error) {
	identity, err := url.Parse(options.IdentityServerURL)
	if err != nil || identity.Host == "" {
		return nil, fmt.Errorf("invalid identity server URL %q", options.IdentityServerURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if options.Clock == nil {
		options.Clock = timer.NewSystemClock()
	}
	if options.Out == nil {
		options.Out = io.Discard
	}
	if options.Timeout <= 0 {
		options.Timeout = 30 * time.Second
	}

	return &Driver{
		options:    options,
		jar:        jar,
		pageClient: httpservice.NewCredentialedHTTPClient(options.Timeout, jar),
		navClient:  httpservice.NewNonRedirectingHTTPClient(options.Timeout, jar),
		identity:   identity,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HeadlessDriver"),
			log.String(log.LoggerKeyFlowType, string(options.FlowType))),
	}, nil
}

// Run loads the first page and every flow page it navigates to. It returns the error of the last
// run, if it failed.
func (d *Driver) Run(ctx context.Context) error {
	frame, err := url.Parse(d.options.FrameURL)
	if err != nil {
		return fmt.Errorf("invalid frame URL: %w", err)
	}
	frame.Fragment = d.options.IdentityServerURL

	for navigations := 0; ; navigations++ {
		pageClock := timer.NewPageClock(d.options.Clock)
		window := NewWindow(frame, d.options.Window, d.options.Out)
		page := orchestrator.NewPage(d.options.FlowType, orchestrator.Dependencies{
			Window:     window,
			View:       form.NewView(),
			Clock:      pageClock,
			Client:     d.pageClient,
			Cookies:    form.NewJarCookieStore(d.jar, frame),
			Translator: d.options.Translator,
			Journal:    d.options.Journal,
		})

		d.logger.Info("Loading flow page", log.String(log.LoggerKeyRunID, page.RunID()),
			log.String("frame", frameWithoutFragment(frame)))
		result := page.Run(ctx)
		d.logger.Info("Flow page settled", log.String(log.LoggerKeyRunID, result.RunID),
			log.String("state", string(result.State)), log.String("reached", string(result.Reached)))

		target, ok := d.awaitNavigation(ctx, window)
		pageClock.StopAll()
		if !ok {
			return result.Err
		}
		if navigations >= d.options.MaxNavigations {
			return fmt.Errorf("%w: limit is %d", ErrTooManyNavigations, d.options.MaxNavigations)
		}

		next, err := d.follow(ctx, frame, target)
		if err != nil {
			return err
		}
		if next == nil {
			d.logger.Info("Navigation leaves the flow page", log.String("target", target))
			return nil
		}
		frame = next
	}
}

func (d *Driver) awaitNavigation(ctx context.Context, window *Window) (string, bool) {
	if !d.options.Wait {
		select {
		case target := <-window.Navigations():
			return target, true
		default:
			return "", false
		}
	}
	select {
	case target := <-window.Navigations():
		return target, true
	case <-ctx.Done():
		return "", false
	}
}

// follow resolves a navigation. Identity server URLs are requested without following redirects and
// the redirect location is used. A location on the current flow page becomes the next frame; any
// other location leaves the flow and yields nil.
func (d *Driver) follow(ctx context.Context, frame *url.URL, target string) (*url.URL, error) {
	ref, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid navigation target %q: %w", target, err)
	}
	next := frame.ResolveReference(ref)

	if next.Host == d.identity.Host {
		next, err = d.requestFreshFlow(ctx, next)
		if err != nil {
			return nil, err
		}
	}
	if next.Host != frame.Host || next.Path != frame.Path {
		return nil, nil
	}
	next.Fragment = d.options.IdentityServerURL
	return next, nil
}

func (d *Driver) requestFreshFlow(ctx context.Context, target *url.URL) (*url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(serverconst.AcceptHeaderName, "text/html")

	resp, err := d.navClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", target.Path, err)
	}
	defer utils.CloseResponseBody(resp, d.logger)

	location, err := resp.Location()
	if err != nil || resp.StatusCode < http.StatusMultipleChoices || resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s answered %d", ErrUnexpectedNavigationResponse, target.Path, resp.StatusCode)
	}
	return location, nil
}

func frameWithoutFragment(frame *url.URL) string {
	copied := *frame
	copied.Fragment = ""
	return copied.String()
}
