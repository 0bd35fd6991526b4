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

// Package utils provides helpers for identity server HTTP responses.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/invity/authflow/internal/system/log"
)

// maxResponseBodySize bounds the identity server responses that are decoded.
const maxResponseBodySize = 1 << 20

// ErrEmptyResponse is returned when a response carries no body.
var ErrEmptyResponse = errors.New("empty response body")

// DecodeJSONResponse decodes the JSON body of the response into v.
func DecodeJSONResponse(resp *http.Response, v any) error {
	if resp.Body == nil {
		return ErrEmptyResponse
	}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyResponse
		}
		return fmt.Errorf("failed to decode response with status %d: %w", resp.StatusCode, err)
	}
	return nil
}

// CloseResponseBody closes the response body, logging a failure.
func CloseResponseBody(resp *http.Response, logger *log.Logger) {
	if resp == nil || resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		logger.Error("Failed to close response body", log.Error(err))
	}
}
