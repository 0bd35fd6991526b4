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

// Package model defines the data structures exchanged with the identity server and the
// outcome type that drives the orchestrator state machine.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// FlowDefinition is the identity server's description of the current form.
type FlowDefinition struct {
	ID     string        `json:"id,omitempty"`
	UI     FlowUI        `json:"ui"`
	Error  *ServerError  `json:"error,omitempty"`
	Errors []ServerError `json:"errors,omitempty"`
	State  string        `json:"state,omitempty"`
}

// FlowUI holds the form action, method, nodes and flow level messages.
type FlowUI struct {
	Action   string        `json:"action"`
	Method   string        `json:"method"`
	Nodes    []FormNode    `json:"nodes"`
	Messages []FlowMessage `json:"messages,omitempty"`
}

// FormNode is a single form field described by the identity server.
type FormNode struct {
	Type       string         `json:"type,omitempty"`
	Group      string         `json:"group,omitempty"`
	Attributes NodeAttributes `json:"attributes"`
	Messages   []FlowMessage  `json:"messages"`
}

// NodeAttributes holds the attributes of a form node.
type NodeAttributes struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value,omitempty"`
}

// ValueString returns the node value as a string. Non string values are rendered with fmt.
func (a NodeAttributes) ValueString() string {
	switch v := a.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// FlowMessage is a message attached to a node or to the whole flow.
type FlowMessage struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// ServerError is the error payload returned by the identity server.
type ServerError struct {
	ID      string             `json:"id,omitempty"`
	Code    int                `json:"code,omitempty"`
	Status  string             `json:"status,omitempty"`
	Reason  string             `json:"reason,omitempty"`
	Message string             `json:"message,omitempty"`
	Details ServerErrorDetails `json:"details,omitempty"`
}

// ServerErrorDetails holds the optional details of a server error.
type ServerErrorDetails struct {
	RedirectTo string `json:"redirect_to,omitempty"`
}

// FlowError is raised when the identity server reports an error for the requested flow.
type FlowError struct {
	Payload ServerError
}

// Error implements the error interface. The payload is rendered as JSON so logs carry the full detail.
func (e *FlowError) Error() string {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return e.Payload.Message
	}
	return string(payload)
}

// WhoamiResponse is the raw session probe response.
type WhoamiResponse struct {
	Error           *ServerError     `json:"error,omitempty"`
	Active          bool             `json:"active"`
	AuthenticatedAt time.Time        `json:"authenticated_at"`
	Identity        *SessionIdentity `json:"identity,omitempty"`
}

// SessionIdentity is the identity part of a session.
type SessionIdentity struct {
	ID                  string              `json:"id,omitempty"`
	VerifiableAddresses []VerifiableAddress `json:"verifiable_addresses"`
}

// VerifiableAddress is an address that can be verified by the identity server.
type VerifiableAddress struct {
	Value    string `json:"value"`
	Verified bool   `json:"verified"`
}

// SessionInfo classifies the visitor for a single run. It is never cached across runs.
type SessionInfo struct {
	Authenticated     bool
	AuthenticatedAt   time.Time
	VerifiableAddress *VerifiableAddress
}

// ToSessionInfo converts the probe response to SessionInfo.
func (r *WhoamiResponse) ToSessionInfo() SessionInfo {
	info := SessionInfo{
		Authenticated:   r.Error == nil,
		AuthenticatedAt: r.AuthenticatedAt,
	}
	if r.Identity != nil && len(r.Identity.VerifiableAddresses) > 0 {
		address := r.Identity.VerifiableAddresses[0]
		info.VerifiableAddress = &address
	}
	return info
}
