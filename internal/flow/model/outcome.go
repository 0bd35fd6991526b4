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

package model

import "fmt"

// OutcomeKind is the variant of an Outcome.
type OutcomeKind int

const (
	// OutcomeContinue means the step completed and the run proceeds.
	OutcomeContinue OutcomeKind = iota
	// OutcomeExited means the step ended the run on purpose, usually after a redirect or a
	// terminal host notification. It is never reported as an error.
	OutcomeExited
	// OutcomeFailed means the step hit an unexpected error and the run is aborted.
	OutcomeFailed
)

// String returns a readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeExited:
		return "exited"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is returned by every orchestrator step.
type Outcome struct {
	Kind   OutcomeKind
	Reason error
}

// Continue returns an outcome that lets the run proceed.
func Continue() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

// Exited returns the controlled early-exit outcome.
func Exited() Outcome {
	return Outcome{Kind: OutcomeExited}
}

// Failed returns a fatal outcome carrying the reason.
func Failed(reason error) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

// Proceed reports whether the run should continue after this outcome.
func (o Outcome) Proceed() bool {
	return o.Kind == OutcomeContinue
}
