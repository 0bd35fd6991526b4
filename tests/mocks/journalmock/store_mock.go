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

// Package journalmock provides mock implementations of the journal interfaces.
package journalmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/invity/authflow/internal/journal"
)

// StoreInterfaceMock is a mock implementation of journal.StoreInterface.
type StoreInterfaceMock struct {
	mock.Mock
}

// EnsureSchema provides a mock function with given fields:
func (_m *StoreInterfaceMock) EnsureSchema() error {
	ret := _m.Called()
	return ret.Error(0)
}

// Append provides a mock function with given fields: entry
func (_m *StoreInterfaceMock) Append(entry journal.Entry) error {
	ret := _m.Called(entry)

	var r0 error
	if rf, ok := ret.Get(0).(func(journal.Entry) error); ok {
		r0 = rf(entry)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// ListByRun provides a mock function with given fields: runID
func (_m *StoreInterfaceMock) ListByRun(runID string) ([]journal.Entry, error) {
	ret := _m.Called(runID)

	var r0 []journal.Entry
	if v := ret.Get(0); v != nil {
		r0 = v.([]journal.Entry)
	}
	return r0, ret.Error(1)
}

// NewStoreInterfaceMock creates a new instance of StoreInterfaceMock.
func NewStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterfaceMock {
	m := &StoreInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
