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

package hostmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/invity/authflow/internal/host"
)

// MessengerInterfaceMock is a mock implementation of host.MessengerInterface.
type MessengerInterfaceMock struct {
	mock.Mock
}

// Send provides a mock function with given fields: msg
func (_m *MessengerInterfaceMock) Send(msg host.OutboundMessage) error {
	ret := _m.Called(msg)

	var r0 error
	if rf, ok := ret.Get(0).(func(host.OutboundMessage) error); ok {
		r0 = rf(msg)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// NewMessengerInterfaceMock creates a new instance of MessengerInterfaceMock.
func NewMessengerInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessengerInterfaceMock {
	m := &MessengerInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
