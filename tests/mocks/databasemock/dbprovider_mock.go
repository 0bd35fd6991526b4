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

// Package databasemock provides mock implementations of the database interfaces.
package databasemock

import (
	"github.com/invity/authflow/internal/system/database/client"
)

// MockDBProvider is a mock implementation of the DBProviderInterface.
type MockDBProvider struct {
	// MockGetJournalDBClient defines the behavior for the GetJournalDBClient method.
	MockGetJournalDBClient func() (client.DBClientInterface, error)

	// GetJournalDBClientCalls tracks the calls to GetJournalDBClient.
	GetJournalDBClientCalls int

	// CloseCalls tracks the calls to Close.
	CloseCalls int
}

// GetJournalDBClient mocks the GetJournalDBClient method of the DBProviderInterface.
func (m *MockDBProvider) GetJournalDBClient() (client.DBClientInterface, error) {
	m.GetJournalDBClientCalls++

	if m.MockGetJournalDBClient != nil {
		return m.MockGetJournalDBClient()
	}
	return &MockDBClient{}, nil
}

// Close mocks the Close method of the DBProviderInterface.
func (m *MockDBProvider) Close() error {
	m.CloseCalls++
	return nil
}
