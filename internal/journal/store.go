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

package journal

import (
	"fmt"
	"time"

	"github.com/invity/authflow/internal/system/database/provider"
)

// StoreInterface defines the journal persistence operations.
type StoreInterface interface {
	EnsureSchema() error
	Append(entry Entry) error
	ListByRun(runID string) ([]Entry, error)
}

// Store is the database backed journal store.
type Store struct {
	dbProvider provider.DBProviderInterface
}

// NewStore creates a journal store using the default database provider.
func NewStore() StoreInterface {
	return &Store{dbProvider: provider.GetDBProvider()}
}

// NewStoreWithProvider creates a journal store on the given database provider.
func NewStoreWithProvider(dbProvider provider.DBProviderInterface) StoreInterface {
	return &Store{dbProvider: dbProvider}
}

// EnsureSchema creates the journal table if needed.
func (s *Store) EnsureSchema() error {
	dbClient, err := s.dbProvider.GetJournalDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	if _, err := dbClient.Execute(queryCreateJournalTable); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// Append stores a journal entry.
func (s *Store) Append(entry Entry) error {
	dbClient, err := s.dbProvider.GetJournalDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	_, err = dbClient.Execute(queryInsertJournalEntry, entry.ID, entry.RunID, entry.Seq, entry.FlowType,
		entry.Payload, entry.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// ListByRun returns the entries of a run in the order they were sent.
func (s *Store) ListByRun(runID string) ([]Entry, error) {
	dbClient, err := s.dbProvider.GetJournalDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	results, err := dbClient.Query(queryGetJournalEntriesByRun, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, row := range results {
		entry, err := buildEntryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build journal entry from result row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func buildEntryFromResultRow(row map[string]interface{}) (Entry, error) {
	entryID, err := stringColumn(row, "entry_id")
	if err != nil {
		return Entry{}, err
	}
	runID, err := stringColumn(row, "run_id")
	if err != nil {
		return Entry{}, err
	}
	flowType, err := stringColumn(row, "flow_type")
	if err != nil {
		return Entry{}, err
	}
	payload, err := stringColumn(row, "payload")
	if err != nil {
		return Entry{}, err
	}

	seq, err := int64Column(row, "seq")
	if err != nil {
		return Entry{}, err
	}
	createdAt, err := int64Column(row, "created_at")
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		ID:        entryID,
		RunID:     runID,
		Seq:       seq,
		FlowType:  flowType,
		Payload:   payload,
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}, nil
}

func int64Column(row map[string]interface{}, column string) (int64, error) {
	switch v := row[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("failed to parse %s as int64", column)
	}
}

func stringColumn(row map[string]interface{}, column string) (string, error) {
	switch v := row[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}
