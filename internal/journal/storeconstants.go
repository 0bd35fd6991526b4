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

import "github.com/invity/authflow/internal/system/database/model"

var (
	// queryCreateJournalTable creates the journal table when it does not exist.
	queryCreateJournalTable = model.DBQuery{
		ID: "AFQ-JOURNAL-01",
		Query: "CREATE TABLE IF NOT EXISTS HOST_MESSAGE_JOURNAL (ENTRY_ID VARCHAR(36) PRIMARY KEY, " +
			"RUN_ID VARCHAR(36) NOT NULL, SEQ BIGINT NOT NULL, FLOW_TYPE VARCHAR(32) NOT NULL, PAYLOAD TEXT NOT NULL, " +
			"CREATED_AT BIGINT NOT NULL, UNIQUE (RUN_ID, SEQ))",
	}
	// queryInsertJournalEntry appends a journal entry.
	queryInsertJournalEntry = model.DBQuery{
		ID: "AFQ-JOURNAL-02",
		Query: "INSERT INTO HOST_MESSAGE_JOURNAL (ENTRY_ID, RUN_ID, SEQ, FLOW_TYPE, PAYLOAD, CREATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6)",
		SQLiteQuery: "INSERT INTO HOST_MESSAGE_JOURNAL (ENTRY_ID, RUN_ID, SEQ, FLOW_TYPE, PAYLOAD, CREATED_AT) " +
			"VALUES (?, ?, ?, ?, ?, ?)",
	}
	// queryGetJournalEntriesByRun lists the entries of a run in the order they were sent.
	queryGetJournalEntriesByRun = model.DBQuery{
		ID: "AFQ-JOURNAL-03",
		Query: "SELECT ENTRY_ID, RUN_ID, SEQ, FLOW_TYPE, PAYLOAD, CREATED_AT FROM HOST_MESSAGE_JOURNAL " +
			"WHERE RUN_ID = $1 ORDER BY SEQ",
		SQLiteQuery: "SELECT ENTRY_ID, RUN_ID, SEQ, FLOW_TYPE, PAYLOAD, CREATED_AT FROM HOST_MESSAGE_JOURNAL " +
			"WHERE RUN_ID = ? ORDER BY SEQ",
	}
)
