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
	"encoding/json"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/invity/authflow/internal/host"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/system/timer"
)

// Messenger forwards host messages and journals every delivered message.
type Messenger struct {
	next     host.MessengerInterface
	store    StoreInterface
	clock    timer.Clock
	runID    string
	flowType string
	seq      atomic.Int64
	logger   *log.Logger
}

// NewMessenger wraps a messenger so that every delivered message of the run is journaled.
func NewMessenger(next host.MessengerInterface, store StoreInterface, clock timer.Clock, runID,
	flowType string) host.MessengerInterface {
	return &Messenger{
		next:     next,
		store:    store,
		clock:    clock,
		runID:    runID,
		flowType: flowType,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "JournalMessenger"),
			log.String(log.LoggerKeyRunID, runID)),
	}
}

// Send delivers the message and journals it. Journal failures are logged and never returned.
func (m *Messenger) Send(msg host.OutboundMessage) error {
	if err := m.next.Send(msg); err != nil {
		return err
	}

	payload, err := json.Marshal(msg.Envelope(host.MessageChannelName))
	if err != nil {
		m.logger.Error("Failed to encode journal payload", log.Error(err))
		return nil
	}
	entry := Entry{
		ID:        uuid.NewString(),
		RunID:     m.runID,
		Seq:       m.seq.Add(1),
		FlowType:  m.flowType,
		Payload:   string(payload),
		CreatedAt: m.clock.Now(),
	}
	if err := m.store.Append(entry); err != nil {
		m.logger.Error("Failed to journal host message", log.String("kind", string(msg.Kind)), log.Error(err))
	}
	return nil
}
