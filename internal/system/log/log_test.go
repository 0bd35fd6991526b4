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

package log

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/invity/authflow/internal/system/constants"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(constants.LogLevelEnvironmentVariable)
}

func (suite *LogTestSuite) TearDownTest() {
	err := os.Setenv(constants.LogLevelEnvironmentVariable, suite.originalLogLevel)
	if err != nil {
		suite.T().Errorf("Failed to restore environment variable: %v", err)
	}

	// Reset logger singleton for next test
	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestInitLoggerWithEnvironmentVariable() {
	testCases := []struct {
		name     string
		logLevel string
		isValid  bool
	}{
		{"DefaultLevel", "", true},
		{"DebugLevel", "debug", true},
		{"InfoLevel", "info", true},
		{"WarnLevel", "warn", true},
		{"ErrorLevel", "error", true},
		{"InvalidLevel", "unknown", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			logger = nil
			once = sync.Once{}

			if tc.logLevel != "" {
				assert.NoError(t, os.Setenv(constants.LogLevelEnvironmentVariable, tc.logLevel))
			} else {
				assert.NoError(t, os.Unsetenv(constants.LogLevelEnvironmentVariable))
			}

			if tc.isValid {
				assert.NotPanics(t, func() {
					_ = GetLogger()
				})
			} else {
				assert.Panics(t, func() {
					_ = GetLogger()
				})
			}
		})
	}
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name      string
		logLevel  string
		expected  zapcore.Level
		expectErr bool
	}{
		{"Debug", "debug", zapcore.DebugLevel, false},
		{"Info", "info", zapcore.InfoLevel, false},
		{"Warn", "warn", zapcore.WarnLevel, false},
		{"Error", "error", zapcore.ErrorLevel, false},
		{"Invalid", "invalid", zapcore.ErrorLevel, true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			level, err := parseLogLevel(tc.logLevel)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, level)
			}
		})
	}
}

func (suite *LogTestSuite) TestLogMethods() {
	core, recorded := observer.New(zapcore.DebugLevel)
	log := NewLogger(core)

	log.Debug("Debug message", String("test", "debug"))
	log.Info("Info message", String("test", "info"))
	log.Warn("Warning message", Int("count", 3))
	log.Error("Error message", Error(errors.New("boom")))

	entries := recorded.All()
	assert.Len(suite.T(), entries, 4)
	assert.Equal(suite.T(), "Debug message", entries[0].Message)
	assert.Equal(suite.T(), "debug", entries[0].ContextMap()["test"])
	assert.Equal(suite.T(), zapcore.WarnLevel, entries[2].Level)
	assert.Equal(suite.T(), int64(3), entries[2].ContextMap()["count"])
	assert.Equal(suite.T(), "boom", entries[3].ContextMap()["error"])
}

func (suite *LogTestSuite) TestLoggerWith() {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := NewLogger(core)

	contextLogger := log.With(String(LoggerKeyComponentName, "Orchestrator"))
	assert.NotNil(suite.T(), contextLogger)
	contextLogger.Info("Context log message")

	entries := recorded.All()
	assert.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "Orchestrator", entries[0].ContextMap()[LoggerKeyComponentName])
}

func (suite *LogTestSuite) TestIsDebugEnabled() {
	debugCore, _ := observer.New(zapcore.DebugLevel)
	assert.True(suite.T(), NewLogger(debugCore).IsDebugEnabled())

	infoCore, _ := observer.New(zapcore.InfoLevel)
	assert.False(suite.T(), NewLogger(infoCore).IsDebugEnabled())
}

func (suite *LogTestSuite) TestMaskString() {
	assert.Equal(suite.T(), "***", MaskString("abc"))
	assert.Equal(suite.T(), "", MaskString(""))
	assert.Equal(suite.T(), "u*************m", MaskString("user@domain.com"))
}
