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

package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/invity/authflow/internal/system/config"
	"github.com/invity/authflow/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
	home string
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
	config.ResetRuntime()
}

func (suite *DBProviderTestSuite) TearDownTest() {
	config.ResetRuntime()
}

func (suite *DBProviderTestSuite) TestGetDBConfigPostgres() {
	cfg, err := getDBConfig("/ignored", config.DataSource{
		Type:     "postgres",
		Hostname: "db.local",
		Port:     5432,
		Name:     "journal",
		Username: "authflow",
		Password: "secret",
		SSLMode:  "disable",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "postgres", cfg.driverName)
	assert.Equal(suite.T(),
		"host=db.local port=5432 user=authflow password=secret dbname=journal sslmode=disable", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigSQLite() {
	cfg, err := getDBConfig("/opt/authflow", config.DataSource{
		Type:    "sqlite",
		Path:    "repository/database/journal.db",
		Options: "_pragma=busy_timeout(5000)",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sqlite", cfg.driverName)
	assert.Equal(suite.T(), "/opt/authflow/repository/database/journal.db?_pragma=busy_timeout(5000)", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigUnsupported() {
	_, err := getDBConfig("/opt", config.DataSource{Type: "oracle"})
	assert.Error(suite.T(), err)
}

func (suite *DBProviderTestSuite) TestSQLiteJournalClientRoundTrip() {
	assert.NoError(suite.T(), os.MkdirAll(filepath.Join(suite.home, "db"), 0o750))
	assert.NoError(suite.T(), config.InitializeRuntime(suite.home, &config.Config{
		Journal: config.JournalConfig{
			Enabled:    true,
			DataSource: config.DataSource{Type: "sqlite", Path: "db/journal.db", MaxOpenConns: 1},
		},
	}))

	dbProvider := &DBProvider{}
	dbClient, err := dbProvider.GetJournalDBClient()
	assert.NoError(suite.T(), err)

	again, err := dbProvider.GetJournalDBClient()
	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), dbClient, again)

	_, err = dbClient.Execute(model.DBQuery{ID: "create", Query: "CREATE TABLE T (ID TEXT)"})
	assert.NoError(suite.T(), err)
	affected, err := dbClient.Execute(model.DBQuery{ID: "insert", Query: "INSERT INTO T (ID) VALUES (?)"}, "x")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), affected)

	rows, err := dbClient.Query(model.DBQuery{ID: "select", Query: "SELECT ID FROM T"})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), "x", rows[0]["id"])

	assert.NoError(suite.T(), dbProvider.Close())
	assert.NoError(suite.T(), dbProvider.Close())
}
