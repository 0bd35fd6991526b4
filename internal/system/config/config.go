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

// Package config provides structures and functions for loading and managing the orchestrator configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/invity/authflow/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// IdentityServerConfig holds the identity server connection details.
type IdentityServerConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout is the HTTP client timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// HostConfig describes the embedding host as seen by the headless driver.
type HostConfig struct {
	FrameURL       string `yaml:"frame_url"`
	CurrentPath    string `yaml:"current_path"`
	Embedded       bool   `yaml:"embedded"`
	ContentHeight  int    `yaml:"content_height"`
	MaxNavigations int    `yaml:"max_navigations"`
}

// FlowConfig holds the flow selection for the driver.
type FlowConfig struct {
	Type string `yaml:"type"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// JournalConfig holds the host message journal configuration.
type JournalConfig struct {
	Enabled    bool       `yaml:"enabled"`
	DataSource DataSource `yaml:"datasource"`
}

// TranslationConfig holds the translation catalog location.
type TranslationConfig struct {
	File string `yaml:"file"`
}

// Config holds the complete configuration details of the orchestrator.
type Config struct {
	IdentityServer IdentityServerConfig `yaml:"identity_server"`
	Host           HostConfig           `yaml:"host"`
	Flow           FlowConfig           `yaml:"flow"`
	Journal        JournalConfig        `yaml:"journal"`
	Translations   TranslationConfig    `yaml:"translations"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.IdentityServer.BaseURL == "" {
		return errors.New("identity_server.base_url is required")
	}
	if c.Flow.Type == "" {
		return errors.New("flow.type is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.IdentityServer.Timeout <= 0 {
		c.IdentityServer.Timeout = 30
	}
	if c.Host.MaxNavigations <= 0 {
		c.Host.MaxNavigations = 5
	}
	if c.Host.CurrentPath == "" {
		c.Host.CurrentPath = "/account/" + c.Flow.Type
	}
}
