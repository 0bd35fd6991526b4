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

// Package main runs a flow page against an identity server without a browser, writing the
// messages sent to the host as JSON lines on stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"github.com/invity/authflow/internal/flow/constants"
	"github.com/invity/authflow/internal/headless"
	"github.com/invity/authflow/internal/journal"
	"github.com/invity/authflow/internal/system/config"
	serverconst "github.com/invity/authflow/internal/system/constants"
	"github.com/invity/authflow/internal/system/database/provider"
	"github.com/invity/authflow/internal/system/log"
	"github.com/invity/authflow/internal/translate"
)

type cliFlags struct {
	home     string
	flowType string
	wait     bool
}

func main() {
	defer log.Sync()
	logger := log.GetLogger()

	flags := parseFlags()
	home := getAuthflowHome(logger, flags.home)

	cfg := initConfigurations(logger, home)
	if flags.flowType != "" {
		cfg.Flow.Type = flags.flowType
	}
	flowType, err := constants.ParseFlowType(cfg.Flow.Type)
	if err != nil {
		logger.Fatal("Invalid flow type", log.Error(err))
	}

	translator := initTranslator(logger, home, cfg)
	store := initJournal(logger, cfg)
	if store != nil {
		defer func() {
			if err := provider.GetDBProvider().Close(); err != nil {
				logger.Error("Failed to close database connections", log.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	options := headless.Options{
		FlowType:          flowType,
		FrameURL:          cfg.Host.FrameURL,
		IdentityServerURL: cfg.IdentityServer.BaseURL,
		Window: headless.WindowOptions{
			Embedded:      cfg.Host.Embedded,
			CurrentPath:   cfg.Host.CurrentPath,
			ContentHeight: cfg.Host.ContentHeight,
		},
		MaxNavigations: cfg.Host.MaxNavigations,
		Timeout:        time.Duration(cfg.IdentityServer.Timeout) * time.Second,
		Wait:           flags.wait,
		Translator:     translator,
		Journal:        store,
		Out:            os.Stdout,
	}

	driver, err := headless.NewDriver(options)
	if err != nil {
		logger.Fatal("Failed to create the flow driver", log.Error(err))
	}

	logger.Info("Starting flow", log.String(log.LoggerKeyFlowType, string(flowType)),
		log.String("frame", cfg.Host.FrameURL))
	if err := driver.Run(ctx); err != nil {
		logger.Error("Flow run failed", log.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func parseFlags() cliFlags {
	flags := cliFlags{}
	flag.StringVar(&flags.home, "home", "", "Path to the authflow home directory")
	flag.StringVar(&flags.flowType, "flow", "", "Flow type to run, overriding flow.type in the configuration")
	flag.BoolVar(&flags.wait, "wait", false, "Keep the last page open until interrupted so timers can fire")
	flag.Parse()
	return flags
}

// getAuthflowHome returns the home directory, defaulting to the working directory.
func getAuthflowHome(logger *log.Logger, home string) string {
	if home != "" {
		logger.Info("Using home from command line argument", log.String("home", home))
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

func initConfigurations(logger *log.Logger, home string) *config.Config {
	configFilePath := path.Join(home, serverconst.DefaultConfigFilePath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}
	if err := config.InitializeRuntime(home, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime configurations", log.Error(err))
	}
	return cfg
}

func initTranslator(logger *log.Logger, home string, cfg *config.Config) *translate.Translator {
	file := cfg.Translations.File
	if file != "" && !filepath.IsAbs(file) {
		file = filepath.Join(home, file)
	}
	translations, err := translate.LoadTranslations(file)
	if err != nil {
		logger.Warn("Continuing without translations", log.Error(err))
	}
	return translate.NewTranslator(translations)
}

// initJournal returns nil when journaling is disabled or the journal cannot be prepared.
func initJournal(logger *log.Logger, cfg *config.Config) journal.StoreInterface {
	if !cfg.Journal.Enabled {
		return nil
	}
	store := journal.NewStore()
	if err := store.EnsureSchema(); err != nil {
		logger.Error("Failed to prepare the message journal, journaling is disabled", log.Error(err))
		return nil
	}
	return store
}
