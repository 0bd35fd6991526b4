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

// Package translate looks up user visible texts with a fallback.
package translate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/invity/authflow/internal/system/log"
)

// Translations maps translation keys to texts.
type Translations map[string]string

// Translator resolves translation keys.
type Translator struct {
	translations Translations
	logger       *log.Logger
}

// NewTranslator creates a translator over the given translations. Nil translations are allowed.
func NewTranslator(translations Translations) *Translator {
	return &Translator{
		translations: translations,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Translator")),
	}
}

// LoadTranslations reads a flat YAML map of translations. An empty path yields no translations.
func LoadTranslations(path string) (Translations, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}
	var translations Translations
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translations file: %w", err)
	}
	return translations, nil
}

// Translate returns the text for the key, or the fallback when translations or the key are missing.
func (t *Translator) Translate(key, fallback string) string {
	if t == nil || t.translations == nil {
		log.GetLogger().Error("Translations are not defined, using fallback", log.String("fallback", fallback))
		return fallback
	}
	text, ok := t.translations[key]
	if !ok || text == "" {
		t.logger.Error("Translation key not found, using fallback", log.String("key", key),
			log.String("fallback", fallback))
		return fallback
	}
	return text
}
