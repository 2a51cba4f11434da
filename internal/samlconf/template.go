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

package samlconf

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/proauth/samlfed/internal/system/log"
)

// ConfigTemplate is the default configuration the provider fields are merged
// onto. Its shape mirrors the resolved configuration. A template value is
// passed explicitly into each resolution call and is copied before use, so a
// single template can safely back many providers.
type ConfigTemplate map[string]interface{}

// LoadConfigTemplate loads a configuration template from the specified YAML file.
func LoadConfigTemplate(path string) (ConfigTemplate, error) {
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close template file", log.Error(ferr))
		}
	}()

	// Decode into an unnamed map: yaml.v3 reuses a named target map type for
	// nested mappings, and the builder's overlay and deep copy expect plain
	// map[string]interface{} sections.
	var raw map[string]interface{}
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is an empty template.
			return ConfigTemplate{}, nil
		}
		return nil, err
	}
	return ConfigTemplate(raw), nil
}
