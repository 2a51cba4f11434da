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

// Package main is the entry point for resolving SAML provider configurations
// from a federation definition file.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/proauth/samlfed/internal/definitions"
	"github.com/proauth/samlfed/internal/provider"
	"github.com/proauth/samlfed/internal/samlconf"
	"github.com/proauth/samlfed/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	definitionsPath := flag.String("definitions", "federation.yaml", "Path to the federation definition file")
	defaultsPath := flag.String("defaults", "", "Path to the configuration defaults template")
	providerName := flag.String("provider", "", "Resolve only the named provider")
	outputPath := flag.String("output", "", "Write the resolved configurations to this file instead of stdout")
	flag.Parse()

	loadDefinitions(logger, *definitionsPath)
	defaults := loadDefaults(logger, *defaultsPath)

	resolved := resolveConfigs(logger, *providerName, defaults)
	writeOutput(logger, *outputPath, resolved)
}

// loadDefinitions loads the federation definition file and applies it to the
// certificate and provider services.
func loadDefinitions(logger *log.Logger, path string) {
	defs, err := definitions.LoadDefinitions(path)
	if err != nil {
		logger.Fatal("Failed to load federation definitions", log.String("path", path), log.Error(err))
	}

	definitionService := definitions.NewDefinitionService()
	if svcErr := definitionService.ApplyDefinitions(defs); svcErr != nil {
		logger.Fatal("Failed to apply federation definitions", log.String("path", path),
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}
}

// loadDefaults loads the configuration defaults template when one is given.
func loadDefaults(logger *log.Logger, path string) samlconf.ConfigTemplate {
	if path == "" {
		return nil
	}

	defaults, err := samlconf.LoadConfigTemplate(path)
	if err != nil {
		logger.Fatal("Failed to load configuration defaults", log.String("path", path), log.Error(err))
	}
	return defaults
}

// resolveConfigs resolves the configuration for the named provider, or for
// every stored provider when no name is given. The result maps provider names
// to their resolved configurations.
func resolveConfigs(logger *log.Logger, providerName string,
	defaults samlconf.ConfigTemplate) map[string]interface{} {
	configService := samlconf.NewProviderConfigService()

	if providerName != "" {
		config, svcErr := configService.ResolveProviderConfigByName(providerName, defaults)
		if svcErr != nil {
			logger.Fatal("Failed to resolve provider configuration",
				log.String("providerName", providerName),
				log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
		}
		return map[string]interface{}{providerName: config}
	}

	providerService := provider.NewProviderService()
	providers, svcErr := providerService.GetProviderList()
	if svcErr != nil {
		logger.Fatal("Failed to list providers",
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}

	resolved := make(map[string]interface{}, len(providers))
	for _, p := range providers {
		config, svcErr := configService.ResolveProviderConfig(p.ID, defaults)
		if svcErr != nil {
			logger.Fatal("Failed to resolve provider configuration",
				log.String(log.LoggerKeyProviderID, p.ID),
				log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
		}
		resolved[p.Name] = config
	}
	return resolved
}

// writeOutput writes the resolved configurations as indented JSON.
func writeOutput(logger *log.Logger, path string, resolved map[string]interface{}) {
	encoded, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode resolved configurations", log.Error(err))
	}
	encoded = append(encoded, '\n')

	if path == "" {
		if _, err := os.Stdout.Write(encoded); err != nil {
			logger.Fatal("Failed to write resolved configurations", log.Error(err))
		}
		return
	}

	if err := os.WriteFile(path, encoded, 0600); err != nil {
		logger.Fatal("Failed to write output file", log.String("path", path), log.Error(err))
	}
	logger.Info("Wrote resolved configurations", log.String("path", path),
		log.Int("providers", len(resolved)))
}
