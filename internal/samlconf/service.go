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

// Package samlconf resolves stored provider records into the configuration
// structure consumed by the SAML protocol library.
package samlconf

import (
	"github.com/proauth/samlfed/internal/provider"
	"github.com/proauth/samlfed/internal/system/error/serviceerror"
	"github.com/proauth/samlfed/internal/system/log"
)

const loggerComponentName = "ProviderConfigService"

// ProviderConfigServiceInterface defines the interface for resolving provider configurations.
type ProviderConfigServiceInterface interface {
	ResolveProviderConfig(providerID string, defaults ConfigTemplate) (
		map[string]interface{}, *serviceerror.ServiceError)
	ResolveProviderConfigByName(providerName string, defaults ConfigTemplate) (
		map[string]interface{}, *serviceerror.ServiceError)
}

// providerConfigService is the default implementation of the ProviderConfigServiceInterface.
type providerConfigService struct {
	providerService provider.ProviderServiceInterface
}

// NewProviderConfigService creates a new instance of ProviderConfigService.
func NewProviderConfigService() ProviderConfigServiceInterface {
	return &providerConfigService{
		providerService: provider.NewProviderService(),
	}
}

// ResolveProviderConfig resolves the configuration for the provider with the given ID.
func (pcs *providerConfigService) ResolveProviderConfig(providerID string, defaults ConfigTemplate) (
	map[string]interface{}, *serviceerror.ServiceError) {
	materialized, svcErr := pcs.providerService.GetProviderWithCertificates(providerID)
	if svcErr != nil {
		return nil, svcErr
	}
	return pcs.buildConfig(materialized, defaults), nil
}

// ResolveProviderConfigByName resolves the configuration for the provider with the given name.
func (pcs *providerConfigService) ResolveProviderConfigByName(providerName string, defaults ConfigTemplate) (
	map[string]interface{}, *serviceerror.ServiceError) {
	materialized, svcErr := pcs.providerService.GetProviderWithCertificatesByName(providerName)
	if svcErr != nil {
		return nil, svcErr
	}
	return pcs.buildConfig(materialized, defaults), nil
}

// buildConfig assembles the final configuration for the materialized provider.
func (pcs *providerConfigService) buildConfig(materialized *provider.ProviderWithCertificates,
	defaults ConfigTemplate) map[string]interface{} {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	config := BuildProviderConfig(materialized, defaults)

	if logger.IsDebugEnabled() {
		certField := ResolveCertificates(materialized.SigningCertificateTexts(),
			materialized.EncryptionCertificateTexts())
		logger.Debug("Resolved provider configuration",
			log.String(log.LoggerKeyProviderID, materialized.ID),
			log.Bool("singleCertificate", certField.IsSingle()))
	}

	return config
}
