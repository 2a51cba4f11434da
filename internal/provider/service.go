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

// Package provider provides the implementation for SAML provider record management.
package provider

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/proauth/samlfed/internal/cert"
	"github.com/proauth/samlfed/internal/system/error/serviceerror"
	"github.com/proauth/samlfed/internal/system/log"
	sysutils "github.com/proauth/samlfed/internal/system/utils"
)

const loggerComponentName = "ProviderService"

// ProviderServiceInterface defines the interface for the provider service.
type ProviderServiceInterface interface {
	CreateProvider(p *Provider) (*Provider, *serviceerror.ServiceError)
	GetProviderList() ([]Provider, *serviceerror.ServiceError)
	GetProvider(providerID string) (*Provider, *serviceerror.ServiceError)
	GetProviderByName(providerName string) (*Provider, *serviceerror.ServiceError)
	GetProviderWithCertificates(providerID string) (*ProviderWithCertificates, *serviceerror.ServiceError)
	GetProviderWithCertificatesByName(providerName string) (*ProviderWithCertificates, *serviceerror.ServiceError)
	UpdateProvider(providerID string, p *Provider) (*Provider, *serviceerror.ServiceError)
	DeleteProvider(providerID string) *serviceerror.ServiceError
}

// providerService is the default implementation of the ProviderServiceInterface.
type providerService struct {
	providerStore providerStoreInterface
	certService   cert.CertificateServiceInterface
}

// NewProviderService creates a new instance of ProviderService.
func NewProviderService() ProviderServiceInterface {
	return &providerService{
		providerStore: getProviderStore(),
		certService:   cert.NewCertificateService(),
	}
}

// CreateProvider creates a new provider record.
func (ps *providerService) CreateProvider(p *Provider) (*Provider, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if p == nil {
		return nil, &ErrorProviderNil
	}
	applyDefaults(p)
	if svcErr := ps.validateProvider(p); svcErr != nil {
		return nil, svcErr
	}

	// Check if a provider with the same name already exists
	existingProvider, err := ps.providerStore.GetProviderByName(p.Name)
	if err != nil && !errors.Is(err, ErrProviderNotFound) {
		logger.Error("Failed to check existing provider by name", log.Error(err),
			log.String("providerName", p.Name))
		return nil, &ErrorInternalServerError
	}
	if existingProvider != nil {
		return nil, &ErrorProviderAlreadyExists
	}

	p.ID = sysutils.GenerateUUID()
	if err := ps.providerStore.CreateProvider(*p); err != nil {
		logger.Error("Failed to create provider", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return p, nil
}

// GetProviderList retrieves the list of all provider records.
func (ps *providerService) GetProviderList() ([]Provider, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	providers, err := ps.providerStore.GetProviderList()
	if err != nil {
		logger.Error("Failed to get provider list", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return providers, nil
}

// GetProvider retrieves a provider record by its ID.
func (ps *providerService) GetProvider(providerID string) (*Provider, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(providerID) == "" {
		return nil, &ErrorInvalidProviderID
	}

	p, err := ps.providerStore.GetProviderByID(providerID)
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			return nil, &ErrorProviderNotFound
		}
		logger.Error("Failed to get provider", log.String(log.LoggerKeyProviderID, providerID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return p, nil
}

// GetProviderByName retrieves a provider record by its name.
func (ps *providerService) GetProviderByName(providerName string) (*Provider, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(providerName) == "" {
		return nil, &ErrorInvalidProviderName
	}

	p, err := ps.providerStore.GetProviderByName(providerName)
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			return nil, &ErrorProviderNotFound
		}
		logger.Error("Failed to get provider by name", log.String("providerName", providerName), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return p, nil
}

// GetProviderWithCertificates retrieves a provider record by its ID with its
// referenced certificate records materialized.
func (ps *providerService) GetProviderWithCertificates(providerID string) (*ProviderWithCertificates,
	*serviceerror.ServiceError) {
	p, svcErr := ps.GetProvider(providerID)
	if svcErr != nil {
		return nil, svcErr
	}
	return ps.materializeCertificates(p)
}

// GetProviderWithCertificatesByName retrieves a provider record by its name
// with its referenced certificate records materialized.
func (ps *providerService) GetProviderWithCertificatesByName(providerName string) (*ProviderWithCertificates,
	*serviceerror.ServiceError) {
	p, svcErr := ps.GetProviderByName(providerName)
	if svcErr != nil {
		return nil, svcErr
	}
	return ps.materializeCertificates(p)
}

// UpdateProvider updates an existing provider record.
func (ps *providerService) UpdateProvider(providerID string, p *Provider) (*Provider,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(providerID) == "" {
		return nil, &ErrorInvalidProviderID
	}
	if p == nil {
		return nil, &ErrorProviderNil
	}
	applyDefaults(p)
	if svcErr := ps.validateProvider(p); svcErr != nil {
		return nil, svcErr
	}

	existingProvider, err := ps.providerStore.GetProviderByID(providerID)
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			return nil, &ErrorProviderNotFound
		}
		logger.Error("Failed to get provider for update", log.String(log.LoggerKeyProviderID, providerID),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	// If the name is being updated, check whether another provider with the same name exists
	if existingProvider.Name != p.Name {
		existingProviderByName, err := ps.providerStore.GetProviderByName(p.Name)
		if err != nil && !errors.Is(err, ErrProviderNotFound) {
			logger.Error("Failed to check existing provider by name", log.Error(err),
				log.String("providerName", p.Name))
			return nil, &ErrorInternalServerError
		}
		if existingProviderByName != nil {
			return nil, &ErrorProviderAlreadyExists
		}
	}

	p.ID = providerID
	if err := ps.providerStore.UpdateProvider(p); err != nil {
		logger.Error("Failed to update provider", log.Error(err), log.String(log.LoggerKeyProviderID, providerID))
		return nil, &ErrorInternalServerError
	}

	return p, nil
}

// DeleteProvider deletes a provider record by its ID.
func (ps *providerService) DeleteProvider(providerID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(providerID) == "" {
		return &ErrorInvalidProviderID
	}

	if err := ps.providerStore.DeleteProvider(providerID); err != nil {
		logger.Error("Failed to delete provider", log.Error(err), log.String(log.LoggerKeyProviderID, providerID))
		return &ErrorInternalServerError
	}

	return nil
}

// materializeCertificates loads the certificate records referenced by the
// given provider. References to deleted certificates are skipped so that
// configuration resolution keeps working with whatever certificates remain.
func (ps *providerService) materializeCertificates(p *Provider) (*ProviderWithCertificates,
	*serviceerror.ServiceError) {
	signing, svcErr := ps.loadCertificates(p, p.SigningCertificateIDs)
	if svcErr != nil {
		return nil, svcErr
	}
	encryption, svcErr := ps.loadCertificates(p, p.EncryptionCertificateIDs)
	if svcErr != nil {
		return nil, svcErr
	}

	return &ProviderWithCertificates{
		Provider:               *p,
		SigningCertificates:    signing,
		EncryptionCertificates: encryption,
	}, nil
}

// loadCertificates resolves certificate references in attachment order.
func (ps *providerService) loadCertificates(p *Provider, certIDs []string) ([]cert.Certificate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	certificates := make([]cert.Certificate, 0, len(certIDs))
	for _, certID := range certIDs {
		certificate, svcErr := ps.certService.GetCertificate(certID)
		if svcErr != nil {
			if svcErr.Code == cert.ErrorCertificateNotFound.Code {
				logger.Warn("Skipping dangling certificate reference",
					log.String(log.LoggerKeyProviderID, p.ID),
					log.String(log.LoggerKeyCertificateID, certID))
				continue
			}
			logger.Error("Failed to load referenced certificate",
				log.String(log.LoggerKeyProviderID, p.ID),
				log.String(log.LoggerKeyCertificateID, certID))
			return nil, &ErrorInternalServerError
		}
		certificates = append(certificates, *certificate)
	}

	return certificates, nil
}

// validateProvider validates the provider record details.
func (ps *providerService) validateProvider(p *Provider) *serviceerror.ServiceError {
	if strings.TrimSpace(p.Name) == "" {
		return &ErrorInvalidProviderName
	}
	if strings.TrimSpace(p.IDPIssuer) == "" {
		return &ErrorInvalidIDPIssuer
	}
	if strings.TrimSpace(p.IDPSSOURL) == "" {
		return &ErrorInvalidIDPSSOURL
	}
	if !slices.Contains(supportedBindings, p.IDPSSOBinding) {
		return &ErrorInvalidBinding
	}
	if !slices.Contains(supportedBindings, p.SPACSBinding) {
		return &ErrorInvalidBinding
	}
	if !slices.Contains(supportedNameIDFormats, p.NameIDFormat) {
		return &ErrorInvalidNameIDFormat
	}

	if svcErr := ps.validateCertificateReferences(p.SigningCertificateIDs, "signing"); svcErr != nil {
		return svcErr
	}
	return ps.validateCertificateReferences(p.EncryptionCertificateIDs, "encryption")
}

// validateCertificateReferences checks that certificate references are unique
// and point to existing certificate records.
func (ps *providerService) validateCertificateReferences(certIDs []string,
	role string) *serviceerror.ServiceError {
	seen := make(map[string]bool, len(certIDs))
	for _, certID := range certIDs {
		if seen[certID] {
			return serviceerror.CustomServiceError(ErrorInvalidCertificateReference,
				fmt.Sprintf("duplicate %s certificate reference '%s'", role, certID))
		}
		seen[certID] = true

		if _, svcErr := ps.certService.GetCertificate(certID); svcErr != nil {
			return serviceerror.CustomServiceError(ErrorInvalidCertificateReference,
				fmt.Sprintf("unknown %s certificate reference '%s'", role, certID))
		}
	}
	return nil
}

// applyDefaults fills the enumerated fields with their default values when
// unset and initializes the attribute mapping.
func applyDefaults(p *Provider) {
	if p.IDPSSOBinding == "" {
		p.IDPSSOBinding = DefaultSSOBinding
	}
	if p.SPACSBinding == "" {
		p.SPACSBinding = DefaultACSBinding
	}
	if p.NameIDFormat == "" {
		p.NameIDFormat = DefaultNameIDFormat
	}
	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}
}
