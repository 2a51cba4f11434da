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

package definitions

import (
	"fmt"

	"github.com/proauth/samlfed/internal/cert"
	"github.com/proauth/samlfed/internal/provider"
	"github.com/proauth/samlfed/internal/system/error/serviceerror"
	"github.com/proauth/samlfed/internal/system/log"
)

const loggerComponentName = "DefinitionService"

// DefinitionServiceInterface defines the interface for applying federation definitions.
type DefinitionServiceInterface interface {
	ApplyDefinitions(defs *Definitions) *serviceerror.ServiceError
}

// definitionService is the default implementation of the DefinitionServiceInterface.
type definitionService struct {
	certService     cert.CertificateServiceInterface
	providerService provider.ProviderServiceInterface
}

// NewDefinitionService creates a new instance of DefinitionService.
func NewDefinitionService() DefinitionServiceInterface {
	return &definitionService{
		certService:     cert.NewCertificateService(),
		providerService: provider.NewProviderService(),
	}
}

// ApplyDefinitions applies the given definitions to the certificate and
// provider services. Entries are matched by name: an existing record with the
// same name is updated, anything else is created. Certificates are applied
// first so that provider certificate references resolve.
func (ds *definitionService) ApplyDefinitions(defs *Definitions) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if defs == nil {
		return &ErrorDefinitionsNil
	}

	for _, certDef := range defs.Certificates {
		if svcErr := ds.applyCertificate(certDef); svcErr != nil {
			return svcErr
		}
	}
	for _, providerDef := range defs.Providers {
		if svcErr := ds.applyProvider(providerDef); svcErr != nil {
			return svcErr
		}
	}

	logger.Debug("Applied federation definitions",
		log.Int("certificates", len(defs.Certificates)),
		log.Int("providers", len(defs.Providers)))
	return nil
}

// applyCertificate creates or updates a certificate record by name.
func (ds *definitionService) applyCertificate(certDef CertificateDefinition) *serviceerror.ServiceError {
	record := &cert.Certificate{
		Name:        certDef.Name,
		Certificate: certDef.Certificate,
	}

	existing, svcErr := ds.certService.GetCertificateByName(certDef.Name)
	if svcErr != nil {
		if svcErr.Code == cert.ErrorCertificateNotFound.Code {
			_, svcErr := ds.certService.CreateCertificate(record)
			return svcErr
		}
		return svcErr
	}

	_, svcErr = ds.certService.UpdateCertificate(existing.ID, record)
	return svcErr
}

// applyProvider creates or updates a provider record by name.
func (ds *definitionService) applyProvider(providerDef ProviderDefinition) *serviceerror.ServiceError {
	record, svcErr := ds.toProviderRecord(providerDef)
	if svcErr != nil {
		return svcErr
	}

	existing, svcErr := ds.providerService.GetProviderByName(providerDef.Name)
	if svcErr != nil {
		if svcErr.Code == provider.ErrorProviderNotFound.Code {
			_, svcErr := ds.providerService.CreateProvider(record)
			return svcErr
		}
		return svcErr
	}

	_, svcErr = ds.providerService.UpdateProvider(existing.ID, record)
	return svcErr
}

// toProviderRecord converts a provider definition into a provider record,
// resolving certificate names to record IDs.
func (ds *definitionService) toProviderRecord(providerDef ProviderDefinition) (*provider.Provider,
	*serviceerror.ServiceError) {
	signingIDs, svcErr := ds.resolveCertificateNames(providerDef.SigningCertificates)
	if svcErr != nil {
		return nil, svcErr
	}
	encryptionIDs, svcErr := ds.resolveCertificateNames(providerDef.EncryptionCertificates)
	if svcErr != nil {
		return nil, svcErr
	}

	// Messages are expected to be signed unless the definition says otherwise.
	wantMessagesSigned := true
	if providerDef.WantMessagesSigned != nil {
		wantMessagesSigned = *providerDef.WantMessagesSigned
	}

	return &provider.Provider{
		Name:                     providerDef.Name,
		SigningCertificateIDs:    signingIDs,
		EncryptionCertificateIDs: encryptionIDs,
		IDPIssuer:                providerDef.IDPIssuer,
		IDPSSOURL:                providerDef.IDPSSOURL,
		IDPSSOBinding:            provider.Binding(providerDef.IDPSSOBinding),
		NameIDFormat:             provider.NameIDFormat(providerDef.NameIDFormat),
		SPACSBinding:             provider.Binding(providerDef.SPACSBinding),
		Debug:                    providerDef.Debug,
		LowercaseURLEncoding:     providerDef.LowercaseURLEncoding,
		IDPInitiatedAuth:         providerDef.IDPInitiatedAuth,
		WantMessagesSigned:       wantMessagesSigned,
		WantAssertionsSigned:     providerDef.WantAssertionsSigned,
		WantAssertionsEncrypted:  providerDef.WantAssertionsEncrypted,
		Attributes:               providerDef.Attributes,
	}, nil
}

// resolveCertificateNames maps certificate names to record IDs, preserving order.
func (ds *definitionService) resolveCertificateNames(certNames []string) ([]string,
	*serviceerror.ServiceError) {
	certIDs := make([]string, 0, len(certNames))
	for _, certName := range certNames {
		certificate, svcErr := ds.certService.GetCertificateByName(certName)
		if svcErr != nil {
			if svcErr.Code == cert.ErrorCertificateNotFound.Code {
				return nil, serviceerror.CustomServiceError(ErrorUnknownCertificateName,
					fmt.Sprintf("certificate '%s' is not defined", certName))
			}
			return nil, svcErr
		}
		certIDs = append(certIDs, certificate.ID)
	}
	return certIDs, nil
}
