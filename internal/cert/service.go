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

// Package cert provides the implementation for managing PEM certificate records.
package cert

import (
	"errors"
	"strings"

	"github.com/proauth/samlfed/internal/system/error/serviceerror"
	"github.com/proauth/samlfed/internal/system/log"
	sysutils "github.com/proauth/samlfed/internal/system/utils"
)

const loggerComponentName = "CertificateService"

// CertificateServiceInterface defines the interface for certificate management operations.
type CertificateServiceInterface interface {
	CreateCertificate(certificate *Certificate) (*Certificate, *serviceerror.ServiceError)
	GetCertificateList() ([]Certificate, *serviceerror.ServiceError)
	GetCertificate(certID string) (*Certificate, *serviceerror.ServiceError)
	GetCertificateByName(certName string) (*Certificate, *serviceerror.ServiceError)
	UpdateCertificate(certID string, certificate *Certificate) (*Certificate, *serviceerror.ServiceError)
	DeleteCertificate(certID string) *serviceerror.ServiceError
}

// certificateService is the default implementation of the CertificateServiceInterface.
type certificateService struct {
	certStore certificateStoreInterface
}

// NewCertificateService creates a new instance of CertificateService.
func NewCertificateService() CertificateServiceInterface {
	return &certificateService{
		certStore: getCertificateStore(),
	}
}

// CreateCertificate creates a new certificate record.
func (cs *certificateService) CreateCertificate(certificate *Certificate) (*Certificate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateCertificate(certificate); svcErr != nil {
		return nil, svcErr
	}

	// Check if a certificate with the same name already exists
	existingCert, err := cs.certStore.GetCertificateByName(certificate.Name)
	if err != nil && !errors.Is(err, ErrCertificateNotFound) {
		logger.Error("Failed to check existing certificate by name", log.Error(err),
			log.String("certName", certificate.Name))
		return nil, &ErrorInternalServerError
	}
	if existingCert != nil {
		return nil, &ErrorCertificateAlreadyExists
	}

	certificate.ID = sysutils.GenerateUUID()
	if err := cs.certStore.CreateCertificate(*certificate); err != nil {
		logger.Error("Failed to create certificate", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return certificate, nil
}

// GetCertificateList retrieves the list of all certificate records.
func (cs *certificateService) GetCertificateList() ([]Certificate, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	certList, err := cs.certStore.GetCertificateList()
	if err != nil {
		logger.Error("Failed to get certificate list", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return certList, nil
}

// GetCertificate retrieves a certificate record by its ID.
func (cs *certificateService) GetCertificate(certID string) (*Certificate, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(certID) == "" {
		return nil, &ErrorInvalidCertificateID
	}

	certificate, err := cs.certStore.GetCertificateByID(certID)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			return nil, &ErrorCertificateNotFound
		}
		logger.Error("Failed to get certificate", log.String(log.LoggerKeyCertificateID, certID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return certificate, nil
}

// GetCertificateByName retrieves a certificate record by its name.
func (cs *certificateService) GetCertificateByName(certName string) (*Certificate, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(certName) == "" {
		return nil, &ErrorInvalidCertificateName
	}

	certificate, err := cs.certStore.GetCertificateByName(certName)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			return nil, &ErrorCertificateNotFound
		}
		logger.Error("Failed to get certificate by name", log.String("certName", certName), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return certificate, nil
}

// UpdateCertificate updates an existing certificate record.
func (cs *certificateService) UpdateCertificate(certID string, certificate *Certificate) (*Certificate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(certID) == "" {
		return nil, &ErrorInvalidCertificateID
	}
	if svcErr := validateCertificate(certificate); svcErr != nil {
		return nil, svcErr
	}

	existingCert, err := cs.certStore.GetCertificateByID(certID)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			return nil, &ErrorCertificateNotFound
		}
		logger.Error("Failed to get certificate for update", log.String(log.LoggerKeyCertificateID, certID),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	// If the name is being updated, check whether another certificate with the same name exists
	if existingCert.Name != certificate.Name {
		existingCertByName, err := cs.certStore.GetCertificateByName(certificate.Name)
		if err != nil && !errors.Is(err, ErrCertificateNotFound) {
			logger.Error("Failed to check existing certificate by name", log.Error(err),
				log.String("certName", certificate.Name))
			return nil, &ErrorInternalServerError
		}
		if existingCertByName != nil {
			return nil, &ErrorCertificateAlreadyExists
		}
	}

	certificate.ID = certID
	if err := cs.certStore.UpdateCertificate(certificate); err != nil {
		logger.Error("Failed to update certificate", log.Error(err), log.String(log.LoggerKeyCertificateID, certID))
		return nil, &ErrorInternalServerError
	}

	return certificate, nil
}

// DeleteCertificate deletes a certificate record by its ID.
//
// Providers referencing the deleted certificate keep their reference; the
// configuration resolver tolerates the resulting dangling entry.
func (cs *certificateService) DeleteCertificate(certID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(certID) == "" {
		return &ErrorInvalidCertificateID
	}

	if err := cs.certStore.DeleteCertificate(certID); err != nil {
		logger.Error("Failed to delete certificate", log.Error(err), log.String(log.LoggerKeyCertificateID, certID))
		return &ErrorInternalServerError
	}

	return nil
}

// validateCertificate validates the certificate record details.
func validateCertificate(certificate *Certificate) *serviceerror.ServiceError {
	if certificate == nil {
		return &ErrorCertificateNil
	}
	if strings.TrimSpace(certificate.Name) == "" {
		return &ErrorInvalidCertificateName
	}
	if strings.TrimSpace(certificate.Certificate) == "" {
		return &ErrorInvalidCertificateContent
	}
	return nil
}
