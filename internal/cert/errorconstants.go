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

package cert

import (
	"errors"

	"github.com/proauth/samlfed/internal/system/error/serviceerror"
)

// ErrCertificateNotFound is returned when the certificate is not found in the store.
var ErrCertificateNotFound = errors.New("certificate not found")

// Client errors for certificate operations.
var (
	// ErrorCertificateNotFound is the error returned when a certificate is not found.
	ErrorCertificateNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1001",
		Error:            "Certificate not found",
		ErrorDescription: "The requested certificate could not be found",
	}
	// ErrorInvalidCertificateID is the error returned when an invalid certificate ID is provided.
	ErrorInvalidCertificateID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1002",
		Error:            "Invalid certificate ID",
		ErrorDescription: "The provided certificate ID is invalid or empty",
	}
	// ErrorInvalidCertificateName is the error returned when an invalid certificate name is provided.
	ErrorInvalidCertificateName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1003",
		Error:            "Invalid certificate name",
		ErrorDescription: "The provided certificate name is invalid or empty",
	}
	// ErrorInvalidCertificateContent is the error returned when the certificate content is empty.
	ErrorInvalidCertificateContent = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1004",
		Error:            "Invalid certificate content",
		ErrorDescription: "The PEM encoded certificate content cannot be empty",
	}
	// ErrorCertificateAlreadyExists is the error returned when a certificate with the same name already exists.
	ErrorCertificateAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1005",
		Error:            "Certificate already exists",
		ErrorDescription: "A certificate with the same name already exists",
	}
	// ErrorCertificateNil is the error returned when the certificate object is nil.
	ErrorCertificateNil = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CRT-1006",
		Error:            "Certificate cannot be null",
		ErrorDescription: "The certificate object cannot be null or empty",
	}
)

// Server errors for certificate operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CRT-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
