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

package provider

import (
	"errors"

	"github.com/proauth/samlfed/internal/system/error/serviceerror"
)

// ErrProviderNotFound is returned when the provider is not found in the store.
var ErrProviderNotFound = errors.New("provider not found")

// Client errors for provider operations.
var (
	// ErrorProviderNotFound is the error returned when a provider is not found.
	ErrorProviderNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1001",
		Error:            "Provider not found",
		ErrorDescription: "The requested provider could not be found",
	}
	// ErrorInvalidProviderID is the error returned when an invalid provider ID is provided.
	ErrorInvalidProviderID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1002",
		Error:            "Invalid provider ID",
		ErrorDescription: "The provided provider ID is invalid or empty",
	}
	// ErrorInvalidProviderName is the error returned when an invalid provider name is provided.
	ErrorInvalidProviderName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1003",
		Error:            "Invalid provider name",
		ErrorDescription: "The provided provider name is invalid or empty",
	}
	// ErrorInvalidIDPIssuer is the error returned when the IdP issuer is empty.
	ErrorInvalidIDPIssuer = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1004",
		Error:            "Invalid IdP issuer",
		ErrorDescription: "The IdP issuer (entity ID) cannot be empty",
	}
	// ErrorInvalidIDPSSOURL is the error returned when the IdP single sign-on URL is empty.
	ErrorInvalidIDPSSOURL = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1005",
		Error:            "Invalid IdP single sign-on URL",
		ErrorDescription: "The IdP single sign-on service URL cannot be empty",
	}
	// ErrorInvalidBinding is the error returned when an unsupported protocol binding is provided.
	ErrorInvalidBinding = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1006",
		Error:            "Invalid protocol binding",
		ErrorDescription: "The provided SAML protocol binding is not supported",
	}
	// ErrorInvalidNameIDFormat is the error returned when an unsupported NameID format is provided.
	ErrorInvalidNameIDFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1007",
		Error:            "Invalid NameID format",
		ErrorDescription: "The provided NameID format is not supported",
	}
	// ErrorProviderAlreadyExists is the error returned when a provider with the same name already exists.
	ErrorProviderAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1008",
		Error:            "Provider already exists",
		ErrorDescription: "A provider with the same name already exists",
	}
	// ErrorProviderNil is the error returned when the provider object is nil.
	ErrorProviderNil = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1009",
		Error:            "Provider cannot be null",
		ErrorDescription: "The provider object cannot be null or empty",
	}
	// ErrorInvalidCertificateReference is the error returned when a certificate reference is invalid.
	ErrorInvalidCertificateReference = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRV-1010",
		Error:            "Invalid certificate reference",
		ErrorDescription: "One or more referenced certificates are unknown or duplicated",
	}
)

// Server errors for provider operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PRV-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
