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
	"github.com/proauth/samlfed/internal/system/error/serviceerror"
)

// Client errors for definition operations.
var (
	// ErrorDefinitionsNil is the error returned when the definitions object is nil.
	ErrorDefinitionsNil = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DEF-1001",
		Error:            "Definitions cannot be null",
		ErrorDescription: "The definitions object cannot be null or empty",
	}
	// ErrorUnknownCertificateName is the error returned when a provider references
	// a certificate name that is not defined.
	ErrorUnknownCertificateName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DEF-1002",
		Error:            "Unknown certificate name",
		ErrorDescription: "A provider references a certificate name that does not exist",
	}
)
