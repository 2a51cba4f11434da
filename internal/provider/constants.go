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

import "github.com/crewjam/saml"

// Binding represents a SAML protocol binding.
type Binding string

const (
	// BindingHTTPPost represents the HTTP-POST protocol binding.
	BindingHTTPPost Binding = saml.HTTPPostBinding
	// BindingHTTPRedirect represents the HTTP-Redirect protocol binding.
	BindingHTTPRedirect Binding = saml.HTTPRedirectBinding
)

// supportedBindings lists all the supported SAML protocol bindings.
var supportedBindings = []Binding{
	BindingHTTPPost,
	BindingHTTPRedirect,
}

// NameIDFormat represents the format of the assertion subject NameID attribute.
type NameIDFormat string

const (
	// NameIDFormatUnspecified represents the unspecified NameID format.
	NameIDFormatUnspecified = NameIDFormat(saml.UnspecifiedNameIDFormat)
	// NameIDFormatEmailAddress represents the email address NameID format.
	NameIDFormatEmailAddress = NameIDFormat(saml.EmailAddressNameIDFormat)
	// NameIDFormatX509SubjectName represents the X.509 subject name NameID format.
	NameIDFormatX509SubjectName NameIDFormat = "urn:oasis:names:tc:SAML:1.1:nameid-format:X509SubjectName"
	// NameIDFormatWindowsDomainQualifiedName represents the Windows domain qualified name NameID format.
	NameIDFormatWindowsDomainQualifiedName NameIDFormat = "urn:oasis:names:tc:SAML:1.1:nameid-format:" +
		"WindowsDomainQualifiedName"
	// NameIDFormatKerberos represents the Kerberos principal name NameID format.
	NameIDFormatKerberos NameIDFormat = "urn:oasis:names:tc:SAML:2.0:nameid-format:kerberos"
	// NameIDFormatEntity represents the entity identifier NameID format.
	NameIDFormatEntity NameIDFormat = "urn:oasis:names:tc:SAML:2.0:nameid-format:entity"
	// NameIDFormatPersistent represents the persistent identifier NameID format.
	NameIDFormatPersistent = NameIDFormat(saml.PersistentNameIDFormat)
	// NameIDFormatTransient represents the transient identifier NameID format.
	NameIDFormatTransient = NameIDFormat(saml.TransientNameIDFormat)
	// NameIDFormatEncrypted represents the encrypted NameID format.
	NameIDFormatEncrypted NameIDFormat = "urn:oasis:names:tc:SAML:2.0:nameid-format:encrypted"
)

// supportedNameIDFormats lists all the supported NameID formats.
var supportedNameIDFormats = []NameIDFormat{
	NameIDFormatUnspecified,
	NameIDFormatEmailAddress,
	NameIDFormatX509SubjectName,
	NameIDFormatWindowsDomainQualifiedName,
	NameIDFormatKerberos,
	NameIDFormatEntity,
	NameIDFormatPersistent,
	NameIDFormatTransient,
	NameIDFormatEncrypted,
}

// Defaults applied when a provider record is created without explicit values.
const (
	// DefaultSSOBinding is the default IdP single sign-on binding.
	DefaultSSOBinding = BindingHTTPPost
	// DefaultACSBinding is the default SP assertion consumer service binding.
	DefaultACSBinding = BindingHTTPPost
	// DefaultNameIDFormat is the default NameID format.
	DefaultNameIDFormat = NameIDFormatUnspecified
)
