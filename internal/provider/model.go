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

import "github.com/proauth/samlfed/internal/cert"

// Provider represents a stored SAML identity provider federation configuration.
//
// Certificates are referenced by ID, never owned; the same certificate record
// may be shared by multiple providers. The reference slices keep their
// attachment order, which is the order the resolved configuration preserves.
type Provider struct {
	ID   string
	Name string

	SigningCertificateIDs    []string
	EncryptionCertificateIDs []string

	IDPIssuer     string
	IDPSSOURL     string
	IDPSSOBinding Binding
	NameIDFormat  NameIDFormat
	SPACSBinding  Binding

	Debug                bool
	LowercaseURLEncoding bool
	IDPInitiatedAuth     bool

	WantMessagesSigned      bool
	WantAssertionsSigned    bool
	WantAssertionsEncrypted bool

	// Attributes maps IdP attribute statement names to target user fields.
	Attributes map[string]string
}

// ProviderWithCertificates is a provider record with its referenced
// certificate records materialized.
type ProviderWithCertificates struct {
	Provider

	SigningCertificates    []cert.Certificate
	EncryptionCertificates []cert.Certificate
}

// SigningCertificateTexts returns the PEM texts of the materialized signing
// certificates in attachment order.
func (p *ProviderWithCertificates) SigningCertificateTexts() []string {
	return certificateTexts(p.SigningCertificates)
}

// EncryptionCertificateTexts returns the PEM texts of the materialized
// encryption certificates in attachment order.
func (p *ProviderWithCertificates) EncryptionCertificateTexts() []string {
	return certificateTexts(p.EncryptionCertificates)
}

func certificateTexts(certificates []cert.Certificate) []string {
	texts := make([]string, 0, len(certificates))
	for _, certificate := range certificates {
		texts = append(texts, certificate.Certificate)
	}
	return texts
}
