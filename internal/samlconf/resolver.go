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

package samlconf

// CertificateSet holds the IdP certificates separated by role.
type CertificateSet struct {
	Signing    []string
	Encryption []string
}

// CertificateField is the resolved IdP certificate portion of a provider
// configuration. It carries either a single shared certificate or a
// role-separated certificate set, never both.
type CertificateField struct {
	cert  string
	multi *CertificateSet
}

// ResolveCertificates decides how the given signing and encryption
// certificate texts are presented to the SAML protocol library.
//
// A single certificate field is emitted when exactly one role holds exactly
// one certificate, or when both roles hold exactly one and the texts are
// identical (the one certificate then serves both roles). Every other
// combination, including two empty sets, yields a role-separated set with
// the input order preserved.
func ResolveCertificates(signing, encryption []string) CertificateField {
	switch {
	case len(signing) == 1 && len(encryption) == 0:
		return CertificateField{cert: signing[0]}
	case len(encryption) == 1 && len(signing) == 0:
		return CertificateField{cert: encryption[0]}
	case len(signing) == 1 && len(encryption) == 1 && signing[0] == encryption[0]:
		return CertificateField{cert: signing[0]}
	default:
		return CertificateField{multi: &CertificateSet{
			Signing:    copyCertificateList(signing),
			Encryption: copyCertificateList(encryption),
		}}
	}
}

// IsSingle reports whether the field holds a single shared certificate.
func (f CertificateField) IsSingle() bool {
	return f.multi == nil
}

// Certificate returns the single shared certificate text. It is empty when
// the field holds a role-separated set.
func (f CertificateField) Certificate() string {
	return f.cert
}

// Certificates returns the role-separated certificate set. It is nil when
// the field holds a single shared certificate.
func (f CertificateField) Certificates() *CertificateSet {
	return f.multi
}

// applyTo merges the certificate field into the idp configuration section,
// setting exactly one of the x509cert and x509certMulti keys.
func (f CertificateField) applyTo(idpSection map[string]interface{}) {
	if f.IsSingle() {
		idpSection[keyX509Cert] = f.cert
		return
	}
	idpSection[keyX509CertMulti] = map[string]interface{}{
		keySigning:    f.multi.Signing,
		keyEncryption: f.multi.Encryption,
	}
}

// copyCertificateList copies the given list so the resolved field does not
// alias the caller's slice. Empty input yields an empty, non-nil list.
func copyCertificateList(certs []string) []string {
	copied := make([]string, len(certs))
	copy(copied, certs)
	return copied
}
