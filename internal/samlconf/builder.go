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

import (
	"github.com/proauth/samlfed/internal/provider"
	sysutils "github.com/proauth/samlfed/internal/system/utils"
)

// BuildProviderConfig merges a materialized provider record with the given
// defaults template into the configuration structure consumed by the SAML
// protocol library.
//
// The template is deep-copied and never mutated; the same template value can
// back concurrent builds for unrelated providers. The idp section is built
// from the provider alone, while the sp and security sections overlay the
// provider fields onto whatever the template already carried. Unknown
// template keys pass through unchanged.
//
// The sp entityId and assertion consumer service URL are left empty on
// purpose; the embedding application fills them from its runtime context.
func BuildProviderConfig(p *provider.ProviderWithCertificates, defaults ConfigTemplate) map[string]interface{} {
	config := sysutils.DeepCopyMap(defaults)
	if config == nil {
		config = make(map[string]interface{})
	}

	certField := ResolveCertificates(p.SigningCertificateTexts(), p.EncryptionCertificateTexts())

	idpSection := map[string]interface{}{
		keyEntityID: p.IDPIssuer,
		keySingleSignOnService: map[string]interface{}{
			keyURL:     p.IDPSSOURL,
			keyBinding: string(p.IDPSSOBinding),
		},
	}
	certField.applyTo(idpSection)

	spSection := overlaySection(config, keySP, map[string]interface{}{
		keyEntityID:     "",
		keyNameIDFormat: string(p.NameIDFormat),
		keyAssertionConsumerService: map[string]interface{}{
			keyURL:     "",
			keyBinding: string(p.SPACSBinding),
		},
	})
	securitySection := overlaySection(config, keySecurity, map[string]interface{}{
		keyWantMessagesSigned:      p.WantMessagesSigned,
		keyWantAssertionsSigned:    p.WantAssertionsSigned,
		keyWantAssertionsEncrypted: p.WantAssertionsEncrypted,
	})

	config[keyIDP] = idpSection
	config[keySP] = spSection
	config[keySecurity] = securitySection
	config[keyDebug] = p.Debug
	config[keyLowercaseURLEncoding] = p.LowercaseURLEncoding
	config[keyIDPInitiatedAuth] = p.IDPInitiatedAuth

	return config
}

// overlaySection overlays the given values onto the named section of the
// copied template, creating the section when absent. This deliberately
// differs from the idp section, which is replaced wholesale: the provider
// record is authoritative for idp, while sp and security keep template keys
// the provider does not own.
func overlaySection(config map[string]interface{}, sectionKey string,
	values map[string]interface{}) map[string]interface{} {
	section, ok := config[sectionKey].(map[string]interface{})
	if !ok {
		section = make(map[string]interface{}, len(values))
	}
	for key, value := range values {
		section[key] = value
	}
	return section
}
