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

// Configuration keys of the resolved provider configuration. The key names
// and nesting are the contract with the downstream SAML protocol library and
// must not change.
const (
	keyIDP                  = "idp"
	keySP                   = "sp"
	keySecurity             = "security"
	keyDebug                = "debug"
	keyLowercaseURLEncoding = "lowercase_urlencoding"
	keyIDPInitiatedAuth     = "idp_initiated_auth"

	keyEntityID                 = "entityId"
	keySingleSignOnService      = "singleSignOnService"
	keyAssertionConsumerService = "assertionConsumerService"
	keyURL                      = "url"
	keyBinding                  = "binding"
	keyNameIDFormat             = "NameIDFormat"

	keyX509Cert      = "x509cert"
	keyX509CertMulti = "x509certMulti"
	keySigning       = "signing"
	keyEncryption    = "encryption"

	keyWantMessagesSigned      = "wantMessagesSigned"
	keyWantAssertionsSigned    = "wantAssertionsSigned"
	keyWantAssertionsEncrypted = "wantAssertionsEncrypted"
)
