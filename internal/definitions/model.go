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

// Package definitions provides loading and applying of federation definition files.
package definitions

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/proauth/samlfed/internal/system/log"
)

// CertificateDefinition holds a named certificate entry of a definition file.
type CertificateDefinition struct {
	Name        string `yaml:"name"`
	Certificate string `yaml:"certificate"`
}

// ProviderDefinition holds a provider entry of a definition file. Certificates
// are referenced by name and resolved against the certificate entries when the
// definitions are applied.
type ProviderDefinition struct {
	Name          string `yaml:"name"`
	IDPIssuer     string `yaml:"idp_issuer"`
	IDPSSOURL     string `yaml:"idp_sso_url"`
	IDPSSOBinding string `yaml:"idp_sso_binding"`
	NameIDFormat  string `yaml:"nameid_format"`
	SPACSBinding  string `yaml:"sp_acs_binding"`

	SigningCertificates    []string `yaml:"signing_certificates"`
	EncryptionCertificates []string `yaml:"encryption_certificates"`

	Debug                bool `yaml:"debug"`
	LowercaseURLEncoding bool `yaml:"lowercase_urlencoding"`
	IDPInitiatedAuth     bool `yaml:"idp_initiated_auth"`

	// WantMessagesSigned defaults to true when omitted, so it is kept as a
	// pointer to distinguish an explicit false from an absent key.
	WantMessagesSigned      *bool `yaml:"want_messages_signed"`
	WantAssertionsSigned    bool  `yaml:"want_assertions_signed"`
	WantAssertionsEncrypted bool  `yaml:"want_assertions_encrypted"`

	Attributes map[string]string `yaml:"attributes"`
}

// Definitions holds the complete content of a federation definition file.
type Definitions struct {
	Certificates []CertificateDefinition `yaml:"certificates"`
	Providers    []ProviderDefinition    `yaml:"providers"`
}

// LoadDefinitions loads the federation definitions from the specified YAML file.
func LoadDefinitions(path string) (*Definitions, error) {
	var defs Definitions
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close definition file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&defs); err != nil {
		return nil, err
	}
	return &defs, nil
}
