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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/proauth/samlfed/internal/cert"
	"github.com/proauth/samlfed/internal/provider"
)

type ProviderConfigServiceTestSuite struct {
	suite.Suite
	service         ProviderConfigServiceInterface
	certService     cert.CertificateServiceInterface
	providerService provider.ProviderServiceInterface

	createdCertIDs     []string
	createdProviderIDs []string
}

func TestProviderConfigServiceSuite(t *testing.T) {
	suite.Run(t, new(ProviderConfigServiceTestSuite))
}

func (suite *ProviderConfigServiceTestSuite) SetupTest() {
	suite.service = NewProviderConfigService()
	suite.certService = cert.NewCertificateService()
	suite.providerService = provider.NewProviderService()
	suite.createdCertIDs = nil
	suite.createdProviderIDs = nil
}

func (suite *ProviderConfigServiceTestSuite) TearDownTest() {
	for _, providerID := range suite.createdProviderIDs {
		_ = suite.providerService.DeleteProvider(providerID)
	}
	for _, certID := range suite.createdCertIDs {
		_ = suite.certService.DeleteCertificate(certID)
	}
}

func (suite *ProviderConfigServiceTestSuite) mustCreateCert(name, text string) *cert.Certificate {
	if existing, svcErr := suite.certService.GetCertificateByName(name); svcErr == nil {
		_ = suite.certService.DeleteCertificate(existing.ID)
	}
	created, svcErr := suite.certService.CreateCertificate(&cert.Certificate{Name: name, Certificate: text})
	assert.Nil(suite.T(), svcErr)
	suite.createdCertIDs = append(suite.createdCertIDs, created.ID)
	return created
}

func (suite *ProviderConfigServiceTestSuite) mustCreateProvider(p *provider.Provider) *provider.Provider {
	if existing, svcErr := suite.providerService.GetProviderByName(p.Name); svcErr == nil {
		_ = suite.providerService.DeleteProvider(existing.ID)
	}
	created, svcErr := suite.providerService.CreateProvider(p)
	assert.Nil(suite.T(), svcErr)
	suite.createdProviderIDs = append(suite.createdProviderIDs, created.ID)
	return created
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfig() {
	signingCert := suite.mustCreateCert("resolve-signing", "CERTA")

	created := suite.mustCreateProvider(&provider.Provider{
		Name:                  "resolve-by-id",
		IDPIssuer:             "https://idp.example/metadata",
		IDPSSOURL:             "https://idp.example/sso",
		SigningCertificateIDs: []string{signingCert.ID},
	})

	config, svcErr := suite.service.ResolveProviderConfig(created.ID, nil)
	assert.Nil(suite.T(), svcErr)

	idpSection := config["idp"].(map[string]interface{})
	assert.Equal(suite.T(), "https://idp.example/metadata", idpSection["entityId"])
	assert.Equal(suite.T(), "CERTA", idpSection["x509cert"])
	assert.Equal(suite.T(), map[string]interface{}{
		"url":     "https://idp.example/sso",
		"binding": string(provider.DefaultSSOBinding),
	}, idpSection["singleSignOnService"])
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfigByName() {
	signing := suite.mustCreateCert("resolve-name-signing", "CERTA")
	encryption := suite.mustCreateCert("resolve-name-encryption", "CERTB")

	suite.mustCreateProvider(&provider.Provider{
		Name:                     "resolve-by-name",
		IDPIssuer:                "https://idp.example/metadata",
		IDPSSOURL:                "https://idp.example/sso",
		SigningCertificateIDs:    []string{signing.ID},
		EncryptionCertificateIDs: []string{encryption.ID},
	})

	config, svcErr := suite.service.ResolveProviderConfigByName("resolve-by-name", nil)
	assert.Nil(suite.T(), svcErr)

	idpSection := config["idp"].(map[string]interface{})
	assert.NotContains(suite.T(), idpSection, "x509cert")
	assert.Equal(suite.T(), map[string]interface{}{
		"signing":    []string{"CERTA"},
		"encryption": []string{"CERTB"},
	}, idpSection["x509certMulti"])
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfigWithDefaults() {
	signingCert := suite.mustCreateCert("resolve-defaults-signing", "CERTA")

	created := suite.mustCreateProvider(&provider.Provider{
		Name:                  "resolve-with-defaults",
		IDPIssuer:             "https://idp.example/metadata",
		IDPSSOURL:             "https://idp.example/sso",
		SigningCertificateIDs: []string{signingCert.ID},
		WantMessagesSigned:    true,
	})

	defaults := ConfigTemplate{
		"strict": true,
		"sp": map[string]interface{}{
			"privateKey": "SPKEY",
		},
	}

	config, svcErr := suite.service.ResolveProviderConfig(created.ID, defaults)
	assert.Nil(suite.T(), svcErr)

	assert.Equal(suite.T(), true, config["strict"])
	spSection := config["sp"].(map[string]interface{})
	assert.Equal(suite.T(), "SPKEY", spSection["privateKey"])
	securitySection := config["security"].(map[string]interface{})
	assert.Equal(suite.T(), true, securitySection["wantMessagesSigned"])
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfigNotFound() {
	config, svcErr := suite.service.ResolveProviderConfig("missing-provider-id", nil)
	assert.Nil(suite.T(), config)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), provider.ErrorProviderNotFound.Code, svcErr.Code)
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfigByNameNotFound() {
	config, svcErr := suite.service.ResolveProviderConfigByName("missing-provider", nil)
	assert.Nil(suite.T(), config)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), provider.ErrorProviderNotFound.Code, svcErr.Code)
}

func (suite *ProviderConfigServiceTestSuite) TestResolveProviderConfigWithDanglingReference() {
	keep := suite.mustCreateCert("resolve-dangling-keep", "CERTA")
	doomed := suite.mustCreateCert("resolve-dangling-doomed", "CERTB")

	created := suite.mustCreateProvider(&provider.Provider{
		Name:                  "resolve-dangling",
		IDPIssuer:             "https://idp.example/metadata",
		IDPSSOURL:             "https://idp.example/sso",
		SigningCertificateIDs: []string{keep.ID, doomed.ID},
	})

	svcErr := suite.certService.DeleteCertificate(doomed.ID)
	assert.Nil(suite.T(), svcErr)

	config, svcErr := suite.service.ResolveProviderConfig(created.ID, nil)
	assert.Nil(suite.T(), svcErr)

	idpSection := config["idp"].(map[string]interface{})
	assert.Equal(suite.T(), "CERTA", idpSection["x509cert"])
}
