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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	sysutils "github.com/proauth/samlfed/internal/system/utils"
)

type TemplateTestSuite struct {
	suite.Suite
}

func TestTemplateSuite(t *testing.T) {
	suite.Run(t, new(TemplateTestSuite))
}

func (suite *TemplateTestSuite) writeTemplateFile(content string) string {
	path := filepath.Join(suite.T().TempDir(), "defaults.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *TemplateTestSuite) TestLoadConfigTemplate() {
	path := suite.writeTemplateFile(`
strict: true
sp:
  x509cert: "SPCERT"
  privateKey: "SPKEY"
security:
  authnRequestsSigned: true
`)

	template, err := LoadConfigTemplate(path)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), true, template["strict"])
	spSection, ok := template["sp"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "SPCERT", spSection["x509cert"])
	assert.Equal(suite.T(), "SPKEY", spSection["privateKey"])
	securitySection, ok := template["security"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), true, securitySection["authnRequestsSigned"])
}

func (suite *TemplateTestSuite) TestLoadConfigTemplateEmptyFile() {
	path := suite.writeTemplateFile("")

	template, err := LoadConfigTemplate(path)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), template)
	assert.Empty(suite.T(), template)
}

func (suite *TemplateTestSuite) TestLoadConfigTemplateMissingFile() {
	path := filepath.Join(suite.T().TempDir(), "does-not-exist.yaml")

	template, err := LoadConfigTemplate(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), template)
}

func (suite *TemplateTestSuite) TestLoadConfigTemplateInvalidYAML() {
	path := suite.writeTemplateFile("strict: [unclosed")

	template, err := LoadConfigTemplate(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), template)
}

func (suite *TemplateTestSuite) TestLoadedTemplateNestedSectionTyping() {
	// Nested sections must come back as plain maps; the overlay and deep copy
	// dispatch on map[string]interface{}.
	path := suite.writeTemplateFile(`
contactPerson:
  technical:
    emailAddress: "ops@example.com"
`)

	template, err := LoadConfigTemplate(path)
	assert.NoError(suite.T(), err)

	contact, ok := template["contactPerson"].(map[string]interface{})
	assert.True(suite.T(), ok)
	_, ok = contact["technical"].(map[string]interface{})
	assert.True(suite.T(), ok)
}

func (suite *TemplateTestSuite) TestLoadedTemplateIsNotAliasedByBuilder() {
	path := suite.writeTemplateFile(`
contactPerson:
  technical:
    emailAddress: "ops@example.com"
security:
  authnRequestsSigned: true
`)

	template, err := LoadConfigTemplate(path)
	assert.NoError(suite.T(), err)
	snapshot := sysutils.DeepCopyMap(template)

	p := materializedProvider([]string{"CERTA"}, nil)
	config := BuildProviderConfig(p, template)

	contact := config["contactPerson"].(map[string]interface{})
	contact["technical"].(map[string]interface{})["emailAddress"] = "mutated"
	config["security"].(map[string]interface{})["authnRequestsSigned"] = false

	assert.Equal(suite.T(), ConfigTemplate(snapshot), template)
}

func (suite *TemplateTestSuite) TestLoadedTemplateFeedsBuilder() {
	path := suite.writeTemplateFile(`
strict: true
sp:
  privateKey: "SPKEY"
`)

	template, err := LoadConfigTemplate(path)
	assert.NoError(suite.T(), err)

	p := materializedProvider([]string{"CERTA"}, nil)
	config := BuildProviderConfig(p, template)

	assert.Equal(suite.T(), true, config["strict"])
	spSection := config["sp"].(map[string]interface{})
	assert.Equal(suite.T(), "SPKEY", spSection["privateKey"])
	assert.Equal(suite.T(), "", spSection["entityId"])
}
