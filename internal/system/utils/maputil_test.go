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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MapUtilTestSuite struct {
	suite.Suite
}

func TestMapUtilSuite(t *testing.T) {
	suite.Run(t, new(MapUtilTestSuite))
}

func (suite *MapUtilTestSuite) TestDeepCopyMapNil() {
	assert.Nil(suite.T(), DeepCopyMap(nil))
}

func (suite *MapUtilTestSuite) TestDeepCopyMapScalars() {
	src := map[string]interface{}{
		"string": "value",
		"int":    42,
		"bool":   true,
	}

	dst := DeepCopyMap(src)

	assert.Equal(suite.T(), src, dst)

	dst["string"] = "changed"
	assert.Equal(suite.T(), "value", src["string"])
}

func (suite *MapUtilTestSuite) TestDeepCopyMapNestedMap() {
	src := map[string]interface{}{
		"outer": map[string]interface{}{
			"inner": map[string]interface{}{
				"key": "value",
			},
		},
	}

	dst := DeepCopyMap(src)
	assert.Equal(suite.T(), src, dst)

	inner := dst["outer"].(map[string]interface{})["inner"].(map[string]interface{})
	inner["key"] = "changed"

	srcInner := src["outer"].(map[string]interface{})["inner"].(map[string]interface{})
	assert.Equal(suite.T(), "value", srcInner["key"])
}

func (suite *MapUtilTestSuite) TestDeepCopyMapSlices() {
	src := map[string]interface{}{
		"strings": []string{"a", "b"},
		"values":  []interface{}{"x", map[string]interface{}{"k": "v"}},
	}

	dst := DeepCopyMap(src)
	assert.Equal(suite.T(), src, dst)

	dst["strings"].([]string)[0] = "changed"
	assert.Equal(suite.T(), "a", src["strings"].([]string)[0])

	dst["values"].([]interface{})[1].(map[string]interface{})["k"] = "changed"
	assert.Equal(suite.T(), "v", src["values"].([]interface{})[1].(map[string]interface{})["k"])
}

func (suite *MapUtilTestSuite) TestDeepCopyMapStringMap() {
	src := map[string]interface{}{
		"attributes": map[string]string{"email": "user.email"},
	}

	dst := DeepCopyMap(src)
	assert.Equal(suite.T(), src, dst)

	dst["attributes"].(map[string]string)["email"] = "changed"
	assert.Equal(suite.T(), "user.email", src["attributes"].(map[string]string)["email"])
}
