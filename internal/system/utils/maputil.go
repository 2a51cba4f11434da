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

// DeepCopyMap returns a deep copy of the given map. Nested maps and slices
// are copied recursively; scalar values are assigned as-is.
func DeepCopyMap(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for key, value := range src {
		dst[key] = DeepCopyValue(value)
	}
	return dst
}

// DeepCopyValue returns a deep copy of the given value.
func DeepCopyValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		return DeepCopyMap(typed)
	case map[string]string:
		copied := make(map[string]string, len(typed))
		for k, v := range typed {
			copied[k] = v
		}
		return copied
	case []interface{}:
		copied := make([]interface{}, len(typed))
		for i, v := range typed {
			copied[i] = DeepCopyValue(v)
		}
		return copied
	case []string:
		copied := make([]string, len(typed))
		copy(copied, typed)
		return copied
	default:
		return value
	}
}
