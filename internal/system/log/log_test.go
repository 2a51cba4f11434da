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

package log

import (
	"bytes"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/proauth/samlfed/internal/system/constants"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(constants.LogLevelEnvironmentVariable)

	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TearDownTest() {
	if suite.originalLogLevel == "" {
		_ = os.Unsetenv(constants.LogLevelEnvironmentVariable)
	} else {
		_ = os.Setenv(constants.LogLevelEnvironmentVariable, suite.originalLogLevel)
	}

	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestGetLoggerSingleton() {
	logger1 := GetLogger()
	logger2 := GetLogger()

	assert.NotNil(suite.T(), logger1)
	assert.Same(suite.T(), logger1, logger2)
}

func (suite *LogTestSuite) TestInitLoggerWithEnvironmentVariable() {
	_ = os.Setenv(constants.LogLevelEnvironmentVariable, "debug")

	logInstance := GetLogger()
	assert.NotNil(suite.T(), logInstance)
	assert.True(suite.T(), logInstance.IsDebugEnabled())
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name      string
		input     string
		expected  slog.Level
		expectErr bool
	}{
		{"Debug", "debug", slog.LevelDebug, false},
		{"Info", "info", slog.LevelInfo, false},
		{"Warn", "warn", slog.LevelWarn, false},
		{"Error", "error", slog.LevelError, false},
		{"Invalid", "invalid", slog.LevelError, true},
		{"Empty", "", slog.LevelInfo, true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			level, err := parseLogLevel(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, level)
			}
		})
	}
}

func (suite *LogTestSuite) TestLogMethods() {
	var buf bytes.Buffer
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logHandler := slog.NewTextHandler(&buf, handlerOptions)
	log := &Logger{
		internal: slog.New(logHandler),
	}

	log.Debug("Debug message", Field{Key: "test", Value: "debug"})
	log.Info("Info message", Field{Key: "test", Value: "info"})
	log.Warn("Warning message", Field{Key: "test", Value: "warn"})
	log.Error("Error message", Field{Key: "test", Value: "error"})

	output := buf.String()
	assert.Contains(suite.T(), output, "Debug message")
	assert.Contains(suite.T(), output, "Info message")
	assert.Contains(suite.T(), output, "Warning message")
	assert.Contains(suite.T(), output, "Error message")
}

func (suite *LogTestSuite) TestLoggerWith() {
	var buf bytes.Buffer
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logHandler := slog.NewTextHandler(&buf, handlerOptions)
	log := &Logger{
		internal: slog.New(logHandler),
	}

	contextLogger := log.With(Field{Key: "context", Value: "test"})
	contextLogger.Info("Message with context")

	output := buf.String()
	assert.Contains(suite.T(), output, "Message with context")
	assert.Contains(suite.T(), output, "context=test")
}

func (suite *LogTestSuite) TestFieldHelpers() {
	assert.Equal(suite.T(), Field{Key: "name", Value: "value"}, String("name", "value"))
	assert.Equal(suite.T(), Field{Key: "count", Value: 3}, Int("count", 3))
	assert.Equal(suite.T(), Field{Key: "flag", Value: true}, Bool("flag", true))

	err := assert.AnError
	assert.Equal(suite.T(), Field{Key: "error", Value: err}, Error(err))
}
