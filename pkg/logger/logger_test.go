package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger()

	assert.NotNil(t, logger)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestGetLogger(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("skill", "general")
		ctx := WithLogger(context.Background(), custom)

		retrieved := G(ctx)
		assert.Equal(t, "general", retrieved.Data["skill"])
	})

	t.Run("falls back to global", func(t *testing.T) {
		retrieved := G(context.Background())
		assert.Equal(t, L.Logger, retrieved.Logger)
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil guard
		assert.Equal(t, L, G(nil))
	})
}

func TestSetLogLevel(t *testing.T) {
	original := L.Logger.GetLevel()
	defer L.Logger.SetLevel(original)

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	err := SetLogLevel("loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestConfigureJSON(t *testing.T) {
	originalLevel := L.Logger.GetLevel()
	originalOut := L.Logger.Out
	defer func() {
		L.Logger.SetLevel(originalLevel)
		L.Logger.SetOutput(originalOut)
		SetLogFormat("fmt")
	}()

	var buf bytes.Buffer
	SetLogOutput(&buf)
	require.NoError(t, Configure("info", "json"))

	G(context.Background()).WithField("skill", "sql-safety").Info("resolved")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolved", record["message"])
	assert.Equal(t, "info", record["logLevel"])
	assert.Equal(t, "sql-safety", record["skill"])
	assert.Contains(t, record, "timestamp")
}

func TestConfigureKeepsLevelWhenEmpty(t *testing.T) {
	original := L.Logger.GetLevel()
	defer L.Logger.SetLevel(original)

	L.Logger.SetLevel(logrus.ErrorLevel)
	require.NoError(t, Configure("", "text"))
	assert.Equal(t, logrus.ErrorLevel, L.Logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, L.Logger.Formatter)
}
