package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("debug", "json", &buf)
	Log.WithField("actor_id", 3).Debug("spawned")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "spawned", entry["msg"])
	assert.EqualValues(t, 3, entry["actor_id"])
}

func TestInitWriter_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("loud", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	assert.Empty(t, buf.String())
}
