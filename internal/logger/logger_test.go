package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	SetLevel("DEBUG")
	require.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	SetLevel("warning")
	require.Equal(t, logrus.WarnLevel, Logger.GetLevel())

	SetLevel("nonsense")
	require.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}

func TestWithFields_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	WithFields(logrus.Fields{"verdict": "indeterminate", "strands": 3}).Info("inspection finished")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "inspection finished", line["msg"])
	require.Equal(t, "indeterminate", line["verdict"])
	require.Equal(t, float64(3), line["strands"])
}
