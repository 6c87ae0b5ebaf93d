package logs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFanout(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	var text, file bytes.Buffer
	logger := New(&text, &file)

	logger.Debug("scanned", "lines", 3)
	logger.Warn("slow", "step", "ld")

	assert.NotContains(t, text.String(), "scanned")
	assert.Contains(t, text.String(), "msg=slow step=ld")

	records := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, records, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(records[0]), &first))
	assert.Equal(t, "scanned", first["msg"])
	assert.Equal(t, float64(3), first["lines"])
}

func TestVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	var text bytes.Buffer
	logger := New(&text, nil)

	SetVerbose(true)
	logger.Debug("target", "name", "linux-x64")
	assert.Contains(t, text.String(), "level=DEBUG msg=target name=linux-x64")
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}
