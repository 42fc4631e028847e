package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapReporter_Statusln(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core).Sugar())

	r.Statusln("barrier B1 satisfied")

	require.Len(t, logs.All(), 1)
	assert.Contains(t, logs.All()[0].Message, "barrier B1 satisfied")
}

func TestZapReporter_IncrCounter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core).Sugar())

	r.IncrCounter("phasemr", "words", 42)

	require.Len(t, logs.All(), 1)
	entry := logs.All()[0]
	assert.Equal(t, "phasemr", entry.ContextMap()["group"])
	assert.Equal(t, "words", entry.ContextMap()["counter"])
}

func TestStreamingReporter_ReproducesHadoopProtocol(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamingReporter(&buf)

	r.Statusf("mapper_root is %s", "temp_mapper")
	r.IncrCounter("phasemr", "words", 42)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "reporter:status:mapper_root is temp_mapper\n"))
	assert.Contains(t, out, "reporter:counter:phasemr,words,42\n")
}
