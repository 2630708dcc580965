package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lines struct {
	got []string
}

func (l *lines) WriteLineBytes(b []byte) { l.got = append(l.got, string(b)) }

func TestNewWritesOneLinePerRecord(t *testing.T) {
	sink := &lines{}
	log := New(sink, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("probe", "x", 3)
	log.Warn("rejected", "error", errors.New("bad"))

	require.Len(t, sink.got, 2)
	assert.Contains(t, sink.got[0], "msg=probe")
	assert.Contains(t, sink.got[0], "x=3")
	assert.Contains(t, sink.got[1], "err=bad")
	assert.NotContains(t, sink.got[1], "\n")
}

func TestNewNop(t *testing.T) {
	NewNop().Error("nothing happens")
}

func TestToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := ToWriter(&buf, slog.LevelDebug)
	log.Debug("intent", "intent", "probe")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "intent=probe")
}
