// FILE: src/logger/logger_test.go
package logger_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"guildlog/src/core"
	"guildlog/src/correlate"
	"guildlog/src/internal/sink"
	"guildlog/src/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticCorrelator always reports a fixed id
type staticCorrelator string

func (s staticCorrelator) CorrelationID(context.Context) (string, bool) {
	return string(s), s != ""
}

// panicCorrelator misbehaves on every read
type panicCorrelator struct{}

func (panicCorrelator) CorrelationID(context.Context) (string, bool) {
	panic("correlator exploded")
}

// failingSink rejects every write
type failingSink struct{}

func (failingSink) Write(core.Level, []byte) error {
	return errors.New("transport down")
}

func newTestLogger(t *testing.T, cfg *logger.Config, opts ...logger.Option) (*logger.Logger, *sink.Memory) {
	t.Helper()

	mem := sink.NewMemory(core.LevelDebug)
	opts = append([]logger.Option{logger.WithSink(mem)}, opts...)
	l, err := logger.New(cfg, opts...)
	require.NoError(t, err)
	return l, mem
}

func TestNew(t *testing.T) {
	t.Run("NilConfigUsesDefaults", func(t *testing.T) {
		l, err := logger.New(nil, logger.WithSink(sink.NewMemory(core.LevelDebug)))
		require.NoError(t, err)
		l.Close()
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := logger.New(&logger.Config{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		_, err := logger.New(&logger.Config{Target: "file"})
		assert.Error(t, err)
	})
}

func TestSilentMode(t *testing.T) {
	var fallback bytes.Buffer
	l, mem := newTestLogger(t,
		&logger.Config{Level: "debug", Silent: true},
		logger.WithFallbackWriter(&fallback))

	l.Error("m")
	l.Warn("m")
	l.Info("m")
	l.Verbose("m")
	l.Debug("m")

	assert.Empty(t, mem.Lines(), "silent mode must not write to the sink")
	assert.Empty(t, fallback.String(), "silent mode must not trip the fallback")
}

func TestLevelGating(t *testing.T) {
	l, mem := newTestLogger(t, &logger.Config{Level: "warn"})

	l.Info("dropped")
	l.Debug("dropped")
	l.Warn("kept")
	l.Error("kept")

	require.Len(t, mem.Lines(), 2)
	assert.Contains(t, mem.Lines()[0], "kept")
}

func TestPlainTextScenario(t *testing.T) {
	l, mem := newTestLogger(t,
		&logger.Config{Level: "info"},
		logger.WithCorrelator(staticCorrelator("req-7")))

	l.Info("user created", core.F("userId", 42))

	require.Len(t, mem.Lines(), 1)
	line := mem.Lines()[0]

	// Head: "{ts} info req-7: user created, userId=42", then the
	// enrichment fields
	matched, err := regexp.MatchString(
		`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} info req-7: user created, userId=42, function=`, line)
	require.NoError(t, err)
	assert.True(t, matched, "unexpected line: %q", line)
	assert.Contains(t, line, ", file=logger_test.go")
	assert.Contains(t, line, "TestPlainTextScenario")
}

func TestHeadWithoutCorrelationID(t *testing.T) {
	l, mem := newTestLogger(t, &logger.Config{Level: "info"})

	l.Info("plain message")

	require.Len(t, mem.Lines(), 1)
	assert.Contains(t, mem.Lines()[0], " info: plain message")
}

func TestContextCorrelation(t *testing.T) {
	l, mem := newTestLogger(t, &logger.Config{Level: "info"})

	ctx := correlate.WithID(context.Background(), "abc123")
	l.InfoContext(ctx, "scoped")
	l.Info("unscoped")

	require.Len(t, mem.Lines(), 2)
	assert.Contains(t, mem.Lines()[0], " info abc123: scoped")
	assert.Contains(t, mem.Lines()[1], " info: unscoped")
}

func TestEnrichmentIsAuthoritative(t *testing.T) {
	l, mem := newTestLogger(t,
		&logger.Config{Level: "info"},
		logger.WithCorrelator(staticCorrelator("real-id")))

	l.Info("spoof attempt",
		core.F("correlationId", "fake-id"),
		core.F("function", "fakeFunc"),
		core.F("file", "fake.go"))

	require.Len(t, mem.Lines(), 1)
	line := mem.Lines()[0]
	assert.Contains(t, line, " info real-id: spoof attempt")
	assert.NotContains(t, line, "fake-id")
	assert.NotContains(t, line, "fakeFunc")
	assert.NotContains(t, line, "fake.go")
}

func TestEveryMetaKeyRendered(t *testing.T) {
	l, mem := newTestLogger(t, &logger.Config{Level: "info"})

	l.Info("m", core.F("alpha", 1), core.F("beta", "two"), core.F("gamma", true))

	require.Len(t, mem.Lines(), 1)
	line := mem.Lines()[0]
	for _, key := range []string{"alpha", "beta", "gamma"} {
		assert.Contains(t, line, ", "+key+"=")
	}
}

func TestErrorFieldKeepsStackInTextMode(t *testing.T) {
	l, mem := newTestLogger(t, &logger.Config{Level: "info"})

	traced := core.NewTracedError("TypeError", "x")
	l.Error("operation failed", core.F("error", traced))

	require.Len(t, mem.Lines(), 1)
	line := mem.Lines()[0]
	assert.Contains(t, line, ", error=\nTypeError: x\n\t")
	assert.Contains(t, line, traced.Stack())
}

func TestJSONMode(t *testing.T) {
	l, mem := newTestLogger(t,
		&logger.Config{Level: "info", JSON: true},
		logger.WithCorrelator(staticCorrelator("req-9")))

	l.Info("user created", core.F("userId", 42))

	require.Len(t, mem.Lines(), 1)
	line := mem.Lines()[0]
	assert.True(t, strings.HasPrefix(line, "{"))
	assert.Contains(t, line, `"correlationId":"req-9"`)
	assert.Contains(t, line, `"userId":42`)
	assert.Contains(t, line, `"message":"user created"`)
}

func TestFallbackOnRenderFailure(t *testing.T) {
	var fallback bytes.Buffer
	l, mem := newTestLogger(t,
		&logger.Config{Level: "info", JSON: true},
		logger.WithFallbackWriter(&fallback))

	// A channel has no JSON encoding, so the structured render fails
	l.Info("channel update", core.F("ch", make(chan int)))

	assert.Empty(t, mem.Lines(), "failed render must not reach the sink")
	out := fallback.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "message=channel update")
	assert.Contains(t, out, "render failed")
	assert.Contains(t, out, "<meta serialization failed")
}

func TestFallbackOnSinkFailure(t *testing.T) {
	var fallback bytes.Buffer
	l, err := logger.New(&logger.Config{Level: "info"},
		logger.WithSink(failingSink{}),
		logger.WithFallbackWriter(&fallback))
	require.NoError(t, err)

	l.Info("user created", core.F("userId", 42))

	out := fallback.String()
	assert.Contains(t, out, "sink write failed")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "message=user created")
	assert.Contains(t, out, `"userId":42`)
}

func TestCorrelatorFailureDegradesToAbsent(t *testing.T) {
	var fallback bytes.Buffer
	l, mem := newTestLogger(t,
		&logger.Config{Level: "info"},
		logger.WithCorrelator(panicCorrelator{}),
		logger.WithFallbackWriter(&fallback))

	l.Info("still emitted")

	require.Len(t, mem.Lines(), 1)
	assert.Contains(t, mem.Lines()[0], " info: still emitted")
	assert.Empty(t, fallback.String())
}

func TestNeverRaises(t *testing.T) {
	var fallback bytes.Buffer
	l, _ := newTestLogger(t,
		&logger.Config{Level: "debug", JSON: true},
		logger.WithCorrelator(panicCorrelator{}),
		logger.WithFallbackWriter(&fallback))

	assert.NotPanics(t, func() {
		for _, lvl := range core.Levels() {
			l.Log(context.Background(), lvl, "m", core.F("ch", make(chan int)))
		}
	})
}
