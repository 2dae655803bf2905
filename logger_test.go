package addrset_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/addrset"
)

func TestLogger_Build(t *testing.T) {
	var buf bytes.Buffer
	logger := addrset.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := addrset.New(twoSegments(), addrset.WithLogger(logger))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "address set created", rec["msg"])
	assert.Equal(t, float64(2), rec["segments"])
	assert.Equal(t, float64(24), rec["quantum"])
	assert.Equal(t, float64(342), rec["slots"])
	assert.Equal(t, "dense", rec["storage"])
}

func TestLogger_BuildError(t *testing.T) {
	var buf bytes.Buffer
	logger := addrset.NewLogger(slog.NewJSONHandler(&buf, nil))

	_, err := addrset.New(addrset.Layout{Pointer: 0}, addrset.WithLogger(logger))
	require.Error(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "address set layout rejected", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Contains(t, rec["error"], "invalid pointer size")
}

func TestLogger_DebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := addrset.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	s, err := addrset.New(twoSegments(), addrset.WithLogger(logger))
	require.NoError(t, err)
	s.Add(0x1000)

	assert.Empty(t, buf.String())
}

func TestWithLogger_Nil(t *testing.T) {
	s, err := addrset.New(twoSegments(), addrset.WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, s)

	assert.NotNil(t, addrset.NoopLogger())
	assert.NotNil(t, addrset.NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, addrset.NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, addrset.NewLogger(nil))
}
