package quadmesh_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmesh"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	quadmesh.SetLogger(nil)
	l := quadmesh.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLogger_SetAndRestore(t *testing.T) {
	var buf bytes.Buffer
	quadmesh.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { quadmesh.SetLogger(nil) })

	quadmesh.Logger().Debug("pairs matched", "count", 4)
	assert.Contains(t, buf.String(), "pairs matched")
	assert.Contains(t, buf.String(), "count=4")

	quadmesh.SetLogger(nil)
	assert.False(t, quadmesh.Logger().Enabled(context.Background(), slog.LevelWarn))
}
