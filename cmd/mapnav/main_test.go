package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapnav/config"
	"github.com/katalvlaran/mapnav/navigation"
)

func TestLoadStore_BundledMaps(t *testing.T) {
	st, err := loadStore(filepath.Join("..", "..", "maps"), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, st.Len(), 3)
}

func TestLoadStore_Errors(t *testing.T) {
	_, err := loadStore(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: x\nnodes: [{kind: gateway}]\n"), 0o600))
	_, err = loadStore(dir, nil)
	assert.Error(t, err)
}

func TestNewNavigator_AppliesChainSettings(t *testing.T) {
	st, err := loadStore(filepath.Join("..", "..", "maps"), nil)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := navigation.Request{StartMapID: "annex", StartNodeID: "pharmacy", EndMapID: "first-floor", EndNodeID: "ward-12"}

	cfg := config.Default()
	res := newNavigator(cfg, st, nil, logger).Generate(context.Background(), req)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 4, res.TotalMaps)

	cfg.ClosedMaps = []string{"ground-floor"}
	res = newNavigator(cfg, st, nil, logger).Generate(context.Background(), req)
	assert.Equal(t, navigation.KindNoRouteBetweenMaps, res.Kind)

	cfg = config.Default()
	cfg.MaxChainHops = 2
	res = newNavigator(cfg, st, nil, logger).Generate(context.Background(), req)
	assert.Equal(t, navigation.KindNoRouteBetweenMaps, res.Kind)
}
