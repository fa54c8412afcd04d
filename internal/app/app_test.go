package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"kitchenctl/internal/config"
	"kitchenctl/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotConfig(t *testing.T, section string) (*Config, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	kc := config.GetDefaultConfig()
	cfg := NewConfig(true, false)
	cfg.Section = section
	cfg.Width = 120
	cfg.Height = 40
	cfg.Out = &buf
	cfg.KitchenConfig = &kc
	return cfg, &buf
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, true)
	assert.True(t, cfg.NoTUI)
	assert.True(t, cfg.Debug)
	assert.Equal(t, os.Stdout, cfg.Out)
}

func TestRunCLIMode_RendersSection(t *testing.T) {
	cfg, buf := snapshotConfig(t, string(dashboard.SectionMenu))

	require.NoError(t, runCLIMode(context.Background(), cfg))
	out := buf.String()
	assert.Contains(t, out, "Menu Items")
	assert.Contains(t, out, "$22.50")
}

func TestRunCLIMode_UnknownSection(t *testing.T) {
	cfg, buf := snapshotConfig(t, "Reservations")

	require.NoError(t, runCLIMode(context.Background(), cfg))
	assert.Contains(t, buf.String(), "Section not found")
}

func TestRunCLIMode_CancelledContext(t *testing.T) {
	cfg, buf := snapshotConfig(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, runCLIMode(ctx, cfg), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNewApplication_ExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  title: TEST KITCHEN\n"), 0o644))

	cfg := NewConfig(true, false)
	cfg.ConfigPath = path
	var buf bytes.Buffer
	cfg.Out = &buf

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NotNil(t, cfg.KitchenConfig)
	assert.Equal(t, "TEST KITCHEN", cfg.KitchenConfig.Settings.Title)

	require.NoError(t, application.Run(context.Background()))
	assert.Contains(t, buf.String(), "TEST KITCHEN")
}

func TestNewApplication_MissingConfig(t *testing.T) {
	cfg := NewConfig(true, false)
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
