package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-maze/internal/config"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	cfg, err := loadConfig("", "configs/maze.yaml", "localhost:18066", "debug")
	require.NoError(t, err)

	assert.Equal(t, "configs/maze.yaml", cfg.Maze.Path)
	assert.Equal(t, "localhost:18066", cfg.Diagnostics.StatsviewAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	_, err := loadConfig("", "", "", "loud")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := loadConfig("../../configs/config.yaml", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadLayout(t *testing.T) {
	l, err := loadLayout("")
	require.NoError(t, err)
	assert.Equal(t, "default", l.Name)

	l, err = loadLayout("../../configs/maze.yaml")
	require.NoError(t, err)
	assert.Len(t, l.Walls, 22)

	_, err = loadLayout("missing.yaml")
	assert.Error(t, err)
}

func TestRealMainReturnsExitCodes(t *testing.T) {
	assert.Equal(t, 2, realMain([]string{"-nosuchflag"}))
	assert.Equal(t, 1, realMain([]string{"-loglevel", "loud"}))
	assert.Equal(t, 1, realMain([]string{"-config", "missing.yaml"}))
}

func TestRealMainStopsStatsOnFailure(t *testing.T) {
	const addr = "127.0.0.1:18367"

	// the layout fails to load before any window is created
	code := realMain([]string{"-statsview", addr, "-maze", "missing.yaml"})
	assert.Equal(t, 1, code)

	// the stats server released its port
	require.Eventually(t, func() bool {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return false
		}
		_ = ln.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond)
}
