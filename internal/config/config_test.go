package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/battleship/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Board.Rows)
	assert.Equal(t, 10, cfg.Board.Cols)
	assert.Equal(t, 26, cfg.Board.MaxRows)
	assert.Equal(t, 26, cfg.Board.MaxCols)
	assert.Equal(t, 256, cfg.Sessions.Capacity)
	assert.Equal(t, domain.DefaultFleet(), cfg.Fleet)
}

func TestLoadFileWithCustomFleet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9999"
board:
  rows: 8
  cols: 12
fleet:
  - name: Frigate
    length: 3
  - name: Corvette
    length: 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 8, cfg.Board.Rows)
	assert.Equal(t, 12, cfg.Board.Cols)
	assert.Equal(t, []domain.ShipType{{Name: "Frigate", Length: 3}, {Name: "Corvette", Length: 2}}, cfg.Fleet)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BUDDY_BOARD_ROWS", "7")
	t.Setenv("BUDDY_LOG_LEVEL", "debug")
	t.Setenv("BUDDY_BOARD_MAXCOLS", "40")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Rows)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 40, cfg.Board.MaxCols)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad-fleet.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fleet:\n  - name: Raft\n    length: 0\n"), 0o644))
	_, err := Load(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidShipType)

	small := filepath.Join(dir, "bad-board.yaml")
	require.NoError(t, os.WriteFile(small, []byte("board:\n  rows: 0\n"), 0o644))
	_, err = Load(small)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	empty := filepath.Join(dir, "empty-fleet.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("fleet: []\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, domain.ErrInvalidShipType)

	oversized := filepath.Join(dir, "oversized.yaml")
	require.NoError(t, os.WriteFile(oversized, []byte("board:\n  rows: 30\n  maxRows: 20\n"), 0o644))
	_, err = Load(oversized)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
