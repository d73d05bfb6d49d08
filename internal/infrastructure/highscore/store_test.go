package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultsToZero(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "hs.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Get())
}

func TestStore_SetOnlyWhenHigher(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "hs.json"))
	require.NoError(t, err)

	tests := []struct {
		score    int
		recorded bool
		want     int
	}{
		{score: 500, recorded: true, want: 500},
		{score: 300, recorded: false, want: 500},
		{score: 500, recorded: false, want: 500},
		{score: 900, recorded: true, want: 900},
	}
	for _, tt := range tests {
		ok, err := s.Set(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.recorded, ok, "Set(%d)", tt.score)
		assert.Equal(t, tt.want, s.Get())
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hs.json")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Set(1234)
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, reopened.Get())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Key)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse high score")
}
