package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockblast/engine"
	"blockblast/piece"
)

var (
	_ engine.HighScoreStore = (*FileStore)(nil)
	_ engine.HighScoreStore = (*Memory)(nil)
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))
	require.NoError(t, err)
	return s
}

func TestLoadMissingFile(t *testing.T) {
	s := newStore(t)
	score, err := s.Load()
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestSaveLoad(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(137))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, "137\n", string(data))

	score, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 137, score)
}

func TestLoadToleratesWhitespace(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("  42 \r\n"), 0644))

	score, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, score)
}

func TestLoadCorrupt(t *testing.T) {
	for _, content := range []string{"", "abc", "-3", "12.5", "9999999999999999999999"} {
		t.Run(content, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, os.WriteFile(s.Path, []byte(content), 0644))

			score, err := s.Load()
			assert.Zero(t, score)

			var corrupt *CorruptError
			require.True(t, errors.As(err, &corrupt), "got %v", err)
			assert.Equal(t, s.Path, corrupt.Path)
		})
	}
}

func TestSaveNegative(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.Save(-1))
	_, err := os.Stat(s.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveIntoMissingDir(t *testing.T) {
	s := &FileStore{Path: filepath.Join(t.TempDir(), "nope", "highscore.txt"), Perm: 0644}
	assert.Error(t, s.Save(10))
}

func TestMemory(t *testing.T) {
	m := &Memory{Score: 5}
	score, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, score)

	require.NoError(t, m.Save(9))
	assert.Equal(t, 9, m.Score)
}

// A corrupt file starts the session at 0 and is replaced by the next record.
func TestSessionWithCorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("garbage"), 0644))

	sess := engine.NewSession(piece.NewSeededGenerator(3), s)
	assert.Zero(t, sess.HighScore())

	require.NoError(t, s.Save(sess.HighScore()+1))
	score, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, score)
}
