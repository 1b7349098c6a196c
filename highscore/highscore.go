// Package highscore stores the best blockblast score as a single integer in a
// text file.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

var (
	dataFile = "blockblast/highscore.txt"
)

// CorruptError reports a high-score file whose content is not a non-negative integer.
type CorruptError struct {
	Path    string
	Content string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("High score file %s is corrupt: %q", e.Path, e.Content)
}

// FileStore keeps the high score in the file at Path.
type FileStore struct {
	Path string
	Perm fs.FileMode
}

// NewFileStore returns a store backed by path. An empty path selects
// blockblast/highscore.txt under the XDG data directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		path, err = xdg.DataFile(dataFile)
		if err != nil {
			return nil, fmt.Errorf("resolve high score path: %w", err)
		}
	}
	return &FileStore{Path: path, Perm: 0644}, nil
}

// Load reads the stored score. A missing file is a score of 0.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	content := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(content)
	if err != nil || score < 0 {
		return 0, &CorruptError{Path: s.Path, Content: content}
	}
	return score, nil
}

// Save overwrites the stored score.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save high score: negative score %d", score)
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)+"\n"), s.Perm); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// Memory keeps the high score in memory. It is used when saving is disabled.
type Memory struct {
	Score int
}

func (m *Memory) Load() (int, error) {
	return m.Score, nil
}

func (m *Memory) Save(score int) error {
	m.Score = score
	return nil
}
