package testplan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Store writes plan files.
type Store struct {
	fs afero.Fs
}

// NewStore creates a store on fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a store on the local filesystem.
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// FileName returns the plan file name for ticketID.
func FileName(ticketID string) string {
	return "testplan_" + ticketID + ".md"
}

// Save writes plan to <dir>/testplan_<ticketID>.md, replacing any existing
// file, and returns the written path.
func (s *Store) Save(dir, ticketID, plan string) (string, error) {
	if ticketID == "" || strings.ContainsAny(ticketID, `/\`) || strings.Contains(ticketID, "..") {
		return "", fmt.Errorf("ticket id %q is not usable as a file name", ticketID)
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(ticketID))
	if err := afero.WriteFile(s.fs, path, []byte(plan), 0o644); err != nil {
		return "", fmt.Errorf("write test plan: %w", err)
	}
	return path, nil
}

// Load reads a saved plan file.
func (s *Store) Load(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("read test plan: %w", err)
	}
	return string(data), nil
}
