// Package storage is the file provider for scholarship documents and the
// sink for rendered output. The parser itself never touches the filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// ReadDocument reads a markdown document as UTF-8 text.
func (s *Storage) ReadDocument(filePath string) (string, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error reading document %s: not valid UTF-8", filePath)
	}
	return string(data), nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// SaveFile writes content, creating parent directories as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
