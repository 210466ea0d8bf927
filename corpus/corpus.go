// Package corpus builds the benchmark input directory by replicating a set of
// raw sample files.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Summary struct {
	Sources int
	Files   int
	Bytes   int64
}

// ClearFolder removes everything inside dir. A missing dir is not an error.
func ClearFolder(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to clear %s: %w", dir, err)
		}
	}
	return nil
}

// InitializeFolder leaves dir existing and empty.
func InitializeFolder(dir string) error {
	if err := ClearFolder(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

func DeleteFolder(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete %s: %w", dir, err)
	}
	return nil
}

// Generate resets inputDir and writes copies numbered replicas of every
// regular file in rawDir: raw/doc.md becomes input/doc_1.txt ... doc_N.txt.
// The first failure aborts the run; replicas already written stay in place.
func Generate(rawDir, inputDir string, copies int) (Summary, error) {
	var summary Summary
	if copies < 0 {
		return summary, fmt.Errorf("copies must not be negative, got %d", copies)
	}

	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return summary, fmt.Errorf("failed to read raw directory: %w", err)
	}
	if err := InitializeFolder(inputDir); err != nil {
		return summary, err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(rawDir, entry.Name())
		data, err := os.ReadFile(src)
		if err != nil {
			return summary, fmt.Errorf("failed to read raw file: %w", err)
		}
		summary.Sources++

		stem := replicaStem(entry.Name())
		for i := 1; i <= copies; i++ {
			dst := filepath.Join(inputDir, fmt.Sprintf("%s_%d.txt", stem, i))
			if err := os.WriteFile(dst, data, 0644); err != nil {
				return summary, fmt.Errorf("failed to write replica: %w", err)
			}
			summary.Files++
			summary.Bytes += int64(len(data))
		}
	}

	log.Printf("Generated %d files (%d bytes) from %d sources in %s",
		summary.Files, summary.Bytes, summary.Sources, inputDir)
	return summary, nil
}

// replicaStem strips the extension, keeping dotfiles like ".notes" whole.
func replicaStem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return name
	}
	return stem
}
