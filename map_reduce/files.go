package map_reduce

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const (
	ResultFileName  = "part-00000"
	SuccessFileName = "_SUCCESS"
)

var (
	ErrOutputExists = errors.New("output directory already exists")
	ErrInvalidUTF8  = errors.New("input is not valid UTF-8")
)

// ReadRecords reads every regular file in dir, in file-name order, and
// returns one record per line. Lines keep their trailing newline. A line that
// is not valid UTF-8 fails the read with ErrInvalidUTF8.
func ReadRecords(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		records, err = appendFileRecords(records, path)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

func appendFileRecords(records []Record, path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	for n := 1; ; n++ {
		line, err := r.ReadString('\n')
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: %s line %d", ErrInvalidUTF8, path, n)
		}
		if line != "" {
			records = append(records, Record{Source: path, Line: line})
		}
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}

// CreateOutputDir creates dir and its parents. It returns ErrOutputExists
// when dir is already there.
func CreateOutputDir(dir string) error {
	if parent := filepath.Dir(dir); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("failed to create output parent: %w", err)
		}
	}
	err := os.Mkdir(dir, 0755)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrOutputExists, dir)
	}
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// WriteResults writes one "<word>\t<count>" line per pair to
// dir/part-00000 and returns the file path.
func WriteResults(dir string, pairs []Pair) (string, error) {
	path := filepath.Join(dir, ResultFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", p.Word, p.Count); err != nil {
			return "", fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close result file: %w", err)
	}
	return path, nil
}

// WriteSuccess drops the empty _SUCCESS marker into dir.
func WriteSuccess(dir string) (string, error) {
	path := filepath.Join(dir, SuccessFileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return "", fmt.Errorf("failed to create success file: %w", err)
	}
	return path, nil
}
