package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ogzhanolguncu/hadoop-wordcount/corpus"
	"github.com/ogzhanolguncu/hadoop-wordcount/map_reduce"
)

type config struct {
	rawDir    string
	inputDir  string
	outputDir string
	copies    int
}

func (c config) validate() error {
	switch {
	case c.rawDir == "":
		return fmt.Errorf("raw directory required")
	case c.inputDir == "":
		return fmt.Errorf("input directory required")
	case c.outputDir == "":
		return fmt.Errorf("output directory required")
	case c.copies < 0:
		return fmt.Errorf("copies must not be negative, got %d", c.copies)
	}

	// The input and output directories are wiped on every run.
	dirs := []struct{ flag, path string }{
		{"raw", c.rawDir},
		{"input", c.inputDir},
		{"output", c.outputDir},
	}
	for i := range dirs {
		for j := i + 1; j < len(dirs); j++ {
			overlap, err := overlaps(dirs[i].path, dirs[j].path)
			if err != nil {
				return err
			}
			if overlap {
				return fmt.Errorf("%s directory %q and %s directory %q overlap",
					dirs[i].flag, dirs[i].path, dirs[j].flag, dirs[j].path)
			}
		}
	}
	return nil
}

// overlaps reports whether a and b are the same directory or one contains
// the other.
func overlaps(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", b, err)
	}
	return within(absA, absB) || within(absB, absA), nil
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func main() {
	var cfg config
	flag.StringVar(&cfg.rawDir, "raw", "files/raw", "Directory holding the sample files to replicate")
	flag.StringVar(&cfg.inputDir, "input", "files/input", "Directory the replicated corpus is written to")
	flag.StringVar(&cfg.outputDir, "output", "files/output", "Directory the word counts are written to")
	flag.IntVar(&cfg.copies, "copies", 1000, "Number of copies of each sample file")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run prepares the folders, builds the corpus and times the word count job.
func run(cfg config, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := corpus.InitializeFolder(cfg.inputDir); err != nil {
		return err
	}
	if err := corpus.DeleteFolder(cfg.outputDir); err != nil {
		return err
	}
	if _, err := corpus.Generate(cfg.rawDir, cfg.inputDir, cfg.copies); err != nil {
		return fmt.Errorf("failed to generate corpus: %w", err)
	}

	runner := map_reduce.NewRunner(&map_reduce.WordCountMapper{}, &map_reduce.WordCountReducer{})

	start := time.Now()
	result, err := runner.Run(map_reduce.Config{
		InputDir:  cfg.inputDir,
		OutputDir: cfg.outputDir,
	})
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("%w: %s", err, cfg.outputDir)
	}
	elapsed := time.Since(start)

	for _, s := range result.Report.Stages {
		log.Printf("Stage %s took %v", s.Type, s.Duration)
	}
	fmt.Fprintf(out, "Execution time: %.2f seconds\n", elapsed.Seconds())
	return nil
}
