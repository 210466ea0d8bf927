package map_reduce

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	InputDir  string
	OutputDir string
}

type Status int

const (
	StatusSucceeded Status = iota
	StatusOutputExists
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusOutputExists:
		return "output exists"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

type Report struct {
	RunID       string
	ResultPath  string
	SuccessPath string
	Stages      []Stage
	Records     int
	Pairs       int
	Words       int
	Elapsed     time.Duration
}

type Result struct {
	Report Report
	Status Status
}

// Err maps a non-success status to its sentinel error.
func (r Result) Err() error {
	if r.Status == StatusOutputExists {
		return ErrOutputExists
	}
	return nil
}

type Runner struct {
	mapper  Mapper
	reducer Reducer
}

func NewRunner(m Mapper, r Reducer) *Runner {
	return &Runner{
		mapper:  m,
		reducer: r,
	}
}

// Run reads cfg.InputDir, maps, sorts and reduces it, then writes the result
// and the success marker into cfg.OutputDir. An existing output directory is
// reported as StatusOutputExists and nothing is written.
func (r *Runner) Run(cfg Config) (Result, error) {
	tracker := NewStageTracker()
	report := Report{RunID: uuid.NewString()}
	log.Printf("Run %s: input=%s output=%s", report.RunID, cfg.InputDir, cfg.OutputDir)

	var (
		records []Record
		pairs   []Pair
		reduced []Pair
		err     error
	)

	err = r.stage(tracker, ReadStage, func() error {
		records, err = ReadRecords(cfg.InputDir)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	report.Records = len(records)

	err = r.stage(tracker, MapStage, func() error {
		pairs, err = r.mapper.Map(records)
		if err != nil {
			return fmt.Errorf("mapping error: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	report.Pairs = len(pairs)

	err = r.stage(tracker, SortStage, func() error {
		SortPairs(pairs)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	err = r.stage(tracker, ReduceStage, func() error {
		reduced, err = r.reducer.Reduce(pairs)
		if err != nil {
			return fmt.Errorf("reduce error: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	report.Words = len(reduced)

	err = r.stage(tracker, WriteStage, func() error {
		if err := CreateOutputDir(cfg.OutputDir); err != nil {
			return err
		}
		if report.ResultPath, err = WriteResults(cfg.OutputDir, reduced); err != nil {
			return err
		}
		report.SuccessPath, err = WriteSuccess(cfg.OutputDir)
		return err
	})
	report.Stages = tracker.Stages()
	report.Elapsed = tracker.Elapsed()
	if errors.Is(err, ErrOutputExists) {
		result := Result{Report: report, Status: StatusOutputExists}
		log.Printf("Run %s: %v (%v)", report.RunID, result.Status, err)
		return result, nil
	}
	if err != nil {
		return Result{}, err
	}

	log.Printf("Run %s: %d records, %d pairs, %d words in %v",
		report.RunID, report.Records, report.Pairs, report.Words, report.Elapsed)
	return Result{Report: report, Status: StatusSucceeded}, nil
}

func (r *Runner) stage(tracker *StageTracker, typ StageType, fn func() error) error {
	if err := tracker.Start(typ); err != nil {
		return err
	}
	err := fn()
	if ferr := tracker.Finish(err); ferr != nil {
		return ferr
	}
	return err
}
