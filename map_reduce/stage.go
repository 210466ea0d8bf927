package map_reduce

import (
	"fmt"
	"time"
)

type StageType int

const (
	ReadStage StageType = iota
	MapStage
	SortStage
	ReduceStage
	WriteStage
)

func (s StageType) String() string {
	switch s {
	case ReadStage:
		return "read"
	case MapStage:
		return "map"
	case SortStage:
		return "sort"
	case ReduceStage:
		return "reduce"
	case WriteStage:
		return "write"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

type StageState int

const (
	StageIdle StageState = iota
	StageInProgress
	StageCompleted
	StageFailed
)

type Stage struct {
	StartTime time.Time
	Duration  time.Duration
	Type      StageType
	State     StageState
}

// StageTracker records the wall-clock time of each pipeline stage. Stages
// run one after another, so at most one is in progress.
type StageTracker struct {
	now     func() time.Time
	stages  []Stage
	current int
}

func NewStageTracker() *StageTracker {
	return &StageTracker{
		now:     time.Now,
		current: -1,
	}
}

func (t *StageTracker) Start(typ StageType) error {
	if t.current >= 0 {
		return fmt.Errorf("stage %s still in progress", t.stages[t.current].Type)
	}
	t.stages = append(t.stages, Stage{
		Type:      typ,
		State:     StageInProgress,
		StartTime: t.now(),
	})
	t.current = len(t.stages) - 1
	return nil
}

// Finish closes the stage in progress, marking it failed when err is non-nil.
func (t *StageTracker) Finish(err error) error {
	if t.current < 0 {
		return fmt.Errorf("no stage in progress")
	}
	stage := &t.stages[t.current]
	stage.Duration = t.now().Sub(stage.StartTime)
	stage.State = StageCompleted
	if err != nil {
		stage.State = StageFailed
	}
	t.current = -1
	return nil
}

func (t *StageTracker) Stages() []Stage {
	out := make([]Stage, len(t.stages))
	copy(out, t.stages)
	return out
}

// Elapsed sums the duration of every finished stage.
func (t *StageTracker) Elapsed() time.Duration {
	var total time.Duration
	for _, s := range t.stages {
		if s.State == StageCompleted || s.State == StageFailed {
			total += s.Duration
		}
	}
	return total
}
