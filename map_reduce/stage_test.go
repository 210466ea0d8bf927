package map_reduce

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestStageTrackerTimings(t *testing.T) {
	tracker := NewStageTracker()
	tracker.now = fakeClock(time.Second)

	require.NoError(t, tracker.Start(MapStage))
	require.NoError(t, tracker.Finish(nil))
	require.NoError(t, tracker.Start(SortStage))
	require.NoError(t, tracker.Finish(errors.New("sort failed")))

	stages := tracker.Stages()
	require.Len(t, stages, 2)
	require.Equal(t, MapStage, stages[0].Type)
	require.Equal(t, StageCompleted, stages[0].State)
	require.Equal(t, time.Second, stages[0].Duration)
	require.Equal(t, StageFailed, stages[1].State)
	require.Equal(t, 2*time.Second, tracker.Elapsed())
}

func TestStageTrackerOneStageAtATime(t *testing.T) {
	tracker := NewStageTracker()

	require.Error(t, tracker.Finish(nil))
	require.NoError(t, tracker.Start(ReadStage))
	require.Error(t, tracker.Start(MapStage))

	require.Equal(t, StageInProgress, tracker.Stages()[0].State)
	require.Zero(t, tracker.Elapsed())
}

func TestStageTypeString(t *testing.T) {
	require.Equal(t, "reduce", ReduceStage.String())
	require.Equal(t, "stage(42)", StageType(42).String())
}
