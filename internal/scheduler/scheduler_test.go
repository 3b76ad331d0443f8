package scheduler

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	runs int
	err  error
}

func (j *stubJob) Run() error   { j.runs++; return j.err }
func (j *stubJob) Name() string { return "stub" }

func TestRunNow(t *testing.T) {
	sched := New(zerolog.Nop())
	job := &stubJob{}

	require.NoError(t, sched.RunNow(job))
	assert.Equal(t, 1, job.runs)
}

func TestRunNowPropagatesError(t *testing.T) {
	sched := New(zerolog.Nop())
	job := &stubJob{err: fmt.Errorf("prune failed")}

	err := sched.RunNow(job)
	assert.Error(t, err)
	assert.Equal(t, 1, job.runs)
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	sched := New(zerolog.Nop())

	assert.Error(t, sched.AddJob("not a schedule", &stubJob{}))
	assert.NoError(t, sched.AddJob("0 0 3 * * *", &stubJob{}))
}
