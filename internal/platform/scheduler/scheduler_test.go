package scheduler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs int
	err  error
}

func (j *countingJob) Run() error {
	j.runs++
	return j.err
}

func (j *countingJob) Name() string { return j.name }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddJob_RejectsBadSchedule(t *testing.T) {
	s := New(discardLogger())
	assert.Error(t, s.AddJob("not a schedule", &countingJob{name: "bad"}))
	assert.NoError(t, s.AddJob("@every 1h", &countingJob{name: "hourly"}))
}

func TestRunAll_RunsRegisteredJobsOnce(t *testing.T) {
	s := New(discardLogger())
	ok := &countingJob{name: "ok"}
	broken := &countingJob{name: "broken", err: errors.New("boom")}
	rejected := &countingJob{name: "rejected"}

	require.NoError(t, s.AddJob("@every 1h", ok))
	require.NoError(t, s.AddJob("@daily", broken))
	require.Error(t, s.AddJob("never", rejected))

	assert.Equal(t, 1, s.RunAll())
	assert.Equal(t, 1, ok.runs)
	assert.Equal(t, 1, broken.runs)
	assert.Equal(t, 0, rejected.runs)
}

func TestRunAll_NoJobs(t *testing.T) {
	assert.Equal(t, 0, New(discardLogger()).RunAll())
}

func TestCronLogger_ForwardsErrors(t *testing.T) {
	var buf bytes.Buffer
	l := cronLogger{log: slog.New(slog.NewTextHandler(&buf, nil))}

	l.Error(errors.New("panic in job"), "panic", "stack", "trace")

	assert.Contains(t, buf.String(), "error=\"panic in job\"")
	assert.Contains(t, buf.String(), "stack=trace")
}

func TestStartStop(t *testing.T) {
	s := New(discardLogger())
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "idle"}))
	s.Start()
	s.Stop()
}
