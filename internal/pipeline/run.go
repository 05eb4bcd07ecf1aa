// Package pipeline provides the high-level orchestration for validating, migrating
// and building a personality collection.
package pipeline

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/build"
	"github.com/zeekay/persona/internal/logging"
	"github.com/zeekay/persona/internal/pipeline/steps"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Progress categories
const (
	categoryStart    = "start"
	categoryProgress = "progress"
	categoryDone     = "done"
	categoryWarning  = "warning"
)

// run carries the per-invocation state shared by every pipeline.
type run struct {
	id         string
	logger     *zap.Logger
	onProgress ProgressCallback
	now        func() time.Time
	started    time.Time
	steps      *steps.Tracker
}

func newRun(name string, logger *zap.Logger, onProgress ProgressCallback, now func() time.Time) *run {
	if now == nil {
		now = time.Now
	}
	id := uuid.New().String()
	return &run{
		id:         id,
		logger:     logging.Nop(logger).With(zap.String("pipeline", name), zap.String("run_id", id)),
		onProgress: onProgress,
		now:        now,
		started:    now(),
		steps:      steps.NewTracker(),
	}
}

// emit calls the progress callback if configured
func (r *run) emit(step, category, message string, content any) {
	if r.onProgress != nil {
		r.onProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    r.id,
			Content:  content,
		})
	}
}

// begin checks a step's dependencies and announces it.
func (r *run) begin(step, message string) error {
	if err := r.steps.Start(step); err != nil {
		return err
	}
	r.logger.Debug("step started", zap.String("step", step))
	r.emit(step, categoryStart, message, nil)
	return nil
}

// finish marks a step complete and reports its outcome.
func (r *run) finish(step, message string, content any) {
	r.steps.Complete(step)
	r.logger.Debug("step completed", zap.String("step", step))
	r.emit(step, categoryDone, message, content)
}

// timestamp formats the run start the way generated files are stamped.
func (r *run) timestamp() string {
	return build.Timestamp(r.started)
}

func (r *run) elapsed() time.Duration {
	return r.now().Sub(r.started).Round(time.Millisecond)
}
