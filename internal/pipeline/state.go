package pipeline

import "time"

// Stage pairs a progress percentage with a human-readable status label.
// Stages advance in a strict order within a run.
type Stage struct {
	Progress int
	Status   string
}

var (
	StageValidating = Stage{5, "Validating URL"}
	StageStarting   = Stage{10, "Starting extraction"}
	StageFetching   = Stage{15, "Fetching website content"}
	StageCompany    = Stage{25, "Extracting company information"}
	StageContact    = Stage{40, "Extracting contact information"}
	StageProduct    = Stage{60, "Discovering product information"}
	StageCompleted  = Stage{100, "Completed"}
)

// RunState tracks the progress of one pipeline invocation. It lives only for
// the duration of the run and is never persisted.
type RunState struct {
	RunID     string
	URL       string
	Progress  int
	Status    string
	StartTime time.Time
}

func NewRunState(runID, url string) *RunState {
	return &RunState{
		RunID:     runID,
		URL:       url,
		Status:    "Starting",
		StartTime: time.Now(),
	}
}

// Update advances the run to a stage. Progress is monotonically
// non-decreasing; a stale update keeps the current percentage.
func (s *RunState) Update(stage Stage) {
	if stage.Progress > s.Progress {
		s.Progress = stage.Progress
	}
	s.Status = stage.Status
}

// IsStopped is an extension point for external run control. Not implemented;
// always false.
func (s *RunState) IsStopped() bool { return false }

// IsPaused is an extension point for external run control. Not implemented;
// always false.
func (s *RunState) IsPaused() bool { return false }
