package domain

import "fmt"

// Job is one request to process a single archive end-to-end.
type Job struct {
	ID              int64
	ArchiveLocation string
	DisplayName     string
}

func (j Job) String() string {
	if j.DisplayName == "" {
		return fmt.Sprintf("job %d", j.ID)
	}
	return fmt.Sprintf("job %d (%s)", j.ID, j.DisplayName)
}

type PipelineState string

const (
	PipelineStateCompleted       PipelineState = "completed"
	PipelineStatePartiallyFailed PipelineState = "partially_failed"
)

type Stage string

const (
	StageExtract   Stage = "extract"
	StageClean     Stage = "clean"
	StageStrip     Stage = "strip"
	StagePreview   Stage = "preview"
	StageVideo     Stage = "video"
	StageUpload    Stage = "upload"
	StageRepackage Stage = "repackage"
)

// StageFailure records that one item failed one stage. It never aborts the job.
type StageFailure struct {
	Item   string `json:"item"`
	Stage  Stage  `json:"stage"`
	Reason string `json:"reason"`
}

type Result struct {
	PublicURL string         `json:"public_url"`
	Processed int            `json:"processed"`
	Failures  []StageFailure `json:"failures"`
}

func (r *Result) RecordFailure(item string, stage Stage, err error) {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	r.Failures = append(r.Failures, StageFailure{Item: item, Stage: stage, Reason: reason})
}

func (r *Result) State() PipelineState {
	if len(r.Failures) == 0 {
		return PipelineStateCompleted
	}
	return PipelineStatePartiallyFailed
}

// FailedStage reports whether item failed the given stage.
func (r *Result) FailedStage(item string, stage Stage) bool {
	for _, f := range r.Failures {
		if f.Item == item && f.Stage == stage {
			return true
		}
	}
	return false
}
