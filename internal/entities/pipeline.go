package entities

import "fmt"

// PipelineStage is a step of the business development pipeline.
type PipelineStage string

const (
	StageLead        PipelineStage = "lead"
	StageQualified   PipelineStage = "qualified"
	StageProposal    PipelineStage = "proposal"
	StageNegotiation PipelineStage = "negotiation"
	StageContract    PipelineStage = "contract"
	StageExecution   PipelineStage = "execution"
	StageCompleted   PipelineStage = "completed"
)

var pipeline = []PipelineStage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageContract,
	StageExecution,
	StageCompleted,
}

// PipelineStages returns the stages in pipeline order.
func PipelineStages() []PipelineStage {
	return append([]PipelineStage(nil), pipeline...)
}

// Index returns the position of s in the pipeline, or -1 if s is unknown.
func (s PipelineStage) Index() int {
	for i, st := range pipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known stage.
func (s PipelineStage) Valid() bool {
	return s.Index() >= 0
}

// Next returns the stage following s.
func (s PipelineStage) Next() (PipelineStage, bool) {
	idx := s.Index()
	if idx < 0 || idx+1 >= len(pipeline) {
		return "", false
	}
	return pipeline[idx+1], true
}

// CanMoveTo checks a stage transition. A project advances one stage at a time
// and may go back any number of stages.
func (s PipelineStage) CanMoveTo(target PipelineStage) error {
	to := target.Index()
	if to < 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidArgument, target)
	}
	from := s.Index()
	if from < 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidArgument, s)
	}
	if to > from+1 {
		return fmt.Errorf("%w: %s -> %s", ErrStageSkip, s, target)
	}
	return nil
}
