package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineStageCanMoveTo(t *testing.T) {
	tests := []struct {
		name    string
		from    PipelineStage
		to      PipelineStage
		wantErr error
	}{
		{name: "same stage", from: StageProposal, to: StageProposal},
		{name: "one step forward", from: StageLead, to: StageQualified},
		{name: "into completed", from: StageExecution, to: StageCompleted},
		{name: "skip ahead", from: StageLead, to: StageProposal, wantErr: ErrStageSkip},
		{name: "jump to the end", from: StageQualified, to: StageCompleted, wantErr: ErrStageSkip},
		{name: "back one", from: StageContract, to: StageNegotiation},
		{name: "back to start", from: StageCompleted, to: StageLead},
		{name: "unknown target", from: StageLead, to: "won", wantErr: ErrInvalidArgument},
		{name: "unknown source", from: "won", to: StageLead, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CanMoveTo(tt.to)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPipelineStageOrder(t *testing.T) {
	stages := PipelineStages()
	require.Len(t, stages, 7)
	require.Equal(t, StageLead, stages[0])
	require.Equal(t, StageCompleted, stages[len(stages)-1])

	for i, s := range stages {
		require.Equal(t, i, s.Index())
		require.True(t, s.Valid())
	}

	next, ok := StageNegotiation.Next()
	require.True(t, ok)
	require.Equal(t, StageContract, next)

	_, ok = StageCompleted.Next()
	require.False(t, ok)

	stages[0] = "mutated"
	require.Equal(t, StageLead, PipelineStages()[0])
}
