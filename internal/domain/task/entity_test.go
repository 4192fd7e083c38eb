package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Advances(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusCompleted, true},
		{StatusCompleted, StatusInProgress, false},
		{StatusInProgress, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusPending, "Done", false},
		{"", StatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Advances(tt.to))
		})
	}
}

func TestTaskRequest_Validate(t *testing.T) {
	req := TaskRequest{TaskName: "  Pour slab ", WorkerID: 5, ProjectID: 2}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Pour slab", req.TaskName)
	assert.Equal(t, StatusPending, req.Status)

	out := req.ToTask()
	assert.Equal(t, int64(5), out.Worker.ID)
	assert.Equal(t, int64(2), out.Project.ID)

	bad := TaskRequest{Status: "Done"}
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "taskName: is required")
	assert.Contains(t, err.Error(), "workerId: is required")
	assert.Contains(t, err.Error(), "status: must be one of")
}
