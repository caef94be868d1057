package a2a

import (
	"errors"
	"time"
)

// TaskState is the lifecycle state of a Task.
type TaskState string

const (
	TaskSubmitted     TaskState = "submitted"
	TaskWorking       TaskState = "working"
	TaskInputRequired TaskState = "input-required"
	TaskCompleted     TaskState = "completed"
	TaskFailed        TaskState = "failed"
	TaskCanceled      TaskState = "canceled"
)

// IsTerminal reports whether s is one of the three terminal states.
func (s TaskState) IsTerminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskCanceled:
		return true
	default:
		return false
	}
}

// ErrTerminalTransition is returned by SetStatus when the task is already
// in a terminal state; transitions out of a terminal state are rejected.
var ErrTerminalTransition = errors.New("a2a: task already in a terminal state")

// TaskStatus snapshots a task's state at a point in time.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
}

// Task is a unit of work tracked across its submitted/working/terminal
// lifecycle. Tasks are mutated only by their creator, via SetStatus and
// AddArtifact.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	History   []Message  `json:"history,omitempty"`
}

// NewTask creates a task in the Submitted state.
func NewTask(id, contextID string) *Task {
	return &Task{
		ID:        id,
		ContextID: contextID,
		Status: TaskStatus{
			State:     TaskSubmitted,
			Timestamp: timestamp(),
		},
	}
}

// SetStatus transitions the task to state, stamping the transition time.
// It returns ErrTerminalTransition if the task is already terminal;
// terminal states are final.
func (t *Task) SetStatus(state TaskState, msg *Message) error {
	if t.Status.State.IsTerminal() {
		return ErrTerminalTransition
	}
	t.Status = TaskStatus{
		State:     state,
		Message:   msg,
		Timestamp: timestamp(),
	}
	return nil
}

// AddArtifact appends an artifact to the task's output. Late, the boolean
// return, is true if the task was already terminal when the artifact
// arrived; callers should flag late artifacts rather than silently
// accepting them, but adding is never rejected outright since results can
// legitimately arrive after a task is marked complete.
func (t *Task) AddArtifact(a Artifact) (late bool) {
	late = t.Status.State.IsTerminal()
	t.Artifacts = append(t.Artifacts, a)
	return late
}

// IsComplete reports whether the task is in any terminal state.
func (t *Task) IsComplete() bool {
	return t.Status.State.IsTerminal()
}

// NeedsInput reports whether the task is waiting on additional input.
func (t *Task) NeedsInput() bool {
	return t.Status.State == TaskInputRequired
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
