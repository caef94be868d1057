package a2a

import "testing"

func TestTaskLifecycleHappyPath(t *testing.T) {
	task := NewTask("task-1", "ctx-1")
	if task.Status.State != TaskSubmitted {
		t.Fatalf("initial state = %v, want Submitted", task.Status.State)
	}
	if task.IsComplete() {
		t.Fatal("freshly submitted task reports complete")
	}

	if err := task.SetStatus(TaskWorking, nil); err != nil {
		t.Fatalf("SetStatus(Working): %v", err)
	}
	if err := task.SetStatus(TaskCompleted, nil); err != nil {
		t.Fatalf("SetStatus(Completed): %v", err)
	}
	if !task.IsComplete() {
		t.Fatal("task should report complete after Completed transition")
	}
}

func TestTaskRejectsTransitionOutOfTerminalState(t *testing.T) {
	task := NewTask("task-1", "ctx-1")
	if err := task.SetStatus(TaskCompleted, nil); err != nil {
		t.Fatalf("SetStatus(Completed): %v", err)
	}
	if err := task.SetStatus(TaskWorking, nil); err != ErrTerminalTransition {
		t.Fatalf("SetStatus after terminal = %v, want ErrTerminalTransition", err)
	}
}

func TestTaskInputRequiredRoundTrip(t *testing.T) {
	task := NewTask("task-1", "ctx-1")
	if err := task.SetStatus(TaskWorking, nil); err != nil {
		t.Fatal(err)
	}
	if err := task.SetStatus(TaskInputRequired, nil); err != nil {
		t.Fatal(err)
	}
	if !task.NeedsInput() {
		t.Fatal("NeedsInput() should be true in InputRequired state")
	}
	if err := task.SetStatus(TaskWorking, nil); err != nil {
		t.Fatalf("should be able to resume working after input: %v", err)
	}
	if task.NeedsInput() {
		t.Fatal("NeedsInput() should be false after resuming Working")
	}
}

func TestAddArtifactAfterTerminalIsFlaggedNotRejected(t *testing.T) {
	task := NewTask("task-1", "ctx-1")
	if err := task.SetStatus(TaskCompleted, nil); err != nil {
		t.Fatal(err)
	}
	late := task.AddArtifact(NewArtifact("late-result", Text("oops")))
	if !late {
		t.Error("AddArtifact after Completed should report late=true")
	}
	if len(task.Artifacts) != 1 {
		t.Fatalf("Artifacts len = %d, want 1", len(task.Artifacts))
	}
}

func TestAllTerminalStatesRejectFurtherTransitions(t *testing.T) {
	for _, terminal := range []TaskState{TaskCompleted, TaskFailed, TaskCanceled} {
		task := NewTask("t", "c")
		if err := task.SetStatus(terminal, nil); err != nil {
			t.Fatalf("SetStatus(%v): %v", terminal, err)
		}
		if err := task.SetStatus(TaskWorking, nil); err != ErrTerminalTransition {
			t.Errorf("SetStatus(Working) after %v = %v, want ErrTerminalTransition", terminal, err)
		}
	}
}
