package game

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Task is a cancellable scheduled callback. Its timer runs inside a tea.Cmd
// and reports back as a firedMsg; a cancelled task's goroutine exits without
// producing a message.
type Task struct {
	name      string
	done      chan struct{}
	closeOnce sync.Once
}

func newTask(name string) *Task {
	return &Task{name: name, done: make(chan struct{})}
}

// Name identifies the task in logs.
func (t *Task) Name() string { return t.name }

// Cancel stops the task. It is safe to call on a nil task and more than once.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.closeOnce.Do(func() { close(t.done) })
}

// Cancelled reports whether Cancel was called.
func (t *Task) Cancelled() bool {
	if t == nil {
		return true
	}
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// after returns a command that fires the task once d has elapsed.
func (t *Task) after(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return firedMsg{task: t}
		case <-t.done:
			return nil
		}
	}
}

// firedMsg reports that a task's delay elapsed.
type firedMsg struct {
	task *Task
}
