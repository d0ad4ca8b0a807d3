package motion

import "sync/atomic"

// Task is a cancellable repeating frame task. The host calls Tick once per frame; a
// stopped task ignores ticks until started again.
type Task struct {
	name    string
	step    func()
	running atomic.Bool
	frames  atomic.Uint64
}

// NewTask returns a stopped task that runs step on every tick once started.
func NewTask(name string, step func()) *Task {
	return &Task{name: name, step: step}
}

// Name returns the task's label.
func (t *Task) Name() string { return t.name }

// Start makes subsequent ticks run the step.
func (t *Task) Start() { t.running.Store(true) }

// Stop releases the task; ticks become no-ops. Safe to call from any goroutine.
func (t *Task) Stop() { t.running.Store(false) }

// Running reports whether the task is started.
func (t *Task) Running() bool { return t.running.Load() }

// Frames returns how many ticks ran the step.
func (t *Task) Frames() uint64 { return t.frames.Load() }

// Tick runs the step if the task is running and reports whether it ran.
func (t *Task) Tick() bool {
	if !t.running.Load() {
		return false
	}
	if t.step != nil {
		t.step()
	}
	t.frames.Add(1)
	return true
}
