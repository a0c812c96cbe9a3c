package tracing

import (
	"sync"

	"github.com/tebeka/atexit"

	"github.com/qmclab/dcago/datarecording"
)

// Location mirrors Task.Where; "Where" itself is an SQL keyword.
type taskTableEntry struct {
	ID        string
	ParentID  string
	Kind      string
	What      string
	Location  string
	StartTime float64
	EndTime   float64
}

// DBTracer is a tracer that stores completed tasks into a database
// through a DataRecorder backend. Tasks that never end are dropped.
type DBTracer struct {
	mu         sync.Mutex
	timeTeller TimeTeller
	backend    datarecording.DataRecorder

	startTime, endTime float64

	tracingTasks map[string]Task
}

// NewDBTracer creates a new DBTracer.
func NewDBTracer(
	timeTeller TimeTeller,
	dataRecorder datarecording.DataRecorder,
) *DBTracer {
	dataRecorder.CreateTable("trace", taskTableEntry{})

	t := &DBTracer{
		timeTeller:   timeTeller,
		backend:      dataRecorder,
		tracingTasks: make(map[string]Task),
	}

	atexit.Register(func() {
		t.Terminate()
	})

	return t
}

// SetTimeRange restricts recording to tasks overlapping the range.
func (t *DBTracer) SetTimeRange(startTime, endTime float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startTime = startTime
	t.endTime = endTime
}

// StartTask marks the start of a task.
func (t *DBTracer) StartTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startingTaskMustBeValid(task)

	task.StartTime = t.timeTeller.CurrentTime()
	if t.endTime > 0 && task.StartTime > t.endTime {
		return
	}

	t.tracingTasks[task.ID] = task
}

func (t *DBTracer) startingTaskMustBeValid(task Task) {
	if task.ID == "" {
		panic("task ID must be set")
	}

	if task.Kind == "" {
		panic("task kind must be set")
	}

	if task.What == "" {
		panic("task what must be set")
	}

	if task.Where == "" {
		panic("task where must be set")
	}
}

// StepTask marks a step of a task.
func (t *DBTracer) StepTask(_ Task) {
	// Do nothing for now.
}

// EndTask marks the end of a task and writes it out.
func (t *DBTracer) EndTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task.EndTime = t.timeTeller.CurrentTime()

	if t.startTime > 0 && task.EndTime < t.startTime {
		delete(t.tracingTasks, task.ID)
		return
	}

	originalTask, ok := t.tracingTasks[task.ID]
	if !ok {
		return
	}

	originalTask.EndTime = task.EndTime
	t.writeTaskToDB(originalTask)

	delete(t.tracingTasks, task.ID)
}

// Terminate drops unfinished tasks and flushes the backend.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tracingTasks = nil
	t.backend.Flush()
}

func (t *DBTracer) writeTaskToDB(task Task) {
	entry := taskTableEntry{
		ID:        task.ID,
		ParentID:  task.ParentID,
		Kind:      task.Kind,
		What:      task.What,
		Location:  task.Where,
		StartTime: task.StartTime,
		EndTime:   task.EndTime,
	}

	t.backend.InsertData("trace", entry)
}
