package tracing

// A TaskStep represents a milestone in the processing of task
type TaskStep struct {
	Time float64 `json:"time"`
	What string  `json:"what"`
}

// A Task is one traced span of work inside an integration run, such as
// a walker thermalizing or an accumulator waiting to be claimed. Times
// are wall-clock seconds since the run started.
type Task struct {
	ID        string      `json:"id"`
	ParentID  string      `json:"parent_id"`
	Kind      string      `json:"kind"`
	What      string      `json:"what"`
	Where     string      `json:"where"`
	StartTime float64     `json:"start_time"`
	EndTime   float64     `json:"end_time"`
	Steps     []TaskStep  `json:"steps"`
	Detail    interface{} `json:"-"`
}

// TaskFilter is a function that can filter interesting tasks. If this function
// returns true, the task is considered useful.
type TaskFilter func(t Task) bool
