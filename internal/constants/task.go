package constants

type TaskStatus = string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority = string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Defaults applied when a create payload omits the field. Storage accepts any string.
const (
	DefaultTaskStatus   = StatusTodo
	DefaultTaskPriority = PriorityMedium
	DefaultProjectColor = "#6366f1"
)

const (
	ProjectNameMaxLength = 100
	TaskTitleMaxLength   = 200
)
