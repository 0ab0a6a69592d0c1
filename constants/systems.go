package constants

// System execution priorities (lower runs first within a schedule)
const (
	// Update schedule
	PriorityInput  = 10
	PriorityMotion = 20

	// Fixed schedule
	PrioritySnake = 10

	// PostUpdate schedule
	PriorityScale       = 10
	PriorityTranslation = 20
)
