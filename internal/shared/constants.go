package shared

// Common Response Messages
const (
	MessageSuccess         = "Success"
	MessageCreated         = "Created successfully"
	MessageUpdated         = "Updated successfully"
	MessageDeleted         = "Deleted successfully"
	MessageNotFound        = "Resource not found"
	MessageValidationError = "Validation error"
	MessageInternalError   = "Internal server error"
)

// Pagination Defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1
)
