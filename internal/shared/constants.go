package shared

// Common Response Messages
const (
	MessageSuccess       = "Success"
	MessageDeleted       = "Deleted successfully"
	MessageNotFound      = "Resource not found"
	MessageBadRequest    = "Bad request"
	MessageInternalError = "Internal server error"
)

// Pagination Defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1
)
