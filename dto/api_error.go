package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code"`
}

type ErrorCode string

const (
	// queue related
	InvalidPriority   ErrorCode = "invalid_priority"
	UnknownQueueEntry ErrorCode = "unknown_queue_entry"
	InvalidStatus     ErrorCode = "invalid_status"
	EntryNotResumable ErrorCode = "entry_not_resumable"

	// general
	UnknownError ErrorCode = "unknown_error"
)
