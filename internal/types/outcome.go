package types

import "context"

// Status tags an operation outcome
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalidInput
	StatusFailed
)

// String returns the metric label for the status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User-facing console messages
const (
	MessageInvalidInput = "Invalid input"
	MessageFailed       = "Operation failed"
)

// Pending is the handle of a streaming operation that is still running
type Pending interface {
	ID() string
	Wait(ctx context.Context) error
}

// Outcome is the result of dispatching one command.
// Cause is kept for logging and is never shown to the user.
type Outcome struct {
	Status  Status
	Message string
	Cause   error
	Task    Pending
}

// Success builds a successful outcome with an optional message
func Success(message string) Outcome {
	return Outcome{Status: StatusSuccess, Message: message}
}

// Launched builds a successful outcome for a streaming operation
func Launched(task Pending) Outcome {
	return Outcome{Status: StatusSuccess, Task: task}
}

// InvalidInput builds an outcome for a rejected command
func InvalidInput(reason string) Outcome {
	return Outcome{Status: StatusInvalidInput, Message: reason}
}

// Failed builds an outcome for a failed operation
func Failed(cause error) Outcome {
	return Outcome{Status: StatusFailed, Cause: cause}
}

// Display returns the text printed to the console for this outcome
func (o Outcome) Display() string {
	switch o.Status {
	case StatusInvalidInput:
		return MessageInvalidInput
	case StatusFailed:
		return MessageFailed
	default:
		return o.Message
	}
}
