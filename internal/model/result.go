package model

import "fmt"

// Result statuses returned by host API calls.
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusError   = "error"
)

// Result is the envelope every host API call returns. Data is set only on
// successful calls that replace the in-memory project (import, load).
type Result struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    *Project `json:"data,omitempty"`
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Success builds a success result with an informational message.
func Success(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

// SuccessData builds a success result carrying replacement project data.
func SuccessData(data *Project, message string) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// Info builds an informational result, e.g. for a cancelled dialog.
func Info(message string) Result {
	return Result{Status: StatusInfo, Message: message}
}

// Errorf builds an error result from a format string.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}
