package response

// Resp is the standard JSON envelope used by system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorBody is the bare error payload of the ask contract: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}
