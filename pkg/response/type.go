package response

// Resp is the JSON envelope of every non-streaming answer. Message is
// already translated into the request locale.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
