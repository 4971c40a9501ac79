package response

// Resp is the JSON body of every response. Successful responses carry
// success and data; failures carry error and optionally details.
type Resp struct {
	Success bool   `json:"success,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
