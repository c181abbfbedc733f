package types

// ErrorItem is a single field-level error message on the wire.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Value string `json:"value,omitempty"`
}

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   []ErrorItem `json:"error"`
}

// NewErrorResponse wraps one or more error items in the standard envelope.
func NewErrorResponse(items ...ErrorItem) ErrorResponse {
	return ErrorResponse{Success: false, Error: items}
}
