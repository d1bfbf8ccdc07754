package model

// FieldError is one entry of the uniform error envelope. Param and
// Location are only set for request-validation failures, mirroring the
// shape clients already consume.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Errors: []FieldError{{Msg: msg}}}
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}
