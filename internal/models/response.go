package models

// APIResponse is the envelope every /api endpoint returns. Domain failures
// travel in Error with Success false; transport status stays 200 so the
// frontend can treat the body uniformly.
type APIResponse struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
	Data    any     `json:"data"`
}

// OK wraps a successful payload.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail wraps a user-visible failure message.
func Fail(msg string) APIResponse {
	return APIResponse{Success: false, Error: &msg}
}
