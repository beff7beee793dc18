package transport

// TokenResponse is the login payload.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse confirms an operation that returns no row.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the error text for any failed request. The message
// goes out verbatim; existing clients read it.
type ErrorResponse struct {
	Error string `json:"error"`
}
