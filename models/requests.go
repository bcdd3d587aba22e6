package models

// RegisterUserRequest is the payload of the register_user RPC.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// NewRegisterUserRequest builds the register_user payload for u.
func NewRegisterUserRequest(u NewUser) RegisterUserRequest {
	return RegisterUserRequest{
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
	}
}

// AddLocationRequest is the payload of the add_location RPC.
type AddLocationRequest struct {
	UserID    int64   `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ErrorResponse is the error body returned by the data API. Only the message
// is consumed.
type ErrorResponse struct {
	Message any    `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
	Hint    any    `json:"hint,omitempty"`
}
