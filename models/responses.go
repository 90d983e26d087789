package models

// MessageResponse is the minimal JSON envelope returned by most endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request. Error is filled only
// for client errors; server-side failures expose a generic message.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SignInResponse is returned by a successful registration.
type SignInResponse struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// MeResponse wraps the authenticated user.
type MeResponse struct {
	Me User `json:"me"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UsersResponse wraps a list of users. Users is never null in JSON.
type UsersResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}
