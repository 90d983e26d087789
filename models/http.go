package models

// SignInRequest is the body of POST /api/signin.
type SignInRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the optional parts of a profile update.
// A nil field is left untouched; a non-nil Bio pointing to an empty string
// clears the bio.
type ProfileUpdate struct {
	Bio   *string
	Media *MediaFile
}
