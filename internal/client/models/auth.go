package models

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the registration form. ConfirmPassword never leaves the
// client.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"fullName" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token" validate:"required"`
}

// UploadRequest is the body sent to the upload endpoint.
type UploadRequest struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename"`
}
