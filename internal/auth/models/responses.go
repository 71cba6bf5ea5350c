package models

// RegisterResult is returned on successful registration. The password hash is
// deliberately absent; only id and email leave the service.
type RegisterResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResult carries the issued bearer token.
type LoginResult struct {
	Token string `json:"token"`
}
