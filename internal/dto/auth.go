package dto

// TokenResponse carries the bearer token returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}
