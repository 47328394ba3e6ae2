package domain

// Session holds the admin bearer token. The front end never decodes it.
type Session struct {
	Token string
}

// Authenticated reports whether a token is present. Validity is the backend's call.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the token on success or the message on failure
type LoginResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}
