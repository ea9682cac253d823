package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse token emitido após autenticação.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
