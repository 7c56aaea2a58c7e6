package dto

// LoginRequest entrada para login por nombre de usuario.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// SessionUser datos del usuario autenticado devueltos al cliente de caja.
type SessionUser struct {
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	BranchCode string `json:"branchCode,omitempty"`
	BranchName string `json:"branchName,omitempty"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}
