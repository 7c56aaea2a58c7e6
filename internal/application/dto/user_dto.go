package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,oneof='Admin Pusat' 'Admin Cabang'"`
	BranchID *int64 `json:"branch_id" validate:"omitempty,gt=0"`
}

// UpdateUserRequest entrada para PUT /api/users/:userId.
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,oneof='Admin Pusat' 'Admin Cabang'"`
	BranchID *int64 `json:"branch_id" validate:"omitempty,gt=0"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	BranchID   *int64 `json:"branch_id"`
	BranchName string `json:"branch_name,omitempty"`
}

// CreateUserResponse confirma el alta con el ID asignado.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
