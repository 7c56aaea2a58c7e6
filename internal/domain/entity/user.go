package entity

// Roles válidos para User.
const (
	RoleHeadOffice  = "Admin Pusat"
	RoleBranchAdmin = "Admin Cabang"
)

// User representa un operador del sistema. Los Admin Cabang pertenecen a una sucursal.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	FullName     string
	Role         string
	BranchID     *int64
	BranchCode   string // solo lectura (join)
	BranchName   string // solo lectura (join)
}
