package dto

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	BranchID   int64  `json:"branch_id"`
	BranchCode string `json:"branch_code"`
	BranchName string `json:"branch_name"`
}
