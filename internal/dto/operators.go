package dto

// CreateOperatorRequest is used by administrators to create dashboard operators.
type CreateOperatorRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// OperatorResponse represents operator data returned to clients.
type OperatorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
