package model

// Scope identifies the caller of a request. UserID doubles as the workspace
// and history owner.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	RoleGuest  = "GUEST"
	RoleLocal  = "LOCAL"
	RoleSystem = "SYSTEM"
)
