package entity

// Account represents a staff or lecturer account stored in the system.
// The admin identity is configured out-of-band and never appears as a row,
// so Role here is always RoleStaff or RoleLecturer for persisted accounts.
type Account struct {
	ID           int64
	Name         string
	Email        string
	Role         Role
	PasswordHash string
}
