package entity

// Identity is the authenticated caller extracted from a verified token.
// The out-of-band administrator carries AccountID 0 and RoleAdmin.
type Identity struct {
	AccountID int64
	Email     string
	Name      string
	Role      Role
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i *Identity) IsStaff() bool {
	return i.Role == RoleStaff
}
