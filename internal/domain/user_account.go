package domain

// UserAccount is the optional login credential record linked to a member.
type UserAccount struct {
	ID           int64
	Email        string
	PasswordHash string
	RoleID       *int64
	RoleName     *string
}

// Role classifies a user account ("Admin", "Volunteer", ...).
type Role struct {
	ID   int64
	Name string
}
