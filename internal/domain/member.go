package domain

// MemberStatus enumerates the two lifecycle states of a volunteer record.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// Valid reports whether the status is one of the two allowed literals.
// Case variants such as "active" are not accepted.
func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive
}

// Member models a stored volunteer row.
type Member struct {
	ID         int64
	Name       string
	Photo      *string
	DivisionID *int64
	Position   string
	Contact    string
	Status     MemberStatus
	UserID     *int64
}

// MemberView is the flattened, joined representation returned to callers,
// distinct from the underlying stored rows. Members without a linked user
// account carry nil Email and Role.
type MemberView struct {
	ID         int64
	Name       string
	Photo      *string
	Division   *string
	DivisionID *int64
	Position   string
	Contact    string
	Status     MemberStatus
	Email      *string
	Role       *string
}

// MemberStatusChange reports the result of a status transition.
type MemberStatusChange struct {
	MemberID   int64
	MemberName string
	OldStatus  MemberStatus
	NewStatus  MemberStatus
}

// DeletedMember identifies a removed volunteer record.
type DeletedMember struct {
	ID   int64
	Name string
}
