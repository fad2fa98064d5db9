package domain

// Division represents an organizational unit a member belongs to.
type Division struct {
	ID   int64
	Name string
}
