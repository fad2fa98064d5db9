package dto

// MemberResponse is the flattened view object returned for member reads.
type MemberResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"nama"`
	Photo      *string `json:"foto"`
	Division   *string `json:"divisi"`
	DivisionID *int64  `json:"divisi_id"`
	Position   string  `json:"posisi"`
	Contact    string  `json:"kontak"`
	Status     string  `json:"status"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusChangeData reports the applied transition.
type StatusChangeData struct {
	MemberID   int64  `json:"memberId"`
	MemberName string `json:"memberName"`
	OldStatus  string `json:"oldStatus"`
	NewStatus  string `json:"newStatus"`
}

// UpdateStatusResponse envelope.
type UpdateStatusResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    StatusChangeData `json:"data"`
}

// DeletedMemberData identifies the removed record.
type DeletedMemberData struct {
	ID   int64  `json:"id"`
	Name string `json:"nama"`
}

// DeleteMemberResponse envelope.
type DeleteMemberResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	DeletedMember DeletedMemberData `json:"deletedMember"`
}

// RegisterMemberRequest payload for creating a volunteer.
type RegisterMemberRequest struct {
	Name       string  `json:"nama"`
	Email      string  `json:"email"`
	Position   string  `json:"posisi"`
	Contact    string  `json:"kontak"`
	Photo      *string `json:"foto"`
	DivisionID *int64  `json:"divisi_id"`
	RoleID     *int64  `json:"role_id"`
}

// EmailResultData mirrors the mail dispatcher result.
type EmailResultData struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message"`
}

// RegisterMemberResponse envelope.
type RegisterMemberResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    MemberResponse  `json:"data"`
	Email   EmailResultData `json:"email"`
}

// DivisionResponse is the division lookup shape.
type DivisionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nama"`
}
