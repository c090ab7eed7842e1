package model

import "time"

// ContactEntity represents the contacts table entity. JSON tags are
// camelCase to match the public API shape consumed by the frontend.
type ContactEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ContactFilter for querying contacts. ExcludeID limits duplicate-pair
// lookups to rows other than the contact being updated.
type ContactFilter struct {
	ID        uint64
	Email     string
	Phone     string
	ExcludeID uint64
}

// ContactRequest is the create/update payload. Email and phone carry
// custom validations; message is accepted as-is.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email_format"`
	Phone   string `json:"phone" validate:"required,phone_digits"`
	Message string `json:"message"`
}

// DeleteContactResponse confirms a removal.
type DeleteContactResponse struct {
	Message string `json:"message"`
}
