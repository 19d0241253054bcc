package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tags a contact submission for the admin inbox. No exposed
// operation transitions the status; it is reserved for future back-office
// tooling.
type ContactStatus string

const (
	// ContactStatusNew marks an unread submission.
	ContactStatusNew ContactStatus = "new"
	// ContactStatusRead marks a submission that has been looked at.
	ContactStatusRead ContactStatus = "read"
	// ContactStatusReplied marks a submission answered by the store.
	ContactStatusReplied ContactStatus = "replied"
)

// ContactMessage is a message captured from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}
