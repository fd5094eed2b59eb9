package model

import "strings"

// Column limits of the contacts table. Validation uses the same bounds.
const (
	NameMaxLen  = 100
	EmailMaxLen = 100
	PhoneMaxLen = 15
	NoteMaxLen  = 200
)

// Contact is a person's name, email, phone and note.
type Contact struct {
	ID       uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	Email    string  `json:"email" gorm:"size:100;not null"`
	EmailKey string  `json:"-" gorm:"size:100;not null;uniqueIndex:idx_contacts_email_key"`
	Phone    string  `json:"phone" gorm:"size:15;not null;default:''"`
	Note     *string `json:"note" gorm:"size:200"`
}

// TableName pins the table name regardless of naming strategy.
func (Contact) TableName() string {
	return "contacts"
}

// NormalizeEmail returns the key email uniqueness is enforced on.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
