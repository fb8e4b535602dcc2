// Package renter holds the contact record of the person booking a slot.
// A non-empty email is the renter's natural identity: at most one record
// exists per email, and later submissions overwrite its contact fields.
package renter

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Firstname string
	Lastname  string
	Email     *string
	Phone     *string
	Address   *string
}

type Renter struct {
	id        uuid.UUID
	contact   Contact
	createdAt time.Time
	updatedAt time.Time
}

func NewRenter(contact Contact) *Renter {
	return &Renter{
		id:      uuid.New(),
		contact: normalize(contact),
	}
}

func ReconstructRenter(id uuid.UUID, contact Contact, createdAt, updatedAt time.Time) *Renter {
	return &Renter{
		id:        id,
		contact:   normalize(contact),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// OverwriteContact replaces every contact field with the latest submission's
// values, empty optionals included.
func (r *Renter) OverwriteContact(contact Contact) {
	r.contact = normalize(contact)
}

func (r *Renter) ID() uuid.UUID        { return r.id }
func (r *Renter) Contact() Contact     { return r.contact }
func (r *Renter) CreatedAt() time.Time { return r.createdAt }
func (r *Renter) UpdatedAt() time.Time { return r.updatedAt }

func (r *Renter) Email() *string {
	return r.contact.Email
}

func normalize(c Contact) Contact {
	c.Email = emptyToNil(c.Email)
	c.Phone = emptyToNil(c.Phone)
	c.Address = emptyToNil(c.Address)
	return c
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
