//go:build unit

package renter_test

import (
	"testing"

	"coworking-booking/internal/domain/renter"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestNewRenterNormalizesContact(t *testing.T) {
	rec := renter.NewRenter(renter.Contact{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     ptr(""),
		Phone:     ptr("0123456789"),
	})

	assert.NotEqual(t, uuid.Nil, rec.ID())
	want := renter.Contact{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Phone:     ptr("0123456789"),
	}
	if diff := cmp.Diff(want, rec.Contact()); diff != "" {
		t.Errorf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestOverwriteContactReplacesEverything(t *testing.T) {
	rec := renter.NewRenter(renter.Contact{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     ptr("ada@example.com"),
		Phone:     ptr("0123456789"),
		Address:   ptr("Via Roma 1"),
	})
	id := rec.ID()

	rec.OverwriteContact(renter.Contact{
		Firstname: "Ada",
		Lastname:  "Byron",
		Email:     ptr("ada@example.com"),
		// Phone and Address dropped by the newer submission.
	})

	assert.Equal(t, id, rec.ID(), "identity survives contact overwrites")
	want := renter.Contact{
		Firstname: "Ada",
		Lastname:  "Byron",
		Email:     ptr("ada@example.com"),
	}
	if diff := cmp.Diff(want, rec.Contact()); diff != "" {
		t.Errorf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestEmailAccessor(t *testing.T) {
	withEmail := renter.NewRenter(renter.Contact{Firstname: "A", Lastname: "B", Email: ptr("a@b.c")})
	assert.Equal(t, "a@b.c", *withEmail.Email())

	without := renter.NewRenter(renter.Contact{Firstname: "A", Lastname: "B"})
	assert.Nil(t, without.Email())
}
