package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	renterID  uuid.UUID
	date      Date
	slot      Interval
	kind      Type
	createdAt time.Time
}

func NewBooking(renterID uuid.UUID, date Date, slot Interval, kind Type) *Booking {
	return &Booking{
		id:       uuid.New(),
		renterID: renterID,
		date:     date,
		slot:     slot,
		kind:     kind,
	}
}

func ReconstructBooking(id, renterID uuid.UUID, date Date, slot Interval, kind Type, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		renterID:  renterID,
		date:      date,
		slot:      slot,
		kind:      kind,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Slot() Interval       { return b.slot }
func (b *Booking) Kind() Type           { return b.kind }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
