package repository

import (
	"context"
	"errors"
	"time"

	"coworking-booking/internal/domain/renter"
	"coworking-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RenterRepository runs entirely inside the caller's transaction, so its
// methods take the tx instead of holding a connection.
type RenterRepository struct{}

func NewRenterRepository() *RenterRepository {
	return &RenterRepository{}
}

func (r *RenterRepository) FindByEmail(ctx context.Context, tx infra.DBTX, email string) (*renter.Renter, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, firstname, lastname, email, phone, address, created_at, updated_at
		FROM renters
		WHERE email = $1 AND deleted_at IS NULL
	`, email)

	rec, err := scanRenter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("renter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find renter by email", err)
	}
	return rec, nil
}

func (r *RenterRepository) Insert(ctx context.Context, tx infra.DBTX, rec *renter.Renter) error {
	c := rec.Contact()
	_, err := tx.Exec(ctx, `
		INSERT INTO renters (id, firstname, lastname, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`, rec.ID(), c.Firstname, c.Lastname, c.Email, c.Phone, c.Address)
	if err != nil {
		return infra.WrapRepoErr("failed to insert renter", err)
	}
	return nil
}

// Update overwrites every contact field of an existing record.
func (r *RenterRepository) Update(ctx context.Context, tx infra.DBTX, rec *renter.Renter) error {
	c := rec.Contact()
	tag, err := tx.Exec(ctx, `
		UPDATE renters
		SET firstname = $2, lastname = $3, email = $4, phone = $5, address = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`, rec.ID(), c.Firstname, c.Lastname, c.Email, c.Phone, c.Address)
	if err != nil {
		return infra.WrapRepoErr("failed to update renter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("renter not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRenter(row pgx.Row) (*renter.Renter, error) {
	var (
		id                   uuid.UUID
		contact              renter.Contact
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &contact.Firstname, &contact.Lastname, &contact.Email, &contact.Phone, &contact.Address, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return renter.ReconstructRenter(id, contact, createdAt, updatedAt), nil
}
