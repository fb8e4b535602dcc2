package commands

import (
	"context"
	"encoding/json"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/renter"
	"coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/notification"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/rules"
)

type BookingCommands interface {
	SubmitBooking(ctx context.Context, req request.CreateBookingRequest) error
}

type bookingCommandsImpl struct {
	uow         UnitOfWork
	bookingRepo BookingRepository
	renterRepo  RenterRepository
	enqueuer    notification.Enqueuer
	sink        audit.Sink
	clk         clock.Clock
	cfg         config.BookingConfig
}

func NewBookingCommands(
	uow UnitOfWork,
	bookingRepo BookingRepository,
	renterRepo RenterRepository,
	enqueuer notification.Enqueuer,
	sink audit.Sink,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		renterRepo:  renterRepo,
		enqueuer:    enqueuer,
		sink:        sink,
		clk:         clk,
		cfg:         cfg,
	}
}

// SubmitBooking validates a submission, applies the daily policy checks
// inside the date-locked transaction, upserts the renter by email and
// stores the booking. Notifications are enqueued only after commit.
func (u *bookingCommandsImpl) SubmitBooking(ctx context.Context, req request.CreateBookingRequest) error {
	sub := req.ToSubmission()

	today := booking.DateOf(u.clk.Now())
	if fields := booking.ValidateSubmission(sub, today); fields != nil {
		return &rules.ValidationError{Fields: fields}
	}

	// Validation passed, so these cannot fail.
	date, err := booking.NewDate(sub.Date)
	if err != nil {
		return errs.Wrap(err, "invalid booking date")
	}
	slot, err := booking.ParseInterval(sub.StartTime, sub.EndTime)
	if err != nil {
		return errs.Wrap(err, "invalid booking interval")
	}

	atThreshold := false
	err = u.uow.WithinDate(ctx, date.String(), func(tx infra.DBTX) error {
		existing, err := u.bookingRepo.ListSlotsByDate(ctx, tx, date)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if booking.ExceedsCapacity(len(existing), u.cfg.MaxBookingsPerDay) {
			return errs.ErrCapacityExceeded
		}
		atThreshold = booking.AtWarningThreshold(len(existing), u.cfg.EmailThreshold)

		if booking.ExceedsDuration(slot, u.cfg.MaxDurationMinutes) {
			return errs.ErrDurationExceeded
		}
		if booking.Overlaps(slot, existing) {
			return errs.ErrBookingOverlap
		}

		rec, err := u.upsertRenter(ctx, tx, sub)
		if err != nil {
			return err
		}

		b := booking.NewBooking(rec.ID(), date, slot, booking.Type(sub.Type))
		if err := u.bookingRepo.Insert(ctx, tx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.enqueueNotifications(ctx, sub, atThreshold)
	return nil
}

// upsertRenter treats a non-empty email as the renter's identity: the
// existing record's contact fields are overwritten with the submission's
// values. Without an email every submission creates a fresh record.
func (u *bookingCommandsImpl) upsertRenter(ctx context.Context, tx infra.DBTX, sub booking.Submission) (*renter.Renter, error) {
	contact := renter.Contact{
		Firstname: sub.Firstname,
		Lastname:  sub.Lastname,
		Email:     optional(sub.Email),
		Phone:     optional(sub.Phone),
		Address:   optional(sub.Address),
	}

	if sub.Email != "" {
		rec, err := u.renterRepo.FindByEmail(ctx, tx, sub.Email)
		switch {
		case err == nil:
			rec.OverwriteContact(contact)
			if err := u.renterRepo.Update(ctx, tx, rec); err != nil {
				return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return rec, nil
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	rec := renter.NewRenter(contact)
	if err := u.renterRepo.Insert(ctx, tx, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rec, nil
}

func (u *bookingCommandsImpl) enqueueNotifications(ctx context.Context, sub booking.Submission, atThreshold bool) {
	data := notification.BookingData{
		Date:      sub.Date,
		StartTime: sub.StartTime,
		EndTime:   sub.EndTime,
		Type:      sub.Type,
		Firstname: sub.Firstname,
		Lastname:  sub.Lastname,
		Phone:     sub.Phone,
		Email:     sub.Email,
		Address:   sub.Address,
	}

	pending := []notification.Notification{}
	if atThreshold {
		pending = append(pending, notification.Notification{
			Kind:      notification.KindApproachingLimit,
			To:        u.cfg.AdminEmail,
			Data:      data,
			Threshold: u.cfg.EmailThreshold,
			MaxPerDay: u.cfg.MaxBookingsPerDay,
		})
	}
	if sub.Email != "" {
		pending = append(pending, notification.Notification{
			Kind: notification.KindConfirmationToRenter,
			To:   sub.Email,
			Data: data,
		})
	}
	pending = append(pending, notification.Notification{
		Kind: notification.KindConfirmationToAdmin,
		To:   u.cfg.AdminEmail,
		Data: data,
	})

	for _, n := range pending {
		if err := u.enqueuer.Enqueue(ctx, n); err != nil {
			payload, _ := json.Marshal(map[string]string{
				"kind":  string(n.Kind),
				"to":    n.To,
				"error": err.Error(),
			})
			u.sink.Record(ctx, audit.CategoryJobs, "EnqueueNotification", string(payload))
		}
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
