package queries

import (
	"time"

	"coworking-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserViewOf(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
	}
}
