package commands

import (
	"context"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/tokendeny"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/jwt"
	"coworking-booking/internal/pkg/password"
	"coworking-booking/internal/pkg/rules"
	"coworking-booking/internal/usecase/queries"
)

type AuthResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Login(ctx context.Context, req request.LoginRequest) (*AuthResult, error)
	Register(ctx context.Context, req request.RegisterRequest) (*AuthResult, error)
	// Refresh revokes the presented token and issues a new one. It accepts
	// expired tokens within the refresh window.
	Refresh(ctx context.Context, tokenString string) (*AuthResult, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// TokenValidator is the auth middleware's view of token checking: signature,
// expiry and the logout denylist.
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authCommandsImpl struct {
	users    UserRepository
	tokens   *jwt.Service
	denylist tokendeny.Denylist
}

func NewAuthCommands(users UserRepository, tokens *jwt.Service, denylist tokendeny.Denylist) interface {
	AuthCommands
	TokenValidator
} {
	return &authCommandsImpl{users: users, tokens: tokens, denylist: denylist}
}

func (u *authCommandsImpl) Login(ctx context.Context, req request.LoginRequest) (*AuthResult, error) {
	fields := rules.Collect(
		rules.Field{Name: "email", Value: req.Email, Rules: []rules.Rule{
			rules.Required("The email field is required."),
			rules.Email("The email must be a valid email address."),
		}},
		rules.Field{Name: "password", Value: req.Password, Rules: []rules.Rule{
			rules.Required("The password field is required."),
		}},
	)
	if fields != nil {
		return nil, &rules.ValidationError{Fields: fields}
	}

	rec, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := password.ComparePassword(rec.PasswordHash(), req.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return u.issue(rec)
}

func (u *authCommandsImpl) Register(ctx context.Context, req request.RegisterRequest) (*AuthResult, error) {
	fields := rules.Collect(
		rules.Field{Name: "name", Value: req.Name, Rules: []rules.Rule{
			rules.Required("The name field is required."),
			rules.MaxLen(255, "The name may not be greater than 255 characters."),
		}},
		rules.Field{Name: "email", Value: req.Email, Rules: []rules.Rule{
			rules.Required("The email field is required."),
			rules.Email("The email must be a valid email address."),
			rules.MaxLen(255, "The email may not be greater than 255 characters."),
		}},
		rules.Field{Name: "password", Value: req.Password, Rules: []rules.Rule{
			rules.Required("The password field is required."),
			rules.MinLen(6, "The password must be at least 6 characters."),
		}},
	)
	if fields != nil {
		return nil, &rules.ValidationError{Fields: fields}
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, &rules.ValidationError{Fields: rules.FieldErrors{
			"email": {"The email must be a valid email address."},
		}}
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	rec, err := user.NewUser(req.Name, email, hash)
	if err != nil {
		return nil, errs.Wrap(err, "invalid user")
	}

	if err := u.users.Insert(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Duplicate email surfaces as a field error, same shape as the
			// other validation failures.
			return nil, &rules.ValidationError{Fields: rules.FieldErrors{
				"email": {"The email has already been taken."},
			}}
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.issue(rec)
}

func (u *authCommandsImpl) Refresh(ctx context.Context, tokenString string) (*AuthResult, error) {
	claims, err := u.tokens.ParseForRefresh(tokenString)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidToken)
	}
	denied, err := u.denylist.IsDenied(ctx, claims.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if denied {
		return nil, errs.ErrInvalidToken
	}

	rec, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidToken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The old token is revoked the moment its replacement is issued.
	if err := u.deny(ctx, claims); err != nil {
		return nil, err
	}
	return u.issue(rec)
}

func (u *authCommandsImpl) Logout(ctx context.Context, claims *jwt.Claims) error {
	return u.deny(ctx, claims)
}

// Validate implements TokenValidator for the auth middleware.
func (u *authCommandsImpl) Validate(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := u.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidToken)
	}
	denied, err := u.denylist.IsDenied(ctx, claims.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if denied {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}

func (u *authCommandsImpl) issue(rec *user.User) (*AuthResult, error) {
	token, err := u.tokens.GenerateToken(rec.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}
	return &AuthResult{User: queries.UserViewOf(rec), Token: token}, nil
}

func (u *authCommandsImpl) deny(ctx context.Context, claims *jwt.Claims) error {
	// The denial must outlive every remaining use of the token: its expiry
	// for the middleware, and the refresh window for /refresh. An expired
	// token is still refreshable until the window closes, so the expiry
	// alone is not enough.
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if claims.IssuedAt != nil {
		if w := time.Until(claims.IssuedAt.Time.Add(u.tokens.RefreshWindow())); w > ttl {
			ttl = w
		}
	}
	if err := u.denylist.Deny(ctx, claims.ID, ttl); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
