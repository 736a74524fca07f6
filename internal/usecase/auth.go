package usecase

import (
	"context"
	"errors"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/pkg/jwt"
	"hotelcore/internal/pkg/password"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrStaffNotFound      = errs.New("staff user not found")
	ErrMissingFilter      = errs.New("a list filter is required")
)

type LoginResult struct {
	Token string
	User  *queries.StaffView
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*queries.StaffView, error)
}

// TokenValidator is what the auth middleware consumes; it resolves a raw
// bearer token into the acting staff member.
type TokenValidator interface {
	ValidateToken(token string) (shared.Actor, error)
}

type authUseCase struct {
	uow   shared.UnitOfWork
	views queries.StaffQueries
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, views queries.StaffQueries, jwtSvc *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCase{uow: uow, views: views, jwt: jwtSvc, clock: clk}
}

func (a *authUseCase) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	var token string
	var userID uuid.UUID

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		user, err := tx.Staff().ByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if err := password.Compare(user.PasswordHash(), plainPassword); err != nil {
			return ErrInvalidCredentials
		}

		token, err = a.jwt.GenerateToken(user.ID(), user.Name(), user.Role())
		if err != nil {
			return errs.Wrap(err, "failed to sign token")
		}
		userID = user.ID()
		return tx.Staff().UpdateLastLogin(ctx, user.ID(), a.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	view, err := a.views.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: view}, nil
}

func (a *authUseCase) Me(ctx context.Context, userID uuid.UUID) (*queries.StaffView, error) {
	view, err := a.views.GetByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return view, nil
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtSvc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (shared.Actor, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return shared.Actor{}, err
		}
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	return shared.Actor{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: staff.Role(claims.Role),
	}, nil
}
