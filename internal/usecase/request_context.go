package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/user"
)

// RequestContext is the authenticated caller passed explicitly into every use
// case that needs authorization.
type RequestContext struct {
	UserID       fantasy.UserID
	IsSuperAdmin bool
	admins       championship.Repository
}

type RequestContextFactory struct {
	championshipRepo championship.Repository
}

func NewRequestContextFactory(championshipRepo championship.Repository) *RequestContextFactory {
	return &RequestContextFactory{championshipRepo: championshipRepo}
}

func (f *RequestContextFactory) For(principal user.Principal) RequestContext {
	return RequestContext{
		UserID:       principal.UserID,
		IsSuperAdmin: principal.IsSuperAdmin,
		admins:       f.championshipRepo,
	}
}

func (rc RequestContext) IsChampionshipAdmin(ctx context.Context, championshipID fantasy.ChampionshipID) (bool, error) {
	if rc.IsSuperAdmin {
		return true, nil
	}
	if rc.admins == nil || rc.UserID <= 0 {
		return false, nil
	}
	ok, err := rc.admins.IsAdmin(ctx, championshipID, rc.UserID)
	if err != nil {
		return false, fmt.Errorf("check championship admin: %w", err)
	}
	return ok, nil
}

func (rc RequestContext) requireAuthenticated() error {
	if rc.UserID <= 0 {
		return fmt.Errorf("%w: authenticated user is required", ErrUnauthorized)
	}
	return nil
}

func (rc RequestContext) requireSuperAdmin() error {
	if err := rc.requireAuthenticated(); err != nil {
		return err
	}
	if !rc.IsSuperAdmin {
		return fmt.Errorf("%w: super admin privileges required", ErrForbidden)
	}
	return nil
}
