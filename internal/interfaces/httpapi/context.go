package httpapi

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-formula/internal/domain/user"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

// requestContext turns the authenticated principal into the explicit caller
// context the use cases authorize against.
func (h *Handler) requestContext(ctx context.Context) (usecase.RequestContext, error) {
	principal, ok := principalFromContext(ctx)
	if !ok || principal.UserID <= 0 {
		return usecase.RequestContext{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return h.contexts.For(principal), nil
}
