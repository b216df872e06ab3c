package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
)

// ActorFromContext extracts the verified (person id, role) pair from the JWT
// claims the Verifier middleware placed on the context. Services pass the
// resulting Actor explicitly into the authorization gate; nothing below the
// handler layer reads ambient session state.
func ActorFromContext(ctx context.Context) (authz.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return authz.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return authz.Actor{}, fmt.Errorf("role claim is missing or invalid")
	}

	personID, ok := toInt64(claims["person_id"])
	if !ok {
		// Admin service accounts may not be linked to a business person; the
		// gate never consults the id for administrative callers.
		if authz.Role(roleStr) == authz.RoleAdmin {
			return authz.Actor{Role: authz.RoleAdmin}, nil
		}
		return authz.Actor{}, fmt.Errorf("person_id claim is missing or invalid")
	}

	return authz.Actor{ID: personID, Role: authz.Role(roleStr)}, nil
}
