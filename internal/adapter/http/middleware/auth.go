package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	actorKey = "auth.actor"
	tokenKey = "auth.token"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// Authenticator resolves a bearer token into the calling actor.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Actor, error)
}

// RequireAuth rejects requests without a valid, non revoked bearer token and
// stores the actor in the gin context.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
				c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
				return
			}
			log.Printf("[auth][middleware] authenticate failed path=%s err=%v", c.FullPath(), err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(actorKey, actor)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// ActorFrom returns the actor stored by RequireAuth.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// TokenFrom returns the raw bearer token accepted by RequireAuth.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// WithActor seeds the context the way RequireAuth does. Used by handler tests
// and internal callers that already resolved the actor.
func WithActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}
