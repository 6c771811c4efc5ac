package middleware

import (
	"log"
	"net/http"

	"insurance_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this role", http.StatusForbidden)

// RouteAuthorizer decides whether a role may call a route pattern.
type RouteAuthorizer interface {
	Allowed(role, path, method string) (bool, error)
}

// Authorize checks the actor's role against the route pattern. It must run
// after RequireAuth.
func Authorize(authz RouteAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		path := c.FullPath()
		allowed, err := authz.Allowed(string(actor.Role), path, c.Request.Method)
		if err != nil {
			log.Printf("[auth][rbac] enforce failed role=%s path=%s err=%v", actor.Role, path, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !allowed {
			log.Printf("[auth][rbac] denied user_id=%d role=%s method=%s path=%s", actor.UserID, actor.Role, c.Request.Method, path)
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
