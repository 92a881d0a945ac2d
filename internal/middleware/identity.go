package middleware

import (
	"net/http"

	"github.com/hotelhub/booking-service/internal/auth"
	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. Authentication happens
// upstream; this middleware only propagates the resulting identity into an
// explicit Actor so the core never reads ambient session state.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorContextKey = "actor"
)

func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get(HeaderUserID)
		if userID == "" {
			return next(c)
		}

		role := auth.RoleUser
		if c.Request().Header.Get(HeaderUserRole) == string(auth.RoleAdmin) {
			role = auth.RoleAdmin
		}

		SetActor(c, auth.Actor{UserID: userID, Role: role})
		return next(c)
	}
}

func SetActor(c echo.Context, actor auth.Actor) {
	c.Set(actorContextKey, actor)
}

func ActorFrom(c echo.Context) (auth.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(auth.Actor)
	return actor, ok
}

// RequireIdentity rejects requests that carry no identity headers.
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := ActorFrom(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose actor is not an administrator.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		if !actor.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}
