// Package auth is the access gate in front of the assignment API. It issues
// and verifies bearer credentials carrying {identity, email, role}.
//
// The role claim is trusted for the credential's entire validity window;
// there is no per-request re-check against the user store. A role change on
// the account takes effect only when the user logs in again and receives a
// fresh credential. That staleness window is part of the contract.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const callerKey contextKey = "caller"

// Caller is the authenticated identity derived from a verified credential.
type Caller struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// Middleware verifies the Authorization bearer credential with the shared
// signing secret and stores the resulting Caller on the request context.
// Absent and invalid credentials are rejected identically; the caller learns
// nothing about which it was.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A verified signature can still carry a role outside the closed
			// set (an old credential from before a role was retired, or one
			// minted by another service sharing the secret). Reject it here
			// so handlers and services only ever see the two valid roles.
			role, err := ParseRole(claims.Role)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "unauthorized role")
			}

			caller := Caller{ID: userID, Email: claims.Email, Role: role}
			c.SetRequest(c.Request().WithContext(WithCaller(c.Request().Context(), caller)))

			return next(c)
		}
	}
}

// WithCaller returns a context carrying the authenticated caller.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)
	return caller, ok
}
