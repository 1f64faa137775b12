package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// contextKey is where the JWT gate stores the parsed token.
const contextKey = "user"

// GateConfig returns the echo-jwt configuration verifying bearer tokens
// against the access secret and decoding them into Claims.
func GateConfig(svc *JWTService) echojwt.Config {
	return echojwt.Config{
		ContextKey:  contextKey,
		SigningKey:  svc.AccessSecret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		// Absent and invalid tokens both surface as 401.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
		},
	}
}

// ClaimsFrom extracts the verified claims attached by the JWT gate.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireRoles rejects requests whose token role is not in the permitted
// set. It must run after the JWT gate.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	permitted := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		permitted[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
			}
			if _, ok := permitted[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role is not permitted for this resource")
			}
			return next(c)
		}
	}
}
