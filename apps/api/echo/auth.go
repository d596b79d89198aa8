package echoapi

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwenda/classtrack/core"
	"github.com/mwenda/classtrack/core/user"
)

const tokenContextKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
// The token is self-contained: identity and role travel with every request
// and there is no server-side session.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// UserID returns the user id carried in the token subject.
func (c *Claims) UserID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, errors.Wrap(err, "parsing token subject")
	}
	return id, nil
}

// GetUserClaims builds the claims for a freshly authenticated user, expiring
// after the configured token lifetime.
func GetUserClaims(usr user.User, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    conf.AppName,
			Subject:   strconv.Itoa(usr.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(conf.TokenLifetime)),
		},
		Role: usr.Role,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// newJWTMiddleware returns the middleware enforcing a valid Bearer token on
// gated routes; missing, malformed, unsigned and expired tokens are all
// rejected with 401.
func newJWTMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(Claims) },
	})
}

func getContextClaims(ctx echo.Context) (*Claims, error) {
	if token, ok := ctx.Get(tokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims, nil
		}
	}
	return nil, errUnauthorized
}

func getContextUserID(ctx echo.Context) (int, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID()
}
