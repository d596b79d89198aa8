package echoapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwenda/classtrack/core"
	"github.com/mwenda/classtrack/core/user"
)

func testConfig() *core.Config {
	return &core.Config{
		Debug:         true,
		AppName:       "Classtrack",
		SecretKey:     "test-secret-key",
		TokenLifetime: 30 * time.Minute,
	}
}

func parseToken(t *testing.T, conf *core.Config, token string) *Claims {
	t.Helper()
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	require.NoError(t, err)
	return claims
}

func TestGenerateToken_roundTrip(t *testing.T) {
	conf := testConfig()
	usr := user.User{ID: 42, Role: user.RoleTeacher}

	token, err := GenerateToken(GetUserClaims(usr, conf), conf)
	require.NoError(t, err)

	claims := parseToken(t, conf, token)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, user.RoleTeacher, claims.Role)
	assert.Equal(t, conf.AppName, claims.Issuer)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	wantExp := time.Now().Add(conf.TokenLifetime)
	assert.WithinDuration(t, wantExp, claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateToken_expired(t *testing.T) {
	conf := testConfig()
	usr := user.User{ID: 1, Role: user.RoleStudent}

	claims := GetUserClaims(usr, conf)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token, err := GenerateToken(claims, conf)
	require.NoError(t, err)

	parsed := new(Claims)
	_, err = jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGenerateToken_wrongKeyRejected(t *testing.T) {
	conf := testConfig()
	token, err := GenerateToken(GetUserClaims(user.User{ID: 1, Role: user.RoleStudent}, conf), conf)
	require.NoError(t, err)

	parsed := new(Claims)
	_, err = jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (interface{}, error) {
		return []byte("another-key"), nil
	})
	assert.Error(t, err)
}
