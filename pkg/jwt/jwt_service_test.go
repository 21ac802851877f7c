package jwt

import (
	"testing"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("s3cret")

	token, err := svc.GenerateToken("caretaker-1")
	require.NoError(t, err)

	id, role, err := svc.GetCaretakerIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "caretaker-1", id)
	assert.Equal(t, domain.RoleCaretaker, role)
}

func TestJWTService_Rejections(t *testing.T) {
	valid, err := NewJWTServiceWithSecret("other").GenerateToken("caretaker-1")
	require.NoError(t, err)

	expiredSvc := &jwtService{secretKey: "s3cret", issuer: issuer, now: func() time.Time {
		return time.Now().Add(-3 * tokenLifetime)
	}}
	expired, err := expiredSvc.GenerateToken("caretaker-1")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"caretaker_id": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	blank, err := NewJWTServiceWithSecret("s3cret").GenerateToken("")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: domain.ErrTokenInvalid},
		{name: "wrong secret", token: valid, wantErr: domain.ErrTokenInvalid},
		{name: "expired", token: expired, wantErr: domain.ErrTokenExpired},
		{name: "unsigned", token: none, wantErr: domain.ErrTokenInvalid},
		{name: "no caretaker", token: blank, wantErr: domain.ErrTokenInvalid},
	}

	svc := NewJWTServiceWithSecret("s3cret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.GetCaretakerIDByToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
