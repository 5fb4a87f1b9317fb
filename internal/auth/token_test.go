package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	v := NewVerifier("secret")

	valid, err := v.Issue("user1", RoleAdmin, time.Hour)
	require.NoError(t, err)
	expired, err := v.Issue("user1", "", -time.Minute)
	require.NoError(t, err)
	foreign, err := NewVerifier("other").Issue("user1", "", time.Hour)
	require.NoError(t, err)
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: RoleAdmin}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		expectedErr error
		expectRole  string
	}{
		{name: "bearer_prefix", header: "Bearer " + valid, expectRole: RoleAdmin},
		{name: "raw_token", header: valid, expectRole: RoleAdmin},
		{name: "empty", header: "", expectedErr: ErrMissingToken},
		{name: "bearer_only", header: "Bearer ", expectedErr: ErrMissingToken},
		{name: "bearer_trimmed", header: "Bearer", expectedErr: ErrMissingToken},
		{name: "bearer_lowercase", header: "bearer " + valid, expectRole: RoleAdmin},
		{name: "bearer_extra_spaces", header: "  BEARER   " + valid + " ", expectRole: RoleAdmin},
		{name: "expired", header: "Bearer " + expired, expectedErr: ErrInvalidToken},
		{name: "wrong_secret", header: "Bearer " + foreign, expectedErr: ErrInvalidToken},
		{name: "garbage", header: "Bearer not.a.token", expectedErr: ErrInvalidToken},
		{name: "missing_user", header: "Bearer " + noUser, expectedErr: ErrInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := v.Verify(tc.header)
			if tc.expectedErr != nil {
				require.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "user1", claims.UserID)
			require.Equal(t, tc.expectRole, claims.Role)
		})
	}
}
