package jwt

import (
	"Foodgram-Backend/domain"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func newTestService(denylist TokenDenylist) *jwtService {
	return &jwtService{
		secretKey: "test-secret",
		issuer:    "FOODGRAM",
		ttl:       time.Hour,
		denylist:  denylist,
	}
}

func TestGenerateAndParse(t *testing.T) {
	svc := newTestService(noopDenylist{})

	token, err := svc.GenerateTokenUser(42, domain.RoleUser)
	require.NoError(t, err)

	userID, role, err := svc.GetUserIDByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenRejects(t *testing.T) {
	svc := newTestService(noopDenylist{})

	expired := &jwtService{secretKey: svc.secretKey, issuer: svc.issuer, ttl: -time.Minute, denylist: noopDenylist{}}
	expiredToken, err := expired.GenerateTokenUser(1, domain.RoleUser)
	require.NoError(t, err)

	other := &jwtService{secretKey: "another-secret", issuer: svc.issuer, ttl: time.Hour, denylist: noopDenylist{}}
	foreignToken, err := other.GenerateTokenUser(1, domain.RoleUser)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwtUserClaim{UserID: 1})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "garbage", token: "not-a-token", want: domain.ErrTokenInvalid},
		{name: "expired", token: expiredToken, want: domain.ErrTokenExpired},
		{name: "wrong secret", token: foreignToken, want: domain.ErrTokenInvalid},
		{name: "unsigned", token: noneToken, want: domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.GetUserIDByToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestRevokeToken(t *testing.T) {
	client, mr := setupTestRedis(t)
	svc := newTestService(NewRedisDenylist(client))
	ctx := context.Background()

	token, err := svc.GenerateTokenUser(7, domain.RoleUser)
	require.NoError(t, err)
	other, err := svc.GenerateTokenUser(7, domain.RoleUser)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, token))

	_, _, err = svc.GetUserIDByToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	// every login gets its own jti
	_, _, err = svc.GetUserIDByToken(ctx, other)
	assert.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))
}

func TestNoopDenylistNeverRevokes(t *testing.T) {
	svc := newTestService(noopDenylist{})
	ctx := context.Background()

	token, err := svc.GenerateTokenUser(3, domain.RoleUser)
	require.NoError(t, err)
	require.NoError(t, svc.RevokeToken(ctx, token))

	_, _, err = svc.GetUserIDByToken(ctx, token)
	assert.NoError(t, err)
}
