package jwt

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/utils"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	JWTService interface {
		GenerateTokenUser(userID uint, role string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(ctx context.Context, token string) (uint, string, error)
		RevokeToken(ctx context.Context, token string) error
	}

	jwtUserClaim struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		denylist  TokenDenylist
	}
)

const defaultTTL = 24 * time.Hour

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func getTTL() time.Duration {
	minutes, err := strconv.Atoi(utils.GetConfig("JWT_TTL_MINUTES"))
	if err != nil || minutes < 1 {
		return defaultTTL
	}
	return time.Duration(minutes) * time.Minute
}

func NewJWTService(denylist TokenDenylist) JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "FOODGRAM",
		ttl:       getTTL(),
		denylist:  denylist,
	}
}

func (j *jwtService) GenerateTokenUser(userID uint, role string) (string, error) {
	now := time.Now()
	claims := jwtUserClaim{
		userID,
		role,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) claims(token string) (*jwtUserClaim, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if claims.Issuer != j.issuer || claims.ID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) GetUserIDByToken(ctx context.Context, token string) (uint, string, error) {
	claims, err := j.claims(token)
	if err != nil {
		return 0, "", err
	}

	revoked, err := j.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return 0, "", err
	}
	if revoked {
		return 0, "", domain.ErrTokenRevoked
	}
	return claims.UserID, claims.Role, nil
}

// RevokeToken keeps the token's jti on the denylist until the token expires.
func (j *jwtService) RevokeToken(ctx context.Context, token string) error {
	claims, err := j.claims(token)
	if err != nil {
		return err
	}
	return j.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
