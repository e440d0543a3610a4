package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"residconnect/internal/shared/authorization"
)

// Claims carried by a portal bearer token. There is no refresh token
// and no revocation: any unexpired, correctly signed token is accepted
// until it ages out.
type Claims struct {
	UserID string                 `json:"user_id"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret  []byte
	expDays int
}

func NewJWTService(secret string, expDays int) *JWTService {
	if expDays <= 0 {
		expDays = 7
	}
	return &JWTService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

func (s *JWTService) Generate(userID, email string, role authorization.UserRole) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if !claims.Role.IsValid() {
			return nil, fmt.Errorf("invalid role in token")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
