package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer        = "HEALTHY-MEAL-PLANNER"
	tokenLifetime = 120 * time.Minute
)

type (
	JWTService interface {
		GenerateToken(caretakerID string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetCaretakerIDByToken(token string) (string, string, error)
	}

	jwtCaretakerClaim struct {
		CaretakerID string `json:"caretaker_id"`
		Role        string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func getSecretKey() string {
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		log.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
	}
	return secretKey
}

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(getSecretKey())
}

func NewJWTServiceWithSecret(secret string) JWTService {
	return &jwtService{
		secretKey: secret,
		issuer:    issuer,
		now:       time.Now,
	}
}

// GenerateToken issues a caretaker token. Accounts are managed elsewhere; the
// token only carries the caretaker id used to scope diner access.
func (j *jwtService) GenerateToken(caretakerID string) (string, error) {
	now := j.now()
	claims := jwtCaretakerClaim{
		caretakerID,
		domain.RoleCaretaker,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
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

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtCaretakerClaim{}, j.parseToken)
}

// GetCaretakerIDByToken returns the caretaker id and role carried by token.
func (j *jwtService) GetCaretakerIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtCaretakerClaim)
	if claims.CaretakerID == "" {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.CaretakerID, claims.Role, nil
}
