package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
)

var (
	ErrMissingToken = httperr.Auth("missing_token", "Token no proporcionado.")
	ErrInvalidToken = httperr.Auth("invalid_token", "Token inválido.")
	ErrTokenExpired = httperr.Auth("token_expired", "Token expirado.")
	ErrTokenRevoked = httperr.Auth("token_revoked", "Sesión cerrada.")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the identity carried by a verified token.
type Session struct {
	access.Identity
	TokenID   string
	ExpiresAt time.Time
}

type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// --------- Issue ---------

func (m *TokenManager) Issue(userID uint, role access.Role) (Token, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	jti := uuid.NewString()

	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        jti,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, err
	}

	return Token{
		Value:     signed,
		ID:        jti,
		ExpiresAt: exp,
	}, nil
}

// --------- Parse ---------

func (m *TokenManager) Parse(raw string) (*Session, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, ErrInvalidToken
	}

	role := access.Role(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Session{
		Identity: access.Identity{
			UserID: uint(id),
			Role:   role,
		},
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
