package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clientportal/project-portal/internal/core/domain"
)

const defaultLifetime = 30 * 24 * time.Hour

// Verification failure classes. All three collapse to a single 401 at the
// HTTP boundary; the distinction exists for logging and tests.
var (
	ErrMalformed        = errors.New("token: malformed")
	ErrExpired          = errors.New("token: expired")
	ErrSignatureInvalid = errors.New("token: signature invalid")

	ErrUnsupportedAlgorithm = errors.New("token: unsupported signing algorithm")
)

// Claims are the identity fields carried by a bearer token. Immutable once
// issued; they live only for the duration of a request.
type Claims struct {
	SubjectID string
	Role      domain.Role
	Email     string
	ExpiresAt time.Time
}

// Config captures the signing parameters, read once at startup and never
// consulted from ambient state afterwards.
type Config struct {
	Secret    string
	Algorithm string        // only HMAC methods are accepted (HS256)
	Lifetime  time.Duration // zero means the 30-day default
}

// Service issues and verifies signed bearer tokens. Stateless: nothing is
// persisted and there is no revocation list.
type Service struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

func NewService(cfg Config) (*Service, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnsupportedAlgorithm
	}
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = defaultLifetime
	}
	return &Service{
		secret:   []byte(cfg.Secret),
		method:   method,
		lifetime: lifetime,
	}, nil
}

// Issue encodes identity claims plus an absolute expiry into a signed token.
func (s *Service) Issue(subjectID string, role domain.Role, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"role":    string(role),
		"email":   email,
		"exp":     time.Now().Add(s.lifetime).Unix(),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and decodes the claims.
func (s *Service) Verify(raw string) (*Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrMalformed
	}

	subjectID, _ := mc["user_id"].(string)
	roleRaw, _ := mc["role"].(string)
	role, err := domain.ParseRole(roleRaw)
	if subjectID == "" || err != nil {
		return nil, ErrMalformed
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrMalformed
	}

	email, _ := mc["email"].(string)
	return &Claims{
		SubjectID: subjectID,
		Role:      role,
		Email:     email,
		ExpiresAt: exp.Time,
	}, nil
}
