// Package jwt implements the signed-token codec: two independent signing
// domains (access and refresh), each with its own HS256 secret and lifetime.
// A token minted in one domain never verifies in the other.
package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/surfconnect/backend/pkg/auth"
)

// Domain selects the signing/verification context of a token.
type Domain string

const (
	DomainAccess  Domain = "access"
	DomainRefresh Domain = "refresh"
)

// Verification failures form a closed set; callers never get claims
// alongside any of these.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrWrongDomain      = errors.New("token domain mismatch")
)

// Claims embeds the registered claim set plus the subject's email and the
// signing domain the token belongs to.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Domain Domain `json:"typ"`
}

// DomainConfig holds one domain's secret and token lifetime.
type DomainConfig struct {
	Secret string
	TTL    time.Duration
}

// Codec mints and verifies tokens for both domains. Secrets are injected at
// construction so tests can supply deterministic values.
type Codec struct {
	issuer  string
	access  DomainConfig
	refresh DomainConfig
}

func NewCodec(issuer string, access, refresh DomainConfig) *Codec {
	return &Codec{issuer: issuer, access: access, refresh: refresh}
}

func (c *Codec) domainConfig(d Domain) DomainConfig {
	if d == DomainRefresh {
		return c.refresh
	}
	return c.access
}

// Mint signs a token in the given domain with that domain's secret and TTL.
func (c *Codec) Mint(subjectID, email string, d Domain) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    c.issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.domainConfig(d).TTL)),
		},
		Email:  email,
		Domain: d,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.domainConfig(d).Secret))
}

// Verify checks signature, expiry, and domain, and returns the embedded
// claims only when all three hold. The key function inspects the token's
// domain claim before the signature check, so cross-domain use surfaces as
// ErrWrongDomain rather than a generic signature failure.
func (c *Codec) Verify(tokenStr string, expected Domain) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		tc, ok := t.Claims.(*Claims)
		if !ok || tc.Domain != expected {
			return nil, ErrWrongDomain
		}
		return []byte(c.domainConfig(expected).Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	switch {
	case err == nil && token.Valid:
		return *claims, nil
	case errors.Is(err, ErrWrongDomain):
		return Claims{}, ErrWrongDomain
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrSignatureInvalid
	default:
		// covers malformed input and unverifiable tokens (e.g. alg=none)
		return Claims{}, ErrTokenMalformed
	}
}

// Issue implements auth.TokenIssuer: one access and one refresh token,
// both carrying the same subject.
func (c *Codec) Issue(ctx context.Context, subjectID, email string) (auth.TokenPair, error) {
	access, err := c.Mint(subjectID, email, DomainAccess)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, err := c.Mint(subjectID, email, DomainRefresh)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefresh implements auth.TokenIssuer against the refresh domain.
func (c *Codec) VerifyRefresh(ctx context.Context, tokenStr string) (string, string, error) {
	claims, err := c.Verify(tokenStr, DomainRefresh)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Email, nil
}
