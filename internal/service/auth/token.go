package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mig-catalog/internal/infra/cache"
)

const (
	// TokenIssuer and TokenAudience pin tokens to this API so a token
	// minted for another service signed with the same secret is rejected.
	TokenIssuer   = "mig-catalog-api"
	TokenAudience = "mig-catalog-users"

	// maxTokenAge bounds token lifetime from iat regardless of exp, so a
	// client cannot present a token with a far-future expiry claim.
	maxTokenAge = time.Hour
)

// Claims are the validated claims of an access token.
type Claims struct {
	UserID    string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies HS256 access tokens. A previous
// signing secret may be configured so tokens survive key rotation;
// new tokens are always signed with the primary secret.
type TokenService struct {
	secret         []byte
	rotationSecret []byte
	ttl            time.Duration
	blacklist      cache.Store

	now func() time.Time
}

// NewTokenService creates a TokenService. rotationSecret may be empty.
// blacklist stores revoked token IDs; pass nil to disable revocation.
func NewTokenService(secret, rotationSecret string, ttl time.Duration, blacklist cache.Store) *TokenService {
	if ttl <= 0 || ttl > maxTokenAge {
		ttl = 30 * time.Minute
	}
	return &TokenService{
		secret:         []byte(secret),
		rotationSecret: []byte(rotationSecret),
		ttl:            ttl,
		blacklist:      blacklist,
		now:            time.Now,
	}
}

// Issue creates a signed access token for the user. It returns the token
// string and its lifetime.
func (s *TokenService) Issue(userID string) (string, time.Duration, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"exp":  now.Add(s.ttl).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"iss":  TokenIssuer,
		"aud":  TokenAudience,
		"jti":  uuid.NewString(),
		"type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return signed, s.ttl, nil
}

// Verify parses and validates an access token. The primary secret is
// tried first and the rotation secret second, so tokens issued before a
// key rotation stay valid until they expire.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString, s.secret)
	if err != nil && len(s.rotationSecret) > 0 {
		var rotErr error
		claims, rotErr = s.parse(tokenString, s.rotationSecret)
		if rotErr == nil {
			slog.Debug("token verified with rotation secret")
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}

	if s.blacklist != nil {
		_, berr := s.blacklist.Get(ctx, blacklistKey(claims.TokenID))
		if berr == nil {
			return nil, ErrTokenRevoked
		}
		if !errors.Is(berr, cache.ErrCacheMiss) {
			// Blacklist backend down. Reject rather than accept a
			// possibly revoked token.
			return nil, fmt.Errorf("%w: revocation check failed", ErrTokenInvalid)
		}
	}

	return claims, nil
}

func (s *TokenService) parse(tokenString string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	token, err := parser.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	sub, _ := mapClaims["sub"].(string)
	jti, _ := mapClaims["jti"].(string)
	typ, _ := mapClaims["type"].(string)
	iat, iatOK := mapClaims["iat"].(float64)
	exp, expOK := mapClaims["exp"].(float64)
	if sub == "" || jti == "" || !iatOK || !expOK {
		return nil, fmt.Errorf("%w: missing required claims", ErrTokenInvalid)
	}
	if typ != "access" {
		return nil, fmt.Errorf("%w: wrong token type", ErrTokenInvalid)
	}

	issuedAt := time.Unix(int64(iat), 0)
	if s.now().Sub(issuedAt) > maxTokenAge {
		return nil, ErrTokenExpired
	}

	return &Claims{
		UserID:    sub,
		TokenID:   jti,
		IssuedAt:  issuedAt,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

// Revoke blacklists the token until its natural expiry, after which the
// entry is pointless and allowed to lapse.
func (s *TokenService) Revoke(ctx context.Context, claims *Claims) error {
	if s.blacklist == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Set(ctx, blacklistKey(claims.TokenID), []byte("1"), ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}
