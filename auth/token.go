package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pairup/domain"
	"pairup/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	IdentityID  string `json:"identity_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens signed with HS256.
type TokenService struct {
	secret   []byte
	duration time.Duration
}

func NewTokenService(secret string, duration time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), duration: duration}
}

// Generate creates a signed JWT for an identity.
func (t *TokenService) Generate(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		IdentityID:  string(identity.ID),
		DisplayName: identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "pairup",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Authenticate parses and validates a JWT string and yields the identity it
// names. Any failure refuses the transport before core state is touched.
func (t *TokenService) Authenticate(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return domain.Identity{}, errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.IdentityID == "" {
		return domain.Identity{}, errors.ErrInvalidToken
	}
	return domain.Identity{
		ID:          domain.IdentityID(claims.IdentityID),
		DisplayName: claims.DisplayName,
		LastSeen:    time.Now().UTC(),
	}, nil
}

// Secret exposes the signing key for the echo-jwt middleware, which does its
// own parse on REST routes.
func (t *TokenService) Secret() []byte { return t.secret }
