// Package auth provides the signed cookie codecs used by the web front-end.
package auth

import (
	"time"

	"socksflow/config"
	"socksflow/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const flashIssuer = "socksflow-web"

// flashClaims carries a Flash as JWT claims.
type flashClaims struct {
	service.Flash
	jwt.RegisteredClaims
}

// jwtFlashCodec signs flashes with HS256 so form values and markers cannot be forged.
type jwtFlashCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTFlashCodec is the constructor for the flash codec.
func NewJWTFlashCodec(cfg *config.Config) (service.FlashCodec, error) {
	if cfg.SecretKey.Flash == "" {
		return nil, errors.New("flash secret must be provided")
	}

	ttl := 5 * time.Minute
	if cfg.Session != nil && cfg.Session.FlashTTL > 0 {
		ttl = cfg.Session.FlashTTL
	}

	return &jwtFlashCodec{
		secret: []byte(cfg.SecretKey.Flash),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Encode signs flash into a compact token suitable for a cookie value.
func (c *jwtFlashCodec) Encode(flash *service.Flash) (string, error) {
	if flash == nil {
		return "", errors.New("flash is nil")
	}

	now := c.now()
	claims := flashClaims{
		Flash: *flash,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    flashIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign flash")
	}

	return signed, nil
}

// Decode verifies value and returns the flash it carries.
func (c *jwtFlashCodec) Decode(value string) (*service.Flash, error) {
	claims := &flashClaims{}

	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(flashIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "verify flash")
	}

	flash := claims.Flash

	return &flash, nil
}
