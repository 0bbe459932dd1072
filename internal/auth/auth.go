package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadToken       = errors.New("invalid token")
	ErrBadCredentials = errors.New("invalid credentials")
)

// admin sessions last an hour
const TokenTTL = time.Hour

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Admin is the single static admin credential.
type Admin struct {
	id   string
	hash string
}

// NewAdmin accepts either a plain password or a bcrypt hash; the hash wins
// when both are set.
func NewAdmin(id, password, hash string) (*Admin, error) {
	if id == "" {
		return nil, errors.New("admin id required")
	}
	if hash == "" {
		if password == "" {
			return nil, errors.New("admin password or password hash required")
		}
		h, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &Admin{id: id, hash: hash}, nil
}

func (a *Admin) ID() string { return a.id }

func (a *Admin) Check(id, password string) error {
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(a.id)) == 1
	// always run bcrypt so a wrong id costs the same as a wrong password
	pwOK := CheckPassword(a.hash, password)
	if !idOK || !pwOK {
		return ErrBadCredentials
	}
	return nil
}

type Claims struct {
	jwt.RegisteredClaims
}

func MakeToken(subject, secret string) (string, error) {
	now := time.Now()
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return c, nil
}
