package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
)

// ErrInvalidCredentials indicates an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies basic-auth credentials against stored users.
// Successful verifications are remembered for the cache TTL.
type AuthService struct {
	users ports.UserReader
	cache *cache.Cache
}

// NewAuthService constructs an authenticator. A non-positive ttl disables caching.
func NewAuthService(users ports.UserReader, ttl time.Duration) *AuthService {
	svc := &AuthService{users: users}
	if ttl > 0 {
		svc.cache = cache.New(ttl, 2*ttl)
	}
	return svc
}

// Authenticate returns the user when the password matches its stored hash.
func (s *AuthService) Authenticate(ctx context.Context, name, password string) (domain.User, error) {
	if name == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	key := credentialKey(name, password)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(domain.User), nil
		}
	}

	user, err := s.users.GetUser(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.cache != nil {
		s.cache.Set(key, user, cache.DefaultExpiration)
	}
	return user, nil
}

// Forget drops cached verifications, e.g. after a password change.
func (s *AuthService) Forget() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func credentialKey(name, password string) string {
	sum := sha256.Sum256([]byte(name + "\x00" + password))
	return hex.EncodeToString(sum[:])
}
