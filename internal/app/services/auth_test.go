package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/fr0stylo/enms/internal/app/domain"
	portmocks "github.com/fr0stylo/enms/internal/app/ports/mocks"
)

func hashedUser(t *testing.T, name, password string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.User{ID: 1, Name: name, PasswordHash: string(hash), Permissions: []string{"Admin"}}
}

func TestAuthService_Authenticate_CachesSuccessfulLogin(t *testing.T) {
	users := portmocks.NewMockUserReader(t)
	users.EXPECT().GetUser(mock.Anything, "admin").Return(hashedUser(t, "admin", "admin"), nil).Once()

	svc := NewAuthService(users, time.Minute)
	for range 3 {
		user, err := svc.Authenticate(context.Background(), "admin", "admin")
		if err != nil {
			t.Fatalf("Authenticate returned error: %v", err)
		}
		if user.Name != "admin" {
			t.Fatalf("expected admin, got %q", user.Name)
		}
	}
}

func TestAuthService_Authenticate_RejectsWrongPassword(t *testing.T) {
	users := portmocks.NewMockUserReader(t)
	users.EXPECT().GetUser(mock.Anything, "admin").Return(hashedUser(t, "admin", "admin"), nil).Twice()

	svc := NewAuthService(users, time.Minute)
	for range 2 {
		_, err := svc.Authenticate(context.Background(), "admin", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	}
	if ClassifyError(ErrInvalidCredentials) != ErrorUnauthorized {
		t.Fatalf("expected unauthorized classification")
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	users := portmocks.NewMockUserReader(t)
	users.EXPECT().GetUser(mock.Anything, "ghost").Return(domain.User{}, domain.ErrObjectNotFound)

	svc := NewAuthService(users, 0)
	if _, err := svc.Authenticate(context.Background(), "ghost", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected empty name to be rejected, got %v", err)
	}
}

func TestAuthService_Forget_DropsCachedLogins(t *testing.T) {
	users := portmocks.NewMockUserReader(t)
	users.EXPECT().GetUser(mock.Anything, "admin").Return(hashedUser(t, "admin", "admin"), nil).Twice()

	svc := NewAuthService(users, time.Minute)
	if _, err := svc.Authenticate(context.Background(), "admin", "admin"); err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	svc.Forget()
	if _, err := svc.Authenticate(context.Background(), "admin", "admin"); err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
}
