package service

import (
	"testing"

	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestAuthService() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, testTokenService(1)), repo
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, repo := newTestAuthService()

	resp, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ada",
		Email:    "  Ada@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.UserID == 0 || resp.ExpiresIn == 0 {
		t.Fatalf("incomplete auth response %+v", resp)
	}

	user := repo.byEmail["ada@example.com"]
	if user == nil {
		t.Fatal("user stored under unnormalized email")
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("plaintext password was persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(dto.RegisterRequestDTO{Username: "ada", Email: "ada@example.com", Password: "password1"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(dto.RegisterRequestDTO{Username: "ada2", Email: "ADA@example.com", Password: "password2"})
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeDuplicateEmail {
		t.Fatalf("second Register = %v, want duplicate_email", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Register(dto.RegisterRequestDTO{Username: "ada", Email: "ada@example.com", Password: "password1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(dto.LoginRequestDTO{Email: "ada@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" || resp.Username != "ada" {
		t.Fatalf("login response %+v", resp)
	}

	_, err = svc.Login(dto.LoginRequestDTO{Email: "ada@example.com", Password: "wrong"})
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeInvalidCredentials {
		t.Fatalf("Login with wrong password = %v, want invalid_credentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.Login(dto.LoginRequestDTO{Email: "nobody@example.com", Password: "whatever"})
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeUserNotFound {
		t.Fatalf("Login for unknown email = %v, want user_not_found", err)
	}
}
