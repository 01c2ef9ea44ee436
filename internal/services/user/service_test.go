package user

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func signUpReq() SignUpRequest {
	return SignUpRequest{
		FullName:        "Ada Lovelace",
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestSignUpSignsIn(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	created, err := svc.SignUp(ctx, signUpReq())
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if created.ID == "" {
		t.Errorf("created account has no id")
	}

	current, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current == nil || current.ID != created.ID {
		t.Errorf("sign-up did not start a session: %+v", current)
	}
	if got := svc.CurrentUserID(ctx); got != created.ID {
		t.Errorf("CurrentUserID = %q, want %q", got, created.ID)
	}
}

func TestSignUpRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	if _, err := svc.SignUp(ctx, signUpReq()); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	sameEmail := signUpReq()
	sameEmail.Username = "ada2"
	if _, err := svc.SignUp(ctx, sameEmail); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("duplicate email: expected ErrDuplicateAccount, got %v", err)
	}

	sameUsername := signUpReq()
	sameUsername.Email = "other@example.com"
	if _, err := svc.SignUp(ctx, sameUsername); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("duplicate username: expected ErrDuplicateAccount, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	cases := []struct {
		name   string
		mutate func(*SignUpRequest)
		want   error
	}{
		{"missing full name", func(r *SignUpRequest) { r.FullName = "  " }, ErrFullNameRequired},
		{"missing username", func(r *SignUpRequest) { r.Username = "" }, ErrUsernameRequired},
		{"missing email", func(r *SignUpRequest) { r.Email = "" }, ErrEmailRequired},
		{"missing password", func(r *SignUpRequest) { r.Password = "" }, ErrPasswordRequired},
		{"password mismatch", func(r *SignUpRequest) { r.ConfirmPassword = "other" }, ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := signUpReq()
			tc.mutate(&req)
			if _, err := svc.SignUp(ctx, req); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLogInByEmailOrUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	created, err := svc.SignUp(ctx, signUpReq())
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if err := svc.LogOut(ctx); err != nil {
		t.Fatalf("LogOut failed: %v", err)
	}

	for _, identifier := range []string{"ada@example.com", "ada"} {
		u, err := svc.LogIn(ctx, identifier, "secret")
		if err != nil {
			t.Fatalf("LogIn(%q) failed: %v", identifier, err)
		}
		if u.ID != created.ID {
			t.Errorf("LogIn(%q) returned wrong account", identifier)
		}
	}
}

func TestLogInRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	if _, err := svc.SignUp(ctx, signUpReq()); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if _, err := svc.LogIn(ctx, "ada", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.LogIn(ctx, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown account: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.LogIn(ctx, "  ", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("blank form: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogOutFallsBackToGuest(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	if _, err := svc.SignUp(ctx, signUpReq()); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if err := svc.LogOut(ctx); err != nil {
		t.Fatalf("LogOut failed: %v", err)
	}

	current, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current != nil {
		t.Errorf("session should be empty after logout, got %+v", current)
	}
	if got := svc.CurrentUserID(ctx); got != models.GuestUserID {
		t.Errorf("CurrentUserID = %q, want guest sentinel", got)
	}
}

func TestUpdateProfilePreservesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	if _, err := svc.SignUp(ctx, signUpReq()); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	name := "Augusta Ada King"
	bio := "countess of computing"
	updated, err := svc.UpdateProfile(ctx, UpdateProfileRequest{FullName: &name, Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.FullName != "Augusta Ada King" || updated.Bio != "countess of computing" {
		t.Errorf("patch did not apply: %+v", updated)
	}

	// The stored password is untouched by a profile edit
	if err := svc.LogOut(ctx); err != nil {
		t.Fatalf("LogOut failed: %v", err)
	}
	if _, err := svc.LogIn(ctx, "ada", "secret"); err != nil {
		t.Errorf("original password no longer works: %v", err)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	if _, err := svc.SignUp(ctx, signUpReq()); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	empty := "  "
	if _, err := svc.UpdateProfile(ctx, UpdateProfileRequest{Email: &empty}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.NewStore(t))

	name := "X"
	if _, err := svc.UpdateProfile(ctx, UpdateProfileRequest{FullName: &name}); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("expected ErrNotSignedIn, got %v", err)
	}
}
