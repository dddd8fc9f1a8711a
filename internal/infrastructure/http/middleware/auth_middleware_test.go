package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/pkg/jwt"
)

type stubUserRepo struct {
	users   map[uuid.UUID]*entities.User
	touched int
}

func (r *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *stubUserRepo) Update(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	r.touched++
	return nil
}

func newAuthFixture(t *testing.T, role entities.UserRole) (*AuthMiddleware, *entities.User, string) {
	t.Helper()
	manager := jwt.NewManager("test-secret", time.Minute)
	user := entities.NewUser("candidate@talentlens.io", "Test User", role)
	repo := &stubUserRepo{users: map[uuid.UUID]*entities.User{user.ID: user}}

	token, err := manager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return NewAuthMiddleware(manager, repo), user, token
}

func runAuthed(mw *AuthMiddleware, token string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	chain := handler
	for i := len(extra) - 1; i >= 0; i-- {
		chain = extra[i](chain)
	}
	chain = mw.Authenticate()(chain)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := chain(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw, user, token := newAuthFixture(t, entities.RoleCandidate)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	handler := mw.Authenticate()(func(c echo.Context) error {
		id, ok := GetUserID(c)
		if !ok {
			t.Fatal("user id missing from context")
		}
		gotID = id
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotID != user.ID {
		t.Errorf("context user id = %s, want %s", gotID, user.ID)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	mw, _, _ := newAuthFixture(t, entities.RoleCandidate)
	rec := runAuthed(mw, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	mw, _, _ := newAuthFixture(t, entities.RoleCandidate)
	rec := runAuthed(mw, "made-up-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Minute)
	repo := &stubUserRepo{users: map[uuid.UUID]*entities.User{}}
	mw := NewAuthMiddleware(manager, repo)

	token, err := manager.Generate(uuid.New(), "ghost@talentlens.io", "candidate")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	rec := runAuthed(mw, token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_CookieFallback(t *testing.T) {
	mw, _, token := newAuthFixture(t, entities.RoleCandidate)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthenticate_DeactivatedAccount(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Minute)
	user := entities.NewUser("gone@talentlens.io", "Former User", entities.RoleCandidate)
	user.IsActive = false
	repo := &stubUserRepo{users: map[uuid.UUID]*entities.User{user.ID: user}}
	mw := NewAuthMiddleware(manager, repo)

	token, err := manager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	rec := runAuthed(mw, token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	mw, _, token := newAuthFixture(t, entities.RoleCandidate)

	rec := runAuthed(mw, token, mw.RequireRole(entities.RoleRecruiter, entities.RoleAdmin))
	if rec.Code != http.StatusForbidden {
		t.Errorf("candidate hitting recruiter route: status = %d, want 403", rec.Code)
	}

	rec = runAuthed(mw, token, mw.RequireRole(entities.RoleCandidate))
	if rec.Code != http.StatusOK {
		t.Errorf("candidate hitting candidate route: status = %d, want 200", rec.Code)
	}
}
