package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/user"
	"github.com/athleteverse/api/pkg/token"
	"github.com/athleteverse/api/utils"
	"github.com/gin-gonic/gin"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uint]*user.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uint]*user.User),
		nextID:  1,
	}
}

func (r *fakeUserRepo) CreateUser(u *user.User) error {
	u.ID = r.nextID
	r.nextID++
	r.byEmail[strings.ToLower(u.Email)] = u
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*user.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*user.User, error) {
	return r.byEmail[strings.ToLower(email)], nil
}

func (r *fakeUserRepo) GetUsers(limit, offset int) ([]user.User, int64, error) {
	out := make([]user.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateUser(u *user.User) error {
	r.byID[u.ID] = u
	r.byEmail[strings.ToLower(u.Email)] = u
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryDays = 7
	return cfg
}

func setupAuthRouter(repo user.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewAuthController(repo, testConfig())
	r.POST("/auth/register", controller.Register)
	r.POST("/auth/login", controller.Login)
	r.POST("/auth/logout", controller.Logout)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == token.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterIssuesSessionCookie(t *testing.T) {
	repo := newFakeUserRepo()
	router := setupAuthRouter(repo)

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		Name:     "Dana",
		Email:    "Dana@Example.com",
		Password: "hunter2secret",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("no session cookie set")
	}
	if !cookie.HttpOnly {
		t.Errorf("session cookie must be HttpOnly")
	}
	claims, err := token.ValidateJWT(cookie.Value, "test-secret")
	if err != nil {
		t.Fatalf("cookie does not carry a valid token: %v", err)
	}
	if claims.Email != "dana@example.com" {
		t.Errorf("email not lowercased in claims: %q", claims.Email)
	}

	stored, _ := repo.GetUserByEmail("dana@example.com")
	if stored == nil {
		t.Fatalf("user not stored under lowercased email")
	}
	if stored.Password == "hunter2secret" {
		t.Fatalf("password stored in plaintext")
	}
	if !utils.CheckPassword(stored.Password, "hunter2secret") {
		t.Fatalf("stored hash does not verify against the original password")
	}
	if !strings.Contains(w.Body.String(), `"email"`) || strings.Contains(w.Body.String(), stored.Password) {
		t.Fatalf("response must include the user but never the password hash: %s", w.Body.String())
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	router := setupAuthRouter(repo)

	first := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "hunter2secret",
	})
	if first.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", first.Code)
	}

	second := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Other", Email: "DANA@example.com", Password: "differentpass",
	})
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate register: got %d, want 409", second.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	router := setupAuthRouter(newFakeUserRepo())

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Dana", Email: "not-an-email", Password: "hunter2secret",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid email: got %d, want 400", w.Code)
	}

	w = postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password: got %d, want 400", w.Code)
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	router := setupAuthRouter(repo)
	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "hunter2secret",
	})

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "dana@example.com", Password: "hunter2secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}
	if sessionCookie(w) == nil {
		t.Fatalf("login did not set a session cookie")
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailureUniformity(t *testing.T) {
	repo := newFakeUserRepo()
	router := setupAuthRouter(repo)
	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "hunter2secret",
	})

	unknown := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "ghost@example.com", Password: "hunter2secret",
	})
	wrongPass := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "dana@example.com", Password: "wrongpassword",
	})

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("failure bodies differ:\n%s\n%s", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := setupAuthRouter(newFakeUserRepo())

	w := postJSON(t, router, "/auth/logout", gin.H{})
	if w.Code != http.StatusOK {
		t.Fatalf("logout: got %d", w.Code)
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("logout must rewrite the session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("logout cookie must be empty and expired, got value %q maxage %d", cookie.Value, cookie.MaxAge)
	}
}
