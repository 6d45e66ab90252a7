package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
	"storefront/internal/core/auth"
	"storefront/internal/core/product"
	"storefront/internal/domain"
	"storefront/internal/transport/rest"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}

	user.ID = uuid.NewString()
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == userID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memProductRepo struct {
	mu       sync.Mutex
	products []domain.Product
}

func (r *memProductRepo) Create(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	r.products = append(r.products, *p)
	return nil
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func (s *memSessionStore) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

type testEnv struct {
	router   http.Handler
	products *memProductRepo
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	userRepo := &memUserRepo{users: make(map[string]*domain.User)}
	productRepo := &memProductRepo{}
	sessionStore := &memSessionStore{sessions: make(map[string]domain.Session)}

	authService := auth.NewService(userRepo, sessionStore, "test-secret", time.Hour)
	productService := product.NewService(productRepo)

	cfg := &config.Config{Address: ":0", JWTSecret: "test-secret", JWTExpiry: time.Hour}

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService),
		Product: rest.NewProductHandler(productService),

		AuthService: authService,
	})

	return &testEnv{router: router, products: productRepo}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func loginToken(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/token", domain.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := decodeBody(t, w)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
