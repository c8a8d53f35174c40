package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"job_portal/internal/middleware"
	"job_portal/internal/model"
	"job_portal/internal/repository"
	"job_portal/internal/service"
	"job_portal/internal/session"
	"job_portal/internal/utils"
)

// Stateful in-memory repositories so handler tests exercise the full
// stack: router, middleware, services, and the real session store.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	f.seq++
	user.ID = f.seq
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[username]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	seq       int
	companies []model.Company
}

func (f *fakeCompanyRepo) FindAll(_ context.Context) ([]model.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Company, len(f.companies))
	copy(out, f.companies)
	return out, nil
}

func (f *fakeCompanyRepo) FindAllNewestFirst(_ context.Context) ([]model.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Company, len(f.companies))
	copy(out, f.companies)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *model.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	company.ID = f.seq
	f.companies = append(f.companies, *company)
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *model.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.companies {
		if f.companies[i].ID == company.ID {
			f.companies[i] = *company
			return nil
		}
	}
	return nil // missing id is a silent no-op
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.companies[:0]
	for _, c := range f.companies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.companies = kept
	return nil
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	seq       int
	apps      []model.Application
	companies *fakeCompanyRepo
}

func (f *fakeApplicationRepo) Exists(_ context.Context, userID, jobID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.UserID == app.UserID && a.JobID == app.JobID {
			return repository.ErrDuplicate
		}
	}
	f.seq++
	app.ID = f.seq
	// Strictly increasing timestamps so ordering assertions are stable.
	app.AppliedAt = time.Now().Add(time.Duration(f.seq) * time.Minute)
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeApplicationRepo) FindByUser(_ context.Context, userID int) ([]model.UserApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.UserApplication, 0)
	for _, a := range f.apps {
		if a.UserID != userID {
			continue
		}
		row := model.UserApplication{JobID: a.JobID, AppliedAt: a.AppliedAt}
		for _, c := range f.companies.companies {
			if c.ID == a.JobID {
				row.Company = c.Company
				row.Image = c.Image
				row.Type = c.Type
				row.Address = c.Address
				row.Salary = c.Salary
				row.Detail = c.Detail
				break
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

type testEnv struct {
	router    *gin.Engine
	users     *fakeUserRepo
	companies *fakeCompanyRepo
	apps      *fakeApplicationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUserRepo()
	companies := &fakeCompanyRepo{}
	apps := &fakeApplicationRepo{companies: companies}

	tokenUtil := utils.NewTokenUtil("test-secret", session.TTL)
	authService := service.NewAuthService(users, session.NewMemoryStore(), tokenUtil)
	jobService := service.NewJobService(companies, apps)

	log := zap.NewNop()
	authHandler := NewAuthHandler(authService, log)
	jobHandler := NewJobHandler(jobService, log)

	router := gin.New()
	api := router.Group("/api")
	authHandler.RegisterAuthRoutes(api)
	jobHandler.RegisterJobRoutes(api, middleware.SessionAuthMiddleware(authService), middleware.AdminMiddleware())

	return &testEnv{router: router, users: users, companies: companies, apps: apps}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// register + login helpers used across tests

func (e *testEnv) register(t *testing.T, username, password, role string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/register", gin.H{"username": username, "password": password, "role": role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/user_login", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}
