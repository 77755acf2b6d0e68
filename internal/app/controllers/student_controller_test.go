package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studenthub/internal/app/controllers"
	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/app/repositories"
	"github.com/campushq/studenthub/internal/app/routes"
	"github.com/campushq/studenthub/internal/app/services"
	"github.com/campushq/studenthub/internal/config"
	"github.com/campushq/studenthub/internal/middleware"
	"github.com/campushq/studenthub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router     *gin.Engine
	jwtService *auth.JWTService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	lgr := zerolog.Nop()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key-for-unit-tests",
		TokenExpiration: time.Hour,
		Issuer:          "studenthub.test",
		Audience:        "studenthub-api-test",
	})

	userRepo, err := repositories.NewInMemoryUserRepository([]config.CredentialEntry{
		{Username: "admin", Password: "admin123", Roles: []string{"Admin"}},
		{Username: "moderator", Password: "mod123", Roles: []string{"Moderator"}},
		{Username: "reader", Password: "read123", Roles: []string{"ReadOnly"}},
	})
	require.NoError(t, err)

	studentRepo := repositories.NewMemoryStudentRepository()
	studentService := services.NewStudentService(studentRepo, lgr)
	authService := services.NewAuthService(userRepo, jwtService, lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewStudentController(studentService, lgr),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testAPI{router: router, jwtService: jwtService}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := a.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func validStudentBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Jane Doe",
		"isGraduated": false,
		"courses":     []string{"Algorithms", "Databases"},
		"gender":      "Female",
		"age":         21,
	}
}

func decodeStudent(t *testing.T, body []byte) models.Student {
	t.Helper()
	var resp struct {
		Data models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Data
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		token := api.login(t, "admin", "admin123")

		claims, err := api.jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"Admin"}, claims.Roles)
	})

	t.Run("wrong password returns 401 without a token", func(t *testing.T) {
		rec := api.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"token"`)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		rec := api.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStudentCRUDFlow(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin", "admin123")

	// Create
	rec := api.request(t, http.MethodPost, "/api/v1/students", adminToken, validStudentBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeStudent(t, rec.Body.Bytes())
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane Doe", created.Name)

	// Round-trip: fetch it back and compare field for field
	rec = api.request(t, http.MethodGet, "/api/v1/students/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeStudent(t, rec.Body.Bytes())
	assert.Equal(t, created, fetched)

	// Update
	updated := validStudentBody()
	updated["name"] = "Janet Doe"
	updated["isGraduated"] = true
	rec = api.request(t, http.MethodPut, "/api/v1/students/"+created.ID, adminToken, updated)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.request(t, http.MethodGet, "/api/v1/students/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched = decodeStudent(t, rec.Body.Bytes())
	assert.Equal(t, "Janet Doe", fetched.Name)
	assert.True(t, fetched.IsGraduated)

	// List
	rec = api.request(t, http.MethodGet, "/api/v1/students", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Data []models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 1)

	// Delete, then fetch returns 404
	rec = api.request(t, http.MethodDelete, "/api/v1/students/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.request(t, http.MethodGet, "/api/v1/students/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentValidationResponses(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin", "admin123")

	t.Run("invalid payload returns the violation list", func(t *testing.T) {
		body := validStudentBody()
		body["age"] = 9
		body["courses"] = []string{}

		rec := api.request(t, http.MethodPost, "/api/v1/students", adminToken, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "age must be between 10 and 120")
		assert.Contains(t, rec.Body.String(), "at least one course is required")
	})

	t.Run("malformed id returns 400 before any lookup", func(t *testing.T) {
		rec := api.request(t, http.MethodGet, "/api/v1/students/not-an-id", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update of missing id returns 404", func(t *testing.T) {
		rec := api.request(t, http.MethodPut, "/api/v1/students/662f5e1a9d3f4c2b8a1d0e7f", adminToken, validStudentBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRoleTiers(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin", "admin123")
	moderatorToken := api.login(t, "moderator", "mod123")
	readerToken := api.login(t, "reader", "read123")

	rec := api.request(t, http.MethodPost, "/api/v1/students", adminToken, validStudentBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeStudent(t, rec.Body.Bytes())

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"reader can list", http.MethodGet, "/api/v1/students", readerToken, nil, http.StatusOK},
		{"reader cannot create", http.MethodPost, "/api/v1/students", readerToken, validStudentBody(), http.StatusForbidden},
		{"moderator can create", http.MethodPost, "/api/v1/students", moderatorToken, validStudentBody(), http.StatusCreated},
		{"moderator can update", http.MethodPut, "/api/v1/students/" + created.ID, moderatorToken, validStudentBody(), http.StatusOK},
		{"moderator cannot delete", http.MethodDelete, "/api/v1/students/" + created.ID, moderatorToken, nil, http.StatusForbidden},
		{"admin can delete", http.MethodDelete, "/api/v1/students/" + created.ID, adminToken, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.request(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAuthenticationRequired(t *testing.T) {
	api := newTestAPI(t)

	t.Run("missing token", func(t *testing.T) {
		rec := api.request(t, http.MethodGet, "/api/v1/students", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := api.request(t, http.MethodGet, "/api/v1/students", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "another-secret",
			TokenExpiration: time.Hour,
			Issuer:          "studenthub.test",
			Audience:        "studenthub-api-test",
		})
		token, _, err := other.GenerateToken(&models.User{
			Username: "admin",
			Roles:    []models.Role{models.RoleAdmin},
		})
		require.NoError(t, err)

		rec := api.request(t, http.MethodGet, "/api/v1/students", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStudentJSONRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin", "admin123")

	body := map[string]interface{}{
		"name":        "Grace Hopper",
		"isGraduated": true,
		"courses":     []string{"Compilers"},
		"gender":      "Female",
		"age":         37,
	}

	rec := api.request(t, http.MethodPost, "/api/v1/students", adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeStudent(t, rec.Body.Bytes())

	// Every field except the store-assigned id matches the input.
	assert.Equal(t, body["name"], created.Name)
	assert.Equal(t, body["isGraduated"], created.IsGraduated)
	assert.Equal(t, []string{"Compilers"}, created.Courses)
	assert.Equal(t, models.Gender(fmt.Sprint(body["gender"])), created.Gender)
	assert.Equal(t, 37, created.Age)
	assert.NotEmpty(t, created.ID)
}
