package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cafetaria/internal/auth"
	"cafetaria/internal/domain"
	"cafetaria/internal/store"
	"cafetaria/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Role{}, &domain.Credential{}, &domain.Customer{}, &domain.Admin{}))
	return db
}

// newTestRouter mounts the handlers without auth middleware and without redis
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := auth.NewService(db, token.NewIssuer("test-secret", time.Hour))

	r := gin.New()
	r.POST("/auth/register-customer", RegisterCustomerHandler(svc, nil))
	r.POST("/auth/register-admin", RegisterAdminHandler(svc, nil))
	r.POST("/auth/login", LoginHandler(svc))
	r.GET("/customers", ListCustomersHandler(db, nil))
	r.GET("/customers/:id", GetCustomerHandler(db, nil))
	r.DELETE("/customers/:id", DeleteCustomerHandler(db, nil))
	r.GET("/admins", ListAdminsHandler(db, nil))
	r.GET("/admins/:id", GetAdminHandler(db, nil))
	r.DELETE("/admins/:id", DeleteAdminHandler(db, nil))
	return r, db
}

// envelope mirrors CommonResponse with a raw payload for per-test decoding
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func registerCustomerBody(username string) gin.H {
	return gin.H{
		"username":     username,
		"password":     "s3cret-pass",
		"customerName": "Dewi Lestari",
		"address":      "Jl. Melati 1",
		"mobilePhone":  "081234567890",
		"email":        "dewi@example.com",
	}
}

func TestRegisterCustomerEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/auth/register-customer", registerCustomerBody("Dewi"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	var data RegisterResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "dewi", data.Username)
	assert.Equal(t, "CUSTOMER", data.Role)

	// Duplicate username: conflict
	w, env = doJSON(t, r, http.MethodPost, "/auth/register-customer", registerCustomerBody("dewi"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusConflict, env.StatusCode)
}

func TestRegisterCustomerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// Missing required fields
	w, _ := doJSON(t, r, http.MethodPost, "/auth/register-customer", gin.H{"username": "dewi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	body := registerCustomerBody("dewi")
	body["email"] = "not-an-email"
	w, _ = doJSON(t, r, http.MethodPost, "/auth/register-customer", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short
	body = registerCustomerBody("dewi")
	body["password"] = "short"
	w, _ = doJSON(t, r, http.MethodPost, "/auth/register-customer", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterAdminEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/auth/register-admin", gin.H{
		"username":    "Manager",
		"password":    "s3cret-pass",
		"email":       "manager@example.com",
		"mobilePhone": "0811111111",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data RegisterResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "manager", data.Username)
	assert.Equal(t, "ADMIN", data.Role)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/register-customer", registerCustomerBody("dewi"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "dewi", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, w.Code)

	var data LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "CUSTOMER", data.Role)

	// Wrong password and unknown username both come back as 401
	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "dewi", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "nobody", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Missing fields fail request validation
	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "dewi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCustomersFieldMapping(t *testing.T) {
	r, db := newTestRouter(t)

	customer := domain.Customer{
		CredentialID: "cred-1",
		Name:         "Dewi Lestari",
		Address:      "Jl. Melati 1",
		MobilePhone:  "081234567890",
		Email:        "dewi@example.com",
	}
	require.NoError(t, store.NewCustomerStore(db).Create(context.Background(), &customer))

	w, env := doJSON(t, r, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data []CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	// Stored name maps to customerName, mobile_phone maps to phone
	assert.Equal(t, customer.ID, data[0].ID)
	assert.Equal(t, "Dewi Lestari", data[0].CustomerName)
	assert.Equal(t, "081234567890", data[0].Phone)
	assert.Equal(t, "dewi@example.com", data[0].Email)
}

func TestGetCustomerEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	customer := domain.Customer{CredentialID: "cred-1", Name: "Dewi"}
	require.NoError(t, store.NewCustomerStore(db).Create(context.Background(), &customer))

	w, env := doJSON(t, r, http.MethodGet, "/customers/"+customer.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Dewi", data.CustomerName)

	w, _ = doJSON(t, r, http.MethodGet, "/customers/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomerEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	customer := domain.Customer{CredentialID: "cred-1", Name: "Dewi"}
	require.NoError(t, store.NewCustomerStore(db).Create(context.Background(), &customer))

	w, _ := doJSON(t, r, http.MethodDelete, "/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Gone after deletion
	w, _ = doJSON(t, r, http.MethodGet, "/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting an unknown id reports not found
	w, _ = doJSON(t, r, http.MethodDelete, "/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminEndpoints(t *testing.T) {
	r, db := newTestRouter(t)

	admin := domain.Admin{CredentialID: "cred-1", Name: "manager", Email: "manager@example.com", Phone: "0811"}
	require.NoError(t, store.NewAdminStore(db).Create(context.Background(), &admin))

	w, env := doJSON(t, r, http.MethodGet, "/admins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []AdminResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "manager", list[0].Name)

	w, _ = doJSON(t, r, http.MethodGet, "/admins/"+admin.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/admins/"+admin.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/admins/"+admin.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
