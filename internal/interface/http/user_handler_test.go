package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/application"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/middleware"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/helpers"
)

func userTestRouter(t *testing.T, repo *memUserRepo) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := helpers.NewLogger("test", "development")
	jwt := helpers.NewJWTManager("secret", time.Hour)
	svc := application.NewUserService(repo, logger)
	h := NewUserHandler(svc, logger)
	th := NewTokenHandler(jwt, svc, logger)

	r := gin.New()
	auth := middleware.Auth(jwt)
	admin := middleware.AuthAdmin(jwt, repo)
	r.POST("/jwt", th.Issue)
	r.POST("/users", h.Create)
	r.GET("/users/role", h.Role)
	r.GET("/users", auth, h.List)
	r.GET("/users/admin/:email", auth, h.CheckAdmin)
	r.PATCH("/users/admin/:id", append(admin, h.MakeAdmin)...)
	r.PATCH("/users/teacher/:id", h.MakeTeacher)
	r.DELETE("/users/:id", append(admin, h.Delete)...)
	return r, jwt
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserRegistrationFlow(t *testing.T) {
	r, _ := userTestRouter(t, newMemUserRepo())

	// first registration inserts
	w := doJSON(r, http.MethodPost, "/users", "", gin.H{"email": "a@b.com", "name": "A"})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotNil(t, created["insertedId"])

	// second registration is a no-op
	w = doJSON(r, http.MethodPost, "/users", "", gin.H{"email": "a@b.com", "name": "B"})
	assert.Equal(t, http.StatusOK, w.Code)
	var dup map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dup))
	assert.Equal(t, "User already exists", dup["message"])
	assert.Nil(t, dup["insertedId"])

	// fresh registrations default to the user role
	w = doJSON(r, http.MethodGet, "/users/role?email=a@b.com", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"user"}`, w.Body.String())
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	r, _ := userTestRouter(t, newMemUserRepo())

	w := doJSON(r, http.MethodPost, "/users", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleQueryDefaultsForUnknownEmail(t *testing.T) {
	r, _ := userTestRouter(t, newMemUserRepo())

	w := doJSON(r, http.MethodGet, "/users/role?email=ghost@b.com", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"user"}`, w.Body.String())
}

func TestTokenIssuanceRequiresRegisteredEmail(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := userTestRouter(t, repo)

	// unknown principal gets the uniform 401
	w := doJSON(r, http.MethodPost, "/jwt", "", gin.H{"email": "ghost@b.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// registered principal gets a token carrying the claims
	w = doJSON(r, http.MethodPost, "/users", "", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/jwt", "", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestCheckAdminSelfMatchOnly(t *testing.T) {
	repo := newMemUserRepo()
	r, jwt := userTestRouter(t, repo)
	_, err := repo.Insert(nil, &entity.User{Email: "a@b.com", Role: entity.RoleUser})
	require.NoError(t, err)

	token, err := jwt.Issue(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	// own email is answerable
	w := doJSON(r, http.MethodGet, "/users/admin/a@b.com", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	// probing someone else is forbidden
	w = doJSON(r, http.MethodGet, "/users/admin/other@b.com", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())
}

func TestMakeAdminRequiresAdminCaller(t *testing.T) {
	repo := newMemUserRepo()
	r, jwt := userTestRouter(t, repo)
	_, err := repo.Insert(nil, &entity.User{Email: "admin@b.com", Role: entity.RoleAdmin})
	require.NoError(t, err)
	target := &entity.User{Email: "a@b.com", Role: entity.RoleUser}
	_, err = repo.Insert(nil, target)
	require.NoError(t, err)

	userToken, err := jwt.Issue(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)
	adminToken, err := jwt.Issue(map[string]interface{}{"email": "admin@b.com"})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPatch, "/users/admin/"+target.ID.Hex(), userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, entity.RoleUser, repo.users["a@b.com"].Role)

	w = doJSON(r, http.MethodPatch, "/users/admin/"+target.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.RoleAdmin, repo.users["a@b.com"].Role)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemUserRepo()
	r, jwt := userTestRouter(t, repo)
	_, err := repo.Insert(nil, &entity.User{Email: "admin@b.com", Role: entity.RoleAdmin})
	require.NoError(t, err)
	target := &entity.User{Email: "a@b.com", Role: entity.RoleUser}
	_, err = repo.Insert(nil, target)
	require.NoError(t, err)

	adminToken, err := jwt.Issue(map[string]interface{}{"email": "admin@b.com"})
	require.NoError(t, err)

	w := doJSON(r, http.MethodDelete, "/users/"+target.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// deleting again is a 404, not a silent 200
	w = doJSON(r, http.MethodDelete, "/users/"+target.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/users/not-a-hex-id", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
