package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authDelivery "github.com/voknelis/XSched/internal/auth/delivery"
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	authdto "github.com/voknelis/XSched/internal/auth/dto"
	authrepo "github.com/voknelis/XSched/internal/auth/repository"
	"github.com/voknelis/XSched/internal/auth/token"
	authUsecase "github.com/voknelis/XSched/internal/auth/usecase"
	"github.com/voknelis/XSched/internal/profile/domain"
	profilerepo "github.com/voknelis/XSched/internal/profile/repository"
	"github.com/voknelis/XSched/internal/profile/usecase"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	userRepo authrepo.UserRepository
	authUc   authUsecase.AuthUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshSession{},
		&domain.UserProfile{},
	))

	userRepo := authrepo.NewUserRepository(db)
	sessionRepo := authrepo.NewSessionRepository(db)
	tokens := token.NewManager(token.Config{
		Secret:   "test-secret",
		Issuer:   "https://localhost:7143",
		Audience: "https://localhost:7143",
	})
	authUc := authUsecase.NewAuthUsecase(userRepo, sessionRepo, tokens)
	handler := NewProfileHandler(usecase.NewProfileUsecase(profilerepo.NewGormProfileRepository(db)))

	r := gin.New()
	profiles := r.Group("/odata/profiles")
	profiles.Use(authDelivery.AuthMiddleware(authUc))
	{
		profiles.GET("", handler.GetUserProfiles)
		profiles.GET("/:profileId", handler.GetUserProfile)
		profiles.POST("", handler.CreateUserProfile)
		profiles.PUT("/:profileId", handler.UpsertUserProfile)
		profiles.PATCH("/:profileId", handler.PartiallyUpdateUserProfile)
		profiles.DELETE("/:profileId", handler.DeleteUserProfile)
	}

	return &testServer{router: r, db: db, userRepo: userRepo, authUc: authUc}
}

// loginAs provisions a user and returns a bearer token for it.
func (s *testServer) loginAs(t *testing.T, username string) string {
	t.Helper()

	user, err := s.authUc.Register(&authdto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	response, err := s.authUc.Login(user, authdto.ClientMeta{Fingerprint: "111111"})
	require.NoError(t, err)
	return response.AccessToken
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
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
	req.Header.Set("Authorization", "Bearer "+bearer)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeProfile(t *testing.T, w *httptest.ResponseRecorder) domain.UserProfile {
	t.Helper()

	var profile domain.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	return profile
}

func TestCreateAndListProfiles(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"title": "Work", "isDefault": true})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeProfile(t, w)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsDefault)

	w = s.do(t, http.MethodGet, "/odata/profiles", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profiles []domain.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	assert.Len(t, profiles, 1)
}

func TestCreateProfile_MissingTitle(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"isDefault": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodGet, "/odata/profiles/missing", bearer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutProfile_CreatesWhenMissing(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPut, "/odata/profiles/profile-42", bearer, gin.H{"title": "Work"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "profile-42", decodeProfile(t, w).ID)

	w = s.do(t, http.MethodGet, "/odata/profiles/profile-42", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPutProfile_ReplacesOwned(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"title": "Work"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeProfile(t, w)

	w = s.do(t, http.MethodPut, "/odata/profiles/"+created.ID, bearer, gin.H{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decodeProfile(t, w).Title)
}

func TestPutProfile_ForeignForbidden(t *testing.T) {
	s := newTestServer(t)
	aliceBearer := s.loginAs(t, "alice")
	bobBearer := s.loginAs(t, "bob")

	w := s.do(t, http.MethodPost, "/odata/profiles", bobBearer, gin.H{"title": "Secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	bobProfile := decodeProfile(t, w)

	w = s.do(t, http.MethodPut, "/odata/profiles/"+bobProfile.ID, aliceBearer, gin.H{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Requested profile belongs to another user")

	// Untouched for its owner.
	w = s.do(t, http.MethodGet, "/odata/profiles/"+bobProfile.ID, bobBearer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Secret", decodeProfile(t, w).Title)
}

func TestPatchProfile(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"title": "Work", "isDefault": true})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeProfile(t, w)

	w = s.do(t, http.MethodPatch, "/odata/profiles/"+created.ID, bearer, gin.H{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decodeProfile(t, w)
	assert.Equal(t, "Renamed", patched.Title)
	assert.True(t, patched.IsDefault, "untouched fields keep their value")
}

func TestPatchProfile_ForeignForbidden(t *testing.T) {
	s := newTestServer(t)
	aliceBearer := s.loginAs(t, "alice")
	bobBearer := s.loginAs(t, "bob")

	w := s.do(t, http.MethodPost, "/odata/profiles", bobBearer, gin.H{"title": "Secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	bobProfile := decodeProfile(t, w)

	w = s.do(t, http.MethodPatch, "/odata/profiles/"+bobProfile.ID, aliceBearer, gin.H{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteProfile(t *testing.T) {
	s := newTestServer(t)
	bearer := s.loginAs(t, "alice")

	w := s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"title": "Default", "isDefault": true})
	require.Equal(t, http.StatusCreated, w.Code)
	def := decodeProfile(t, w)

	w = s.do(t, http.MethodPost, "/odata/profiles", bearer, gin.H{"title": "Other"})
	require.Equal(t, http.StatusCreated, w.Code)
	other := decodeProfile(t, w)

	// The default profile is protected.
	w = s.do(t, http.MethodDelete, "/odata/profiles/"+def.ID, bearer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Default profile cannot be deleted")

	w = s.do(t, http.MethodDelete, "/odata/profiles/"+other.ID, bearer, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProfiles_RequireAuth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/odata/profiles", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
