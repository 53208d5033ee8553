package middleware

import (
	"biscenic-store/config"
	"biscenic-store/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if config.AppConfig == nil {
		config.AppConfig = &config.Config{SessionTTL: time.Hour}
	}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func adminEngine(store *services.SessionStore) *gin.Engine {
	engine := gin.New()
	engine.Use(SessionMiddleware(store))

	admin := engine.Group("/admin")
	admin.Use(AdminAuthMiddleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"token": AdminToken(c)})
	})
	return engine
}

func TestAdminAuthRequiresToken(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := adminEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthAcceptsSessionToken(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := adminEngine(store)

	session := store.Create()
	token := signedToken(t, time.Now().Add(time.Hour))
	session.SetToken(token)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.ID})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), token)
}

func TestAdminAuthAcceptsBearerHeader(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := adminEngine(store)

	token := signedToken(t, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthPurgesExpiredToken(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := adminEngine(store)

	session := store.Create()
	session.SetToken(signedToken(t, time.Now().Add(-time.Minute)))

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.ID})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, session.Token(), "an expired token must be purged from the session")
}

func TestAdminAuthRejectsMalformedToken(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := adminEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddlewareSetsCookie(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	engine := gin.New()
	engine.Use(SessionMiddleware(store))
	engine.GET("/", func(c *gin.Context) {
		session := GetSession(c)
		require.NotNil(t, session)
		c.JSON(200, gin.H{"id": session.ID})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "a new visitor must get a session cookie")

	_, ok := store.Get(sessionCookie.Value)
	assert.True(t, ok)
}
