package controllers

import (
	"biscenic-store/config"
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"biscenic-store/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		SessionTTL:     time.Hour,
		BackendTimeout: 5 * time.Second,
		MaxUploadSize:  10 * 1024 * 1024,
	}
}

// checkoutHarness wires the checkout routes against a fake payment gateway
// and returns a session whose cookie the requests carry.
type checkoutHarness struct {
	engine  *gin.Engine
	session *services.Session
	calls   *atomic.Int64
}

func newCheckoutHarness(t *testing.T, gateway http.HandlerFunc) *checkoutHarness {
	t.Helper()

	var calls atomic.Int64
	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gateway(w, r)
	})

	server := httptest.NewServer(counted)
	t.Cleanup(server.Close)

	payments := repositories.NewPaymentRepository(repositories.NewClientWithBase(server.URL, nil))
	ctrl := NewCheckoutController(payments)

	store := services.NewSessionStore(time.Hour)
	session := store.Create()

	engine := gin.New()
	engine.Use(middleware.SessionMiddleware(store))
	engine.GET("/checkout/summary", ctrl.GetSummary)
	engine.POST("/checkout/pay", ctrl.Pay)
	engine.GET("/checkout/verify", ctrl.VerifyPayment)

	return &checkoutHarness{engine: engine, session: session, calls: &calls}
}

func (h *checkoutHarness) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: h.session.ID})

	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func fillCart(session *services.Session) {
	session.Cart.Add(models.CartItem{
		ProductID: "p1",
		Name:      "Velvet Lounge Chair",
		Price:     "$1,600",
	})
}

func TestGetSummaryEmptyCart(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	w := h.do(http.MethodGet, "/checkout/summary", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), h.calls.Load())
}

func TestPayEmptyCartNeverReachesGateway(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	body := `{"first_name":"Ada","last_name":"Obi","email":"ada@example.com","phone":"08012345678"}`
	w := h.do(http.MethodPost, "/checkout/pay", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), h.calls.Load(), "a zero-amount payment must never be initialized")
}

func TestPayReturnsAuthorizationURL(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Authorization URL created",
			"data":    map[string]string{"authorization_url": "https://checkout.paystack.com/xyz"},
		})
	})
	fillCart(h.session)

	body := `{"first_name":"Ada","last_name":"Obi","email":"ada@example.com","phone":"08012345678"}`
	w := h.do(http.MethodPost, "/checkout/pay", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://checkout.paystack.com/xyz")

	// Initializing a payment does not clear the cart; only verified
	// success does.
	assert.Equal(t, 1, h.session.Cart.Len())
}

func TestVerifyFailedPaymentKeepsCart(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Verification complete",
			"data":    map[string]interface{}{"status": "failed", "reference": "ref-1"},
		})
	})
	fillCart(h.session)

	w := h.do(http.MethodGet, "/checkout/verify?reference=ref-1", "")

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, 1, h.session.Cart.Len(), "failed payment must leave the cart intact")
}

func TestVerifySuccessClearsCart(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Verification successful",
			"data":    map[string]interface{}{"status": "success", "reference": "ref-1", "amount": 172000},
		})
	})
	fillCart(h.session)

	w := h.do(http.MethodGet, "/checkout/verify?reference=ref-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, h.session.Cart.Len())
}

func TestVerifyErrorKeepsCart(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Unknown reference", "error": true})
	})
	fillCart(h.session)

	w := h.do(http.MethodGet, "/checkout/verify?reference=bogus", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, h.session.Cart.Len())
}

func TestVerifyMissingReference(t *testing.T) {
	h := newCheckoutHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	w := h.do(http.MethodGet, "/checkout/verify", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), h.calls.Load())
}
