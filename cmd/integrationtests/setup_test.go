package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"service-market/internal/auction"
	"service-market/internal/auth"
	"service-market/internal/booking"
	model "service-market/internal/models"
	"service-market/internal/notify"
	"service-market/internal/repository"
	"service-market/internal/server"
)

var testSecret = []byte("integration-test-secret")

// SetupTestRouter initializes the full stack with an in-memory repository
// for integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	hub := notify.NewHub()
	broadcaster := notify.NewBroadcaster(hub)
	ledger := auction.NewLedger(repo, broadcaster)
	bookingSvc := booking.NewService(repo, broadcaster)
	ws := notify.NewWSHandler(hub, bookingSvc)

	router := server.SetupRouter(ledger, bookingSvc, ws, testSecret)
	return router, repo
}

// SetupTestRouterWithAuctions initializes the router and seeds the repo
// with auctions.
func SetupTestRouterWithAuctions(auctions ...model.Auction) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, a := range auctions {
		if a.Status == "" {
			a.Status = model.AuctionOpen
		}
		if err := repo.CreateAuction(a); err != nil {
			panic(err)
		}
	}
	return router, repo
}

// TokenFor signs a short-lived credential for a test user.
func TokenFor(t *testing.T, userID string, role model.Role) string {
	t.Helper()
	token, err := auth.GenerateToken(model.User{
		UserID: userID,
		Name:   "Usuario " + userID,
		Email:  userID + "@example.com",
		Role:   role,
	}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// ExecuteRequestAndParse executes an HTTP request on the given router as
// the given user and parses the response. An empty token sends the
// request unauthenticated.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
