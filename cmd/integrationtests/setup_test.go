package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"mazad-engine/internal/engine"
	"mazad-engine/internal/events"
	model "mazad-engine/internal/models"
	"mazad-engine/internal/repository"
	"mazad-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SetupTestRouterWithAuctions initializes the full HTTP stack over an
// in-memory store seeded with the given auctions.
func SetupTestRouterWithAuctions(t *testing.T, auctions ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, auction := range auctions {
		store.AddAuction(auction)
	}

	hub := events.NewHub()
	t.Cleanup(hub.Close)

	eng := engine.New(store, hub, engine.Options{})
	return server.SetupRouter(eng, hub)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
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
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// activeAuction builds a live auction ending well outside the extension
// window.
func activeAuction(id string) model.Auction {
	return model.Auction{
		ID:            id,
		Title:         "ساعة فاخرة",
		Category:      "watches",
		SellerID:      "seller1",
		StartingPrice: decimal.NewFromInt(1000),
		BidIncrement:  decimal.NewFromInt(100),
		EndTime:       time.Now().UTC().Add(24 * time.Hour),
		Status:        model.StatusActive,
	}
}
