package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mazad-engine/internal/auctionerrors"
	model "mazad-engine/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubEventSource struct{}

func (stubEventSource) Subscribe(string) (<-chan model.AuctionEvent, func()) {
	ch := make(chan model.AuctionEvent)
	return ch, func() {}
}

func newTestRouter(service AuctionServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuctionHandler(service, stubEventSource{})

	auctions := router.Group("/auctions")
	auctions.GET("/:auction_id", h.GetAuctionHandler)
	auctions.GET("/:auction_id/bids", h.GetBidsHandler)
	auctions.POST("/:auction_id/bids", h.PlaceBidHandler)
	auctions.PUT("/:auction_id/autobid", h.SetAutoBidHandler)
	auctions.DELETE("/:auction_id/autobid/:user_id", h.CancelAutoBidHandler)
	auctions.POST("/:auction_id/close", h.CloseAuctionHandler)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
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
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder, parsed
}

func sampleBidResult() model.BidResult {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return model.BidResult{
		Bid: model.Bid{
			BidID:     "bid1",
			AuctionID: "auction1",
			BidderID:  "user1",
			Amount:    decimal.NewFromInt(1200),
			CreatedAt: created,
		},
		CurrentBid:      decimal.NewFromInt(1200),
		HighestBidderID: "user1",
		EndTime:         created.Add(24 * time.Hour),
		Extended:        false,
	}
}

func TestPlaceBidHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().
		PlaceBid(gomock.Any(), "auction1", "user1", decimal.NewFromInt(1200)).
		Return(sampleBidResult(), nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodPost, "/auctions/auction1/bids", map[string]any{
		"bidder_id": "user1",
		"amount":    1200,
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Equal(t, "bid placed successfully", parsed["message"])

	data := parsed["data"].(map[string]any)
	require.Equal(t, "1200", data["current_bid"])
	require.Equal(t, "user1", data["highest_bidder_id"])

	bid := data["bid"].(map[string]any)
	require.Equal(t, "bid1", bid["bid_id"])
	require.Equal(t, "1200", bid["amount"])
}

func TestPlaceBidHandler_TooLowCarriesMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().
		PlaceBid(gomock.Any(), "auction1", "user1", gomock.Any()).
		Return(model.BidResult{}, &auctionerrors.BidTooLowError{Minimum: decimal.NewFromInt(1300)})

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodPost, "/auctions/auction1/bids", map[string]any{
		"bidder_id": "user1",
		"amount":    500,
	})

	require.Equal(t, http.StatusConflict, recorder.Code)
	require.Equal(t, "bid amount too low, minimum is 1300", parsed["message"])
}

func TestPlaceBidHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
	}{
		{"auction_not_found", auctionerrors.ErrAuctionNotFound, http.StatusNotFound},
		{"auction_not_active", auctionerrors.ErrAuctionNotActive, http.StatusConflict},
		{"seller_bid", auctionerrors.ErrSellerCannotBid, http.StatusForbidden},
		{"contention", auctionerrors.ErrRetryLater, http.StatusServiceUnavailable},
		{"invalid", auctionerrors.ErrInvalidBid, http.StatusBadRequest},
		{"internal", errors.New("ledger exploded"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockAuctionServiceInterface(ctrl)
			service.EXPECT().
				PlaceBid(gomock.Any(), "auction1", "user1", gomock.Any()).
				Return(model.BidResult{}, tc.serviceError)

			router := newTestRouter(service)
			recorder, _ := performRequest(t, router, http.MethodPost, "/auctions/auction1/bids", map[string]any{
				"bidder_id": "user1",
				"amount":    1200,
			})
			require.Equal(t, tc.expectedStatus, recorder.Code)
		})
	}
}

func TestPlaceBidHandler_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Service must not be invoked on a binding failure.
	service := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/bids", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPlaceBidHandler_MissingBidderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(service)

	recorder, _ := performRequest(t, router, http.MethodPost, "/auctions/auction1/bids", map[string]any{
		"amount": 1200,
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSetAutoBidHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().
		SetAutoBid(gomock.Any(), "auction1", "user1", decimal.NewFromInt(5000)).
		Return(model.AutoBid{
			ID:           "ab1",
			AuctionID:    "auction1",
			UserID:       "user1",
			MaxBidAmount: decimal.NewFromInt(5000),
			IsActive:     true,
		}, nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodPut, "/auctions/auction1/autobid", map[string]any{
		"user_id":        "user1",
		"max_bid_amount": 5000,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	data := parsed["data"].(map[string]any)
	require.Equal(t, "ab1", data["id"])
	require.Equal(t, "5000", data["max_bid_amount"])
	require.Equal(t, true, data["is_active"])
}

func TestSetAutoBidHandler_CeilingTooLow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().
		SetAutoBid(gomock.Any(), "auction1", "user1", gomock.Any()).
		Return(model.AutoBid{}, &auctionerrors.BidTooLowError{Minimum: decimal.NewFromInt(1300)})

	router := newTestRouter(service)
	recorder, _ := performRequest(t, router, http.MethodPut, "/auctions/auction1/autobid", map[string]any{
		"user_id":        "user1",
		"max_bid_amount": 100,
	})
	require.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCancelAutoBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().CancelAutoBid(gomock.Any(), "auction1", "user1").Return(nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodDelete, "/auctions/auction1/autobid/user1", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "auto-bid cancelled successfully", parsed["message"])
}

func TestCancelAutoBidHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().
		CancelAutoBid(gomock.Any(), "auction1", "ghost").
		Return(auctionerrors.ErrAutoBidNotFound)

	router := newTestRouter(service)
	recorder, _ := performRequest(t, router, http.MethodDelete, "/auctions/auction1/autobid/ghost", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCloseAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().CloseIfExpired(gomock.Any(), "auction1").Return(nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodPost, "/auctions/auction1/close", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "close evaluated", parsed["message"])
}

func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().GetAuction("auction1").Return(model.Auction{
		ID:              "auction1",
		Title:           "ساعة رولكس",
		SellerID:        "seller1",
		StartingPrice:   decimal.NewFromInt(1000),
		BidIncrement:    decimal.NewFromInt(100),
		CurrentBid:      decimal.NewNullDecimal(decimal.NewFromInt(1500)),
		HighestBidderID: "user1",
		Status:          model.StatusActive,
	}, nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodGet, "/auctions/auction1", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := parsed["data"].(map[string]any)
	require.Equal(t, "auction1", data["id"])
	require.Equal(t, "user1", data["highest_bidder_id"])
	// The hidden reserve must never appear on the wire.
	require.NotContains(t, data, "reserve_price")
}

func TestGetBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().ListBids("auction1").Return([]model.Bid{
		{BidID: "bid1", AuctionID: "auction1", BidderID: "user1", Amount: decimal.NewFromInt(1000), CreatedAt: created},
		{BidID: "bid2", AuctionID: "auction1", BidderID: "user2", Amount: decimal.NewFromInt(1100), CreatedAt: created.Add(time.Second), IsAutoBid: true},
	}, nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodGet, "/auctions/auction1/bids", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := parsed["data"].([]any)
	require.Len(t, data, 2)

	second := data[1].(map[string]any)
	require.Equal(t, "bid2", second["bid_id"])
	require.Equal(t, "1100", second["amount"])
	require.Equal(t, true, second["is_autobid"])
}

func TestGetBidsHandler_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockAuctionServiceInterface(ctrl)
	service.EXPECT().ListBids("auction1").Return(nil, nil)

	router := newTestRouter(service)
	recorder, parsed := performRequest(t, router, http.MethodGet, "/auctions/auction1/bids", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, parsed["data"].([]any), 0)
}
