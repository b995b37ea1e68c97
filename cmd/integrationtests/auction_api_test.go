package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"mazad-engine/services/auction/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBidEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Bid",
			request:    helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(1000)},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Below_Starting_Price",
			request:    helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(500)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Seller_Own_Auction",
			request:    helpers.PlaceBidRequest{BidderID: "seller1", Amount: decimal.NewFromInt(1000)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Invalid_JSON",
			request:    "{bidder_id: 'missing quotes', amount: 100}",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithAuctions(t, activeAuction("auction1"))
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "1000", data["current_bid"])
				require.Equal(t, "user1", data["highest_bidder_id"])

				bid := data["bid"].(map[string]any)
				require.NotEmpty(t, bid["bid_id"])
				_, err := time.Parse(time.RFC3339, bid["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

func TestPlaceBidEndpoint_UnknownAuction(t *testing.T) {
	router := SetupTestRouterWithAuctions(t)
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/nonexistent/bids",
		helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(1000)})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceBidEndpoint_OutbidFlow(t *testing.T) {
	router := SetupTestRouterWithAuctions(t, activeAuction("auction1"))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(1000)})
	require.Equal(t, http.StatusCreated, w.Code)

	// Below current + increment: rejected with an actionable minimum.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user2", Amount: decimal.NewFromInt(1050)})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "bid amount too low, minimum is 1100", resp["message"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user2", Amount: decimal.NewFromInt(1100)})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "user2", data["highest_bidder_id"])
}

// GetAuctionHandler Tests
func TestGetAuctionEndpoint(t *testing.T) {
	reserve := activeAuction("auction1")
	reserve.ReservePrice = decimal.NewNullDecimal(decimal.NewFromInt(5000))
	router := SetupTestRouterWithAuctions(t, reserve)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "auction1", data["id"])
	require.Equal(t, "active", data["status"])
	require.NotContains(t, data, "reserve_price")

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBidsEndpoint(t *testing.T) {
	router := SetupTestRouterWithAuctions(t, activeAuction("auction1"))

	for _, amount := range []int64{1000, 1100, 1250} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
			helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(amount)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)

	bids := resp["data"].([]any)
	require.Len(t, bids, 3)
	first := bids[0].(map[string]any)
	require.Equal(t, "1000", first["amount"])
}

// SetAutoBidHandler / CancelAutoBidHandler Tests
func TestAutoBidEndpoints(t *testing.T) {
	router := SetupTestRouterWithAuctions(t, activeAuction("auction1"))

	// Registration opens the bidding at the starting price.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPut, "/auctions/auction1/autobid",
		helpers.SetAutoBidRequest{UserID: "user1", MaxBidAmount: decimal.NewFromInt(3000)})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["is_active"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := resp["data"].(map[string]any)
	require.Equal(t, "user1", auction["highest_bidder_id"])

	// A competing manual bid below the ceiling is answered immediately.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user2", Amount: decimal.NewFromInt(1500)})
	require.Equal(t, http.StatusCreated, w.Code)
	result := resp["data"].(map[string]any)
	require.Equal(t, "user1", result["highest_bidder_id"])
	require.Equal(t, "1600", result["current_bid"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/auctions/auction1/autobid/user1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/auctions/auction1/autobid/user1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// CloseAuctionHandler Tests
func TestCloseAuctionEndpoint(t *testing.T) {
	expired := activeAuction("auction1")
	expired.EndTime = time.Now().UTC().Add(-time.Minute)
	router := SetupTestRouterWithAuctions(t, expired, activeAuction("auction2"))

	// Expired auction transitions to ended; repeat close stays OK.
	for i := 0; i < 2; i++ {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/close", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ended", resp["data"].(map[string]any)["status"])

	// Bidding on the ended auction is rejected.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(1000)})
	require.Equal(t, http.StatusConflict, w.Code)

	// A running auction is untouched by close.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction2/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction2", nil)
	require.Equal(t, "active", resp["data"].(map[string]any)["status"])
}

// Anti-sniping extension through the full stack
func TestBidExtendsClosingAuction(t *testing.T) {
	closing := activeAuction("auction1")
	closing.EndTime = time.Now().UTC().Add(5 * time.Minute)
	router := SetupTestRouterWithAuctions(t, closing)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{BidderID: "user1", Amount: decimal.NewFromInt(1000)})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["extended"])

	endTime, err := time.Parse(time.RFC3339, data["end_time"].(string))
	require.NoError(t, err)
	require.True(t, endTime.After(closing.EndTime), "end time should move past the original close")
}
