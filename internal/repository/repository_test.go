package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-market/internal/marketerrors"
	model "service-market/internal/models"
)

// Helper to create a new open Auction
func newAuction(auctionID, ownerID string, maxPrice float64) model.Auction {
	return model.Auction{
		AuctionID: auctionID,
		Title:     fmt.Sprintf("%s title", auctionID),
		Category:  "Limpeza",
		OwnerID:   ownerID,
		MaxPrice:  maxPrice,
		Deadline:  time.Now().Add(24 * time.Hour),
		Status:    model.AuctionOpen,
		CreatedAt: time.Now().UTC(),
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, bidderID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Helper to create a pending Service
func newService(serviceID, requesterID, providerID string) model.Service {
	now := time.Now().UTC()
	return model.Service{
		ServiceID:   serviceID,
		RequesterID: requesterID,
		ProviderID:  providerID,
		Category:    "Encanamento",
		Date:        now.Add(48 * time.Hour),
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Test RecordBidForAuction
func TestMemoryRepo_RecordBidForAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "owner1", 500)))

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "auction1", "provider1", 300, time.Now()), wantError: false},
		{name: "auction_not_found", bid: newBid("bid2", "auctionX", "provider1", 200, time.Now()), wantError: true},
		{name: "empty_auctionID", bid: newBid("bid3", "", "provider1", 200, time.Now()), wantError: true},
		{name: "second_bid_same_auction", bid: newBid("bid4", "auction1", "provider2", 250, time.Now()), wantError: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := repo.RecordBidForAuction(tc.bid)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				bids, err := repo.GetBidsByAuction(tc.bid.AuctionID)
				require.NoError(t, err)
				require.Contains(t, bids, tc.bid)
			}
		})
	}

	// concurrency test
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "owner1", 500)))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				bid := newBid(fmt.Sprintf("bid_%d", i), "auction1", fmt.Sprintf("provider_%d", i), float64(400-i), time.Now())
				require.NoError(t, repo.RecordBidForAuction(bid))
			}()
		}
		wg.Wait()

		bids, err := repo.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)

		best, err := repo.GetBestBid("auction1")
		require.NoError(t, err)
		require.Equal(t, float64(400-concurrentCount+1), best.Amount)
	})
}

// Test GetBestBid
func TestMemoryRepo_GetBestBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("no_bids", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "owner1", 500)))

		_, err := repo.GetBestBid("auction1")
		require.ErrorIs(t, err, marketerrors.ErrNoBids)
	})

	t.Run("lowest_bid_wins", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "owner1", 500)))

		require.NoError(t, repo.RecordBidForAuction(newBid("bid1", "auction1", "provider1", 300, now)))
		require.NoError(t, repo.RecordBidForAuction(newBid("bid2", "auction1", "provider2", 250, now.Add(time.Second))))
		require.NoError(t, repo.RecordBidForAuction(newBid("bid3", "auction1", "provider3", 280, now.Add(2*time.Second))))

		best, err := repo.GetBestBid("auction1")
		require.NoError(t, err)
		require.Equal(t, "bid2", best.BidID)
		require.Equal(t, 250.0, best.Amount)
	})

	t.Run("tie_broken_by_earliest_submission", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateAuction(newAuction("auction1", "owner1", 500)))

		require.NoError(t, repo.RecordBidForAuction(newBid("bid1", "auction1", "provider1", 250, now)))
		require.NoError(t, repo.RecordBidForAuction(newBid("bid2", "auction1", "provider2", 250, now.Add(time.Second))))

		best, err := repo.GetBestBid("auction1")
		require.NoError(t, err)
		require.Equal(t, "bid1", best.BidID)
	})
}

// Test auction CRUD
func TestMemoryRepo_Auctions(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	t.Run("get_missing_auction", func(t *testing.T) {
		_, err := repo.GetAuctionByID("nope")
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})

	t.Run("create_and_get", func(t *testing.T) {
		auction := newAuction("auction1", "owner1", 500)
		require.NoError(t, repo.CreateAuction(auction))

		got, err := repo.GetAuctionByID("auction1")
		require.NoError(t, err)
		require.Equal(t, auction, got)
	})

	t.Run("update_changes_status", func(t *testing.T) {
		auction, err := repo.GetAuctionByID("auction1")
		require.NoError(t, err)

		auction.Status = model.AuctionCancelled
		require.NoError(t, repo.UpdateAuction(auction))

		got, err := repo.GetAuctionByID("auction1")
		require.NoError(t, err)
		require.Equal(t, model.AuctionCancelled, got.Status)
	})

	t.Run("update_missing_auction", func(t *testing.T) {
		err := repo.UpdateAuction(newAuction("ghost", "owner1", 100))
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})

	t.Run("list_open_excludes_closed", func(t *testing.T) {
		require.NoError(t, repo.CreateAuction(newAuction("auction2", "owner2", 300)))

		open, err := repo.ListOpenAuctions()
		require.NoError(t, err)
		require.Len(t, open, 1)
		require.Equal(t, "auction2", open[0].AuctionID)
	})
}

// Test service storage and per-user indexing
func TestMemoryRepo_Services(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	service := newService("service1", "requester1", "provider1")
	require.NoError(t, repo.CreateService(service))

	t.Run("get_by_id", func(t *testing.T) {
		got, err := repo.GetServiceByID("service1")
		require.NoError(t, err)
		require.Equal(t, service, got)
	})

	t.Run("indexed_for_both_parties", func(t *testing.T) {
		forRequester, err := repo.ListServicesByUser("requester1")
		require.NoError(t, err)
		require.Len(t, forRequester, 1)

		forProvider, err := repo.ListServicesByUser("provider1")
		require.NoError(t, err)
		require.Len(t, forProvider, 1)
	})

	t.Run("unknown_user_gets_empty_list", func(t *testing.T) {
		services, err := repo.ListServicesByUser("stranger")
		require.NoError(t, err)
		require.Empty(t, services)
	})

	t.Run("update_persists_status", func(t *testing.T) {
		updated := service
		updated.Status = model.StatusConfirmed
		require.NoError(t, repo.UpdateService(updated))

		got, err := repo.GetServiceByID("service1")
		require.NoError(t, err)
		require.Equal(t, model.StatusConfirmed, got.Status)
	})

	t.Run("update_missing_service", func(t *testing.T) {
		err := repo.UpdateService(newService("ghost", "r", "p"))
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})
}
