package notify

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "service-market/internal/models"
)

func mustEvent(t *testing.T, eventType EventType, payload any) Event {
	t.Helper()
	event, err := newEvent(eventType, payload)
	require.NoError(t, err)
	return event
}

func receiveEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed unexpectedly")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_PublishReachesEverySubscriberInRoom(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub1 := hub.Subscribe("user1")
	sub2 := hub.Subscribe("user1")
	other := hub.Subscribe("user2")

	event := mustEvent(t, EventStatusChanged, model.StatusUpdateEvent{ServiceID: "service1", NewStatus: model.StatusConfirmed})
	hub.Publish("user1", event)

	require.Equal(t, EventStatusChanged, receiveEvent(t, sub1.Events).Type)
	require.Equal(t, EventStatusChanged, receiveEvent(t, sub2.Events).Type)

	// The other user's room saw nothing.
	select {
	case <-other.Events:
		t.Fatal("event leaked into another user's room")
	default:
	}
}

func TestHub_PublishToEmptyRoomIsNoop(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	hub.Publish("nobody", mustEvent(t, EventStatusChanged, model.StatusUpdateEvent{ServiceID: "service1"}))
	require.Zero(t, hub.Connected("nobody"))
}

func TestHub_EventsArriveInPublishOrder(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("user1")

	for i := 0; i < 5; i++ {
		hub.Publish("user1", mustEvent(t, EventStatusChanged, model.StatusUpdateEvent{ServiceID: fmt.Sprintf("service%d", i)}))
	}

	for i := 0; i < 5; i++ {
		event := receiveEvent(t, sub.Events)
		var update model.StatusUpdateEvent
		require.NoError(t, json.Unmarshal(event.Data, &update))
		require.Equal(t, fmt.Sprintf("service%d", i), update.ServiceID)
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("user1")

	event := mustEvent(t, EventStatusChanged, model.StatusUpdateEvent{ServiceID: "service1"})
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Nobody drains sub; publishing past the buffer must not block.
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish("user1", event)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
	require.Len(t, sub.Events, subscriberBuffer)
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe("user1")
	require.Equal(t, 1, hub.Connected("user1"))

	hub.Unsubscribe(sub)
	require.Zero(t, hub.Connected("user1"))

	_, open := <-sub.Events
	require.False(t, open, "channel should be closed after Unsubscribe")

	// Unsubscribing twice is safe.
	hub.Unsubscribe(sub)
}

func TestBroadcaster_StatusChangedReachesBothParties(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	broadcaster := NewBroadcaster(hub)
	requester := hub.Subscribe("requester1")
	provider := hub.Subscribe("provider1")

	broadcaster.StatusChanged(model.StatusUpdateEvent{
		ServiceID:   "service1",
		NewStatus:   model.StatusInProgress,
		RequesterID: "requester1",
		ProviderID:  "provider1",
		Timestamp:   time.Now().UTC(),
	})

	for _, sub := range []*Subscriber{requester, provider} {
		event := receiveEvent(t, sub.Events)
		require.Equal(t, EventStatusChanged, event.Type)

		var update model.StatusUpdateEvent
		require.NoError(t, json.Unmarshal(event.Data, &update))
		require.Equal(t, "service1", update.ServiceID)
		require.Equal(t, model.StatusInProgress, update.NewStatus)
	}
}

func TestBroadcaster_BestBidFansOutToInterestedUsers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	broadcaster := NewBroadcaster(hub)
	owner := hub.Subscribe("owner1")
	bidder := hub.Subscribe("bidder1")

	bid := model.Bid{BidID: "bid1", AuctionID: "auction1", BidderID: "bidder1", Amount: 250}
	broadcaster.BestBidUpdated([]string{"owner1", "bidder1"}, "auction1", bid)

	for _, sub := range []*Subscriber{owner, bidder} {
		event := receiveEvent(t, sub.Events)
		require.Equal(t, EventBestBid, event.Type)

		var payload BestBidPayload
		require.NoError(t, json.Unmarshal(event.Data, &payload))
		require.Equal(t, "auction1", payload.AuctionID)
		require.Equal(t, 250.0, payload.Bid.Amount)
	}
}

func TestBroadcaster_AuctionClosedCarriesWinner(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	broadcaster := NewBroadcaster(hub)
	owner := hub.Subscribe("owner1")

	winner := "bidder1"
	broadcaster.AuctionClosed([]string{"owner1"}, model.Auction{
		AuctionID: "auction1",
		Status:    model.AuctionAwarded,
		WinnerID:  &winner,
	})

	event := receiveEvent(t, owner.Events)
	require.Equal(t, EventAuctionClosed, event.Type)

	var payload AuctionClosedPayload
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	require.Equal(t, model.AuctionAwarded, payload.Status)
	require.NotNil(t, payload.WinnerID)
	require.Equal(t, "bidder1", *payload.WinnerID)
}

func TestBroadcaster_PriceUpdatedReachesBothParties(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	broadcaster := NewBroadcaster(hub)
	requester := hub.Subscribe("requester1")
	provider := hub.Subscribe("provider1")

	broadcaster.PriceUpdated("service1", 150, "requester1", "provider1")

	for _, sub := range []*Subscriber{requester, provider} {
		event := receiveEvent(t, sub.Events)
		require.Equal(t, EventPriceUpdated, event.Type)

		var payload PriceUpdatedPayload
		require.NoError(t, json.Unmarshal(event.Data, &payload))
		require.Equal(t, "service1", payload.ServiceID)
		require.Equal(t, 150.0, payload.NewPrice)
		require.False(t, payload.Timestamp.IsZero())
	}
}
