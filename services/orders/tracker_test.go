package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"chcrent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	snaps chan []models.Order
	errs  chan error
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		snaps: make(chan []models.Order),
		errs:  make(chan error, 1),
	}
}

func (f *fakeStream) WatchUserOrders(ctx context.Context, chcID, userID string) (<-chan []models.Order, <-chan error, error) {
	return f.snaps, f.errs, nil
}

type captureNotifier struct {
	mu     sync.Mutex
	bodies []string
}

func (c *captureNotifier) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bodies = append(c.bodies, body)
	return nil
}

func (c *captureNotifier) sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.bodies...)
}

func order(id string, status models.OrderStatus) models.Order {
	return models.Order{ID: id, Status: status, EquipmentName: "Tractor", UserID: "user-1", ChcID: "chc-1"}
}

func recvSnapshot(t *testing.T, sub *Subscription) []models.Order {
	t.Helper()
	select {
	case snap, open := <-sub.Snapshots():
		require.True(t, open, "snapshot channel closed unexpectedly")
		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func recvEvent(t *testing.T, sub *Subscription) Notification {
	t.Helper()
	select {
	case ev, open := <-sub.Events():
		require.True(t, open, "event channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Notification{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}

func TestTrackerFirstSnapshotProducesNoNotifications(t *testing.T) {
	stream := newFakeStream()
	tracker := &Tracker{Stream: stream}

	sub, err := tracker.Subscribe(context.Background(), "chc-1", "user-1")
	require.NoError(t, err)
	defer sub.Close()

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusAllocated)}
	snap := recvSnapshot(t, sub)
	require.Len(t, snap, 1)
	assertNoEvent(t, sub)
}

func TestTrackerNotifiesOnStatusTransitions(t *testing.T) {
	stream := newFakeStream()
	notifier := &captureNotifier{}
	tracker := &Tracker{Stream: stream, Notifier: notifier}

	sub, err := tracker.Subscribe(context.Background(), "chc-1", "user-1")
	require.NoError(t, err)
	defer sub.Close()

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusPending)}
	recvSnapshot(t, sub)
	assertNoEvent(t, sub)

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusAllocated)}
	recvSnapshot(t, sub)
	ev := recvEvent(t, sub)
	assert.Equal(t, "aaaa1111", ev.OrderID)
	assert.Equal(t, SeverityInfo, ev.Severity)
	assert.Equal(t, "Order #aaaa allocated!", ev.Message)

	// Re-delivering an identical snapshot must not re-fire the banner.
	stream.snaps <- []models.Order{order("aaaa1111", models.StatusAllocated)}
	recvSnapshot(t, sub)
	assertNoEvent(t, sub)

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusDelivered)}
	recvSnapshot(t, sub)
	ev = recvEvent(t, sub)
	assert.Equal(t, SeveritySuccess, ev.Severity)
	assert.Equal(t, "Order #aaaa delivered.", ev.Message)

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusReturned)}
	recvSnapshot(t, sub)
	ev = recvEvent(t, sub)
	assert.Equal(t, SeveritySuccess, ev.Severity)
	assert.Equal(t, "Order #aaaa completed!", ev.Message)

	assert.Equal(t, []string{
		"Order #aaaa allocated!",
		"Order #aaaa delivered.",
		"Order #aaaa completed!",
	}, notifier.sent())
}

func TestTrackerIgnoresNewOrdersInLaterSnapshots(t *testing.T) {
	stream := newFakeStream()
	tracker := &Tracker{Stream: stream}

	sub, err := tracker.Subscribe(context.Background(), "chc-1", "user-1")
	require.NoError(t, err)
	defer sub.Close()

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusPending)}
	recvSnapshot(t, sub)

	// A freshly placed order arrives already in a snapshot; its appearance
	// is not a transition.
	stream.snaps <- []models.Order{
		order("bbbb2222", models.StatusAllocated),
		order("aaaa1111", models.StatusPending),
	}
	snap := recvSnapshot(t, sub)
	require.Len(t, snap, 2)
	assertNoEvent(t, sub)
}

func TestTrackerCloseIsSynchronous(t *testing.T) {
	stream := newFakeStream()
	tracker := &Tracker{Stream: stream}

	sub, err := tracker.Subscribe(context.Background(), "chc-1", "user-1")
	require.NoError(t, err)

	stream.snaps <- []models.Order{order("aaaa1111", models.StatusPending)}
	recvSnapshot(t, sub)

	sub.Close()

	// After Close returns the goroutine has exited and all channels drain to
	// closed.
	for range sub.Events() {
	}
	_, open := <-sub.Snapshots()
	assert.False(t, open)
	_, open = <-sub.Errs()
	assert.False(t, open)
}

func TestTrackerForwardsTerminalStreamError(t *testing.T) {
	stream := newFakeStream()
	tracker := &Tracker{Stream: stream}

	sub, err := tracker.Subscribe(context.Background(), "chc-1", "user-1")
	require.NoError(t, err)
	defer sub.Close()

	stream.errs <- assert.AnError

	select {
	case streamErr, open := <-sub.Errs():
		require.True(t, open)
		assert.ErrorIs(t, streamErr, assert.AnError)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stream error")
	}
}
