package orders

import (
	"context"
	"fmt"

	"chcrent/models"
	"chcrent/services/notification"
	"chcrent/utils"

	"go.uber.org/zap"
)

// OrderStream is the snapshot source for a user's orders; the Mongo order
// repository satisfies it with a change-stream watch.
type OrderStream interface {
	WatchUserOrders(ctx context.Context, chcID, userID string) (<-chan []models.Order, <-chan error, error)
}

// Severity classifies a status banner.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Notification is one transient status-transition banner.
type Notification struct {
	OrderID  string             `json:"orderId"`
	Status   models.OrderStatus `json:"status"`
	Severity Severity           `json:"severity"`
	Message  string             `json:"message"`
}

// Tracker maintains live, time-ordered views of user orders and derives
// status-transition notifications by diffing successive snapshots.
type Tracker struct {
	Stream   OrderStream
	Notifier notification.NotificationService // optional push fan-out
}

// Subscription is one live order view. Snapshots always replace the tracked
// list wholesale; Events carries exactly one notification per observed
// status transition. All channels close after Close returns or after a
// terminal stream error is delivered on Errs.
type Subscription struct {
	snapshots chan []models.Order
	events    chan Notification
	errs      chan error
	cancel    context.CancelFunc
	done      chan struct{}
}

func (s *Subscription) Snapshots() <-chan []models.Order { return s.snapshots }
func (s *Subscription) Events() <-chan Notification      { return s.events }
func (s *Subscription) Errs() <-chan error               { return s.errs }

// Close tears the subscription down synchronously: when it returns, the
// tracker goroutine has exited and no further events will be delivered.
func (s *Subscription) Close() {
	s.cancel()
	<-s.done
}

// Subscribe opens a live subscription for one user's orders in one center.
// The first delivered snapshot is the baseline; it never produces
// notifications.
func (t *Tracker) Subscribe(ctx context.Context, chcID, userID string) (*Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	src, streamErrs, err := t.Stream.WatchUserOrders(watchCtx, chcID, userID)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("tracker: subscribe failed for user %s: %w", userID, err)
	}

	sub := &Subscription{
		snapshots: make(chan []models.Order, 1),
		events:    make(chan Notification, 8),
		errs:      make(chan error, 1),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go t.run(watchCtx, userID, src, streamErrs, sub)
	return sub, nil
}

func (t *Tracker) run(ctx context.Context, userID string, src <-chan []models.Order, streamErrs <-chan error, sub *Subscription) {
	defer close(sub.done)
	defer close(sub.errs)
	defer close(sub.events)
	defer close(sub.snapshots)

	var prev []models.Order
	seeded := false

	for src != nil || streamErrs != nil {
		select {
		case snap, ok := <-src:
			if !ok {
				src = nil
				continue
			}
			if seeded {
				for _, n := range diffStatuses(prev, snap) {
					select {
					case sub.events <- n:
					case <-ctx.Done():
						return
					}
					t.push(ctx, userID, n)
				}
			}
			seeded = true
			prev = snap
			deliverLatest(sub.snapshots, snap)

		case err, ok := <-streamErrs:
			if !ok {
				streamErrs = nil
				continue
			}
			// Terminal for this subscription; the caller decides whether to
			// re-establish it.
			select {
			case sub.errs <- err:
			case <-ctx.Done():
			}
			return

		case <-ctx.Done():
			return
		}
	}
}

// deliverLatest replaces any undelivered snapshot so a slow consumer always
// sees the most recent list.
func deliverLatest(ch chan []models.Order, snap []models.Order) {
	for {
		select {
		case ch <- snap:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// push forwards a banner as an FCM push, best-effort.
func (t *Tracker) push(ctx context.Context, userID string, n Notification) {
	if t.Notifier == nil {
		return
	}
	data := map[string]string{"orderId": n.OrderID, "status": string(n.Status)}
	if err := t.Notifier.SendUserPushNotification(ctx, userID, "Order update", n.Message, data); err != nil {
		utils.GetLogger().Warn("order push notification failed",
			zap.String("orderId", n.OrderID), zap.Error(err))
	}
}

// diffStatuses compares two snapshots keyed strictly by order id, looking
// only at the status field so unrelated document updates never fire a
// banner. Orders appearing for the first time produce nothing.
func diffStatuses(prev, next []models.Order) []Notification {
	if len(prev) == 0 {
		return nil
	}
	before := make(map[string]models.OrderStatus, len(prev))
	for _, o := range prev {
		before[o.ID] = o.Status
	}

	var out []Notification
	for i := range next {
		o := &next[i]
		old, known := before[o.ID]
		if !known || old == o.Status {
			continue
		}
		if n, ok := statusBanner(o); ok {
			out = append(out, n)
		}
	}
	return out
}

// statusBanner maps a transitioned order onto its banner. A transition into
// Pending is impossible and produces nothing.
func statusBanner(o *models.Order) (Notification, bool) {
	var severity Severity
	var message string

	switch o.Status {
	case models.StatusAllocated:
		severity = SeverityInfo
		message = fmt.Sprintf("Order #%s allocated!", o.ShortID())
	case models.StatusDelivered:
		severity = SeveritySuccess
		message = fmt.Sprintf("Order #%s delivered.", o.ShortID())
	case models.StatusReturned:
		severity = SeveritySuccess
		message = fmt.Sprintf("Order #%s completed!", o.ShortID())
	default:
		return Notification{}, false
	}

	return Notification{
		OrderID:  o.ID,
		Status:   o.Status,
		Severity: severity,
		Message:  message,
	}, true
}
