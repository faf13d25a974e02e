package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/config"
	"github.com/Leganyst/seminar-hall-booking/internal/db"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}
	gdb, err := db.NewGormDB(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(context.Background(), gdb, cfg.Driver); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

type recordingSink struct {
	got []*model.Notification
	err error
}

func (s *recordingSink) Send(ctx context.Context, n *model.Notification) error {
	s.got = append(s.got, n)
	return s.err
}

type fakePublisher struct {
	key     string
	payload any
	err     error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.key = key
	p.payload = v
	return p.err
}

func TestMultiSink_ContinuesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	first := &recordingSink{err: boom}
	second := &recordingSink{}

	n := &model.Notification{RecipientID: uuid.New(), BookingID: uuid.New(), Message: "hi"}
	err := MultiSink{first, nil, second}.Send(context.Background(), n)

	if !errors.Is(err, boom) {
		t.Fatalf("expected joined boom error, got %v", err)
	}
	if len(first.got) != 1 || len(second.got) != 1 {
		t.Fatalf("expected both sinks called, got %d and %d", len(first.got), len(second.got))
	}
}

func TestMultiSink_NoErrors(t *testing.T) {
	if err := (MultiSink{&recordingSink{}}).Send(context.Background(), &model.Notification{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAMQPSink_PublishesPayload(t *testing.T) {
	pub := &fakePublisher{}
	n := &model.Notification{
		ID:          uuid.New(),
		RecipientID: uuid.New(),
		BookingID:   uuid.New(),
		Message:     "approved",
	}

	if err := NewAMQPSink(pub).Send(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.key != RoutingKeyBookingNotification {
		t.Fatalf("unexpected routing key %q", pub.key)
	}

	p, ok := pub.payload.(Payload)
	if !ok {
		t.Fatalf("unexpected payload type %T", pub.payload)
	}
	if p.NotificationID != n.ID.String() || p.RecipientID != n.RecipientID.String() || p.BookingID != n.BookingID.String() {
		t.Fatalf("ids not carried over: %+v", p)
	}
	if p.Message != "approved" || p.CreatedAt.IsZero() {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestAMQPSink_WrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	err := NewAMQPSink(&fakePublisher{err: boom}).Send(context.Background(), &model.Notification{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped publish error, got %v", err)
	}
}

func TestGormSink_StoresNotification(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	users := repository.NewGormUserRepository(gdb)
	u := &model.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Create(ctx, u, model.RoleCodeUser); err != nil {
		t.Fatalf("create user: %v", err)
	}

	notifications := repository.NewGormNotificationRepository(gdb)
	n := &model.Notification{RecipientID: u.ID, BookingID: uuid.New(), Message: "pending"}
	if err := NewGormSink(notifications).Send(ctx, n); err != nil {
		t.Fatalf("send: %v", err)
	}
	if n.ID == uuid.Nil {
		t.Fatalf("expected notification id to be set")
	}

	items, err := notifications.ListByRecipient(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Message != "pending" || items[0].Read {
		t.Fatalf("unexpected inbox: %+v", items)
	}
}
