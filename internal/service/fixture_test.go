package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/config"
	"github.com/Leganyst/seminar-hall-booking/internal/db"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/notify"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
)

type captureSink struct {
	mu  sync.Mutex
	got []model.Notification
	err error
}

func (s *captureSink) Send(ctx context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, *n)
	return s.err
}

func (s *captureSink) sent() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.got...)
}

type fixture struct {
	db       *gorm.DB
	bookings *BookingService
	dir      *DirectoryService
	sink     *captureSink

	hall    *model.Hall
	user    *model.User
	other   *model.User
	manager *model.User
	admin   *model.User
}

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
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// newFixture: зал "A", пользователь, второй пользователь, менеджер и администратор.
// Уведомления пишутся в БД и в captureSink.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithSink(t, nil)
}

func newFixtureWithSink(t *testing.T, extra notify.Sink) *fixture {
	t.Helper()

	gdb := newTestDB(t)
	log := zaptest.NewLogger(t)

	users := repository.NewGormUserRepository(gdb)
	halls := repository.NewGormHallRepository(gdb)
	notifications := repository.NewGormNotificationRepository(gdb)

	capture := &captureSink{}
	sink := notify.MultiSink{notify.NewGormSink(notifications), capture}
	if extra != nil {
		sink = append(sink, extra)
	}

	f := &fixture{
		db: gdb,
		bookings: NewBookingService(
			repository.NewGormBookingRepository(gdb),
			halls,
			users,
			repository.NewGormEventRepository(gdb),
			notifications,
			sink,
			log,
		),
		dir:  NewDirectoryService(users, halls, log),
		sink: capture,
	}

	ctx := context.Background()
	f.user = mustUser(t, users, "user", model.RoleCodeUser)
	f.other = mustUser(t, users, "other", model.RoleCodeUser)
	f.manager = mustUser(t, users, "manager", model.RoleCodeManager)
	f.admin = mustUser(t, users, "admin", model.RoleCodeAdmin)

	hall, err := f.dir.CreateHall(ctx, f.admin.ID.String(), HallInput{
		Name:     "A",
		Capacity: 120,
		Details:  "Main seminar hall",
		Equipment: []model.Equipment{
			{Name: "Projector", Type: "av", Condition: "good", Available: true, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create hall: %v", err)
	}
	f.hall = hall

	return f
}

func mustUser(t *testing.T, users repository.UserRepository, name, role string) *model.User {
	t.Helper()
	u := &model.User{Username: name, Email: name + "@example.com"}
	if err := users.Create(context.Background(), u, role); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func (f *fixture) input(date, start, end string) BookingInput {
	return BookingInput{
		HallID:       f.hall.ID.String(),
		RequesterID:  f.user.ID.String(),
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		EventName:    "Go meetup",
		EventDetails: "Talks about concurrency",
		Coordinators: []model.Coordinator{
			{Name: "Ravi", Contact: "+919876543210", Email: "ravi@example.com"},
		},
	}
}

func (f *fixture) submit(t *testing.T, date, start, end string) *model.Booking {
	t.Helper()
	b, err := f.bookings.SubmitBooking(context.Background(), f.input(date, start, end))
	if err != nil {
		t.Fatalf("submit %s %s-%s: %v", date, start, end, err)
	}
	return b
}

func (f *fixture) status(t *testing.T, id string) model.BookingStatus {
	t.Helper()
	b, err := f.bookings.GetBooking(context.Background(), id)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	return b.Status
}

func expectKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Message == "" {
		t.Fatalf("expected *Error with message, got %#v", err)
	}
}
