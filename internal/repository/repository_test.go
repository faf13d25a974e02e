package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type seed struct {
	user *model.User
	hall *model.Hall
}

func seedData(t *testing.T, db *gorm.DB) seed {
	t.Helper()
	ctx := context.Background()

	u := &model.User{Username: "u", Email: "u@example.com"}
	if err := NewGormUserRepository(db).Create(ctx, u, model.RoleCodeUser); err != nil {
		t.Fatalf("create user: %v", err)
	}
	h := &model.Hall{Name: "A", Capacity: 50, IsAvailable: true}
	if err := NewGormHallRepository(db).Create(ctx, h); err != nil {
		t.Fatalf("create hall: %v", err)
	}
	return seed{user: u, hall: h}
}

func booking(s seed, start, end string) *model.Booking {
	return &model.Booking{
		HallID:       s.hall.ID,
		RequesterID:  s.user.ID,
		BookingDate:  "2025-01-10",
		StartTime:    start,
		EndTime:      end,
		EventName:    "Talk",
		EventDetails: "details",
		Status:       model.BookingStatusPending,
	}
}

func TestBookingRepository_CreateWithNoOverlap(t *testing.T) {
	db := newTestDB(t)
	s := seedData(t, db)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	first := booking(s, "10:00", "11:00")
	ev := &model.Event{EventType: model.EventTypeBookingCreated, UserID: &s.user.ID}
	if err := repo.CreateWithNoOverlap(ctx, first, ev); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ev.BookingID == nil || *ev.BookingID != first.ID {
		t.Fatalf("event must reference the booking")
	}

	if err := repo.CreateWithNoOverlap(ctx, booking(s, "10:59", "12:00"), nil); !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
	if err := repo.CreateWithNoOverlap(ctx, booking(s, "11:00", "12:00"), nil); err != nil {
		t.Fatalf("touching window: %v", err)
	}

	missingHall := booking(s, "13:00", "14:00")
	missingHall.HallID = uuid.New()
	if err := repo.CreateWithNoOverlap(ctx, missingHall, nil); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown hall, got %v", err)
	}

	window, _ := calendar.ParseWindow("2025-01-10", "10:30", "10:45")
	conflicts, err := repo.Conflicts(ctx, s.hall.ID, window, nil)
	if err != nil || len(conflicts) != 1 || conflicts[0].ID != first.ID {
		t.Fatalf("expected conflict with the first booking, got %+v %v", conflicts, err)
	}
	conflicts, err = repo.Conflicts(ctx, s.hall.ID, window, &first.ID)
	if err != nil || len(conflicts) != 0 {
		t.Fatalf("excluded booking must not conflict, got %+v %v", conflicts, err)
	}
}

func TestBookingRepository_TransitionStatusIsCompareAndSwap(t *testing.T) {
	db := newTestDB(t)
	s := seedData(t, db)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	b := booking(s, "10:00", "11:00")
	if err := repo.CreateWithNoOverlap(ctx, b, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	change := StatusChange{
		From:            model.BookingStatusPending,
		To:              model.BookingStatusRejectedByManager,
		ManagerID:       &s.user.ID,
		RejectionReason: "closed",
	}
	updated, err := repo.TransitionStatus(ctx, b.ID, change, nil)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if updated.Status != model.BookingStatusRejectedByManager || updated.RejectionReason != "closed" {
		t.Fatalf("unexpected booking: %+v", updated)
	}

	// отклонённая заявка слот больше не занимает
	window, _ := calendar.ParseWindow(b.BookingDate, b.StartTime, b.EndTime)
	conflicts, err := repo.Conflicts(ctx, s.hall.ID, window, nil)
	if err != nil || len(conflicts) != 0 {
		t.Fatalf("rejected booking must not conflict, got %+v %v", conflicts, err)
	}

	// второй раз из того же статуса уже нельзя
	ev := &model.Event{EventType: model.EventTypeBookingManagerRejected}
	if _, err := repo.TransitionStatus(ctx, b.ID, change, ev); !errors.Is(err, ErrStatusChanged) {
		t.Fatalf("expected ErrStatusChanged, got %v", err)
	}

	events, err := NewGormEventRepository(db).ListByBooking(ctx, b.ID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("failed transition must not leave events, got %d", len(events))
	}

	if err := repo.DeleteIfStatus(ctx, b.ID, model.BookingStatusPending, nil); !errors.Is(err, ErrStatusChanged) {
		t.Fatalf("expected ErrStatusChanged on delete, got %v", err)
	}
}

func TestBookingRepository_UpdatePendingExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	s := seedData(t, db)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	b := booking(s, "10:00", "11:00")
	if err := repo.CreateWithNoOverlap(ctx, b, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	moved := booking(s, "10:30", "11:30")
	moved.ID = b.ID
	if err := repo.UpdatePendingWithNoOverlap(ctx, moved, nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	if moved.StartTime != "10:30" || moved.Status != model.BookingStatusPending {
		t.Fatalf("unexpected booking after update: %+v", moved)
	}

	missing := booking(s, "15:00", "16:00")
	missing.ID = uuid.New()
	if err := repo.UpdatePendingWithNoOverlap(ctx, missing, nil); !errors.Is(err, ErrStatusChanged) {
		t.Fatalf("expected ErrStatusChanged, got %v", err)
	}
}

func TestUserRepository_RolesAndActor(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u := &model.User{Username: " lead ", Email: "lead@example.com"}
	if err := repo.Create(ctx, u, model.RoleCodeManager); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Username != "lead" {
		t.Fatalf("username must be trimmed, got %q", u.Username)
	}

	a, err := repo.FindActor(ctx, u.ID)
	if err != nil || a == nil || a.Role != calendar.UserRoleManager {
		t.Fatalf("unexpected actor: %+v %v", a, err)
	}

	if err := repo.SetRole(ctx, u.ID, model.RoleCodeAdmin); err != nil {
		t.Fatalf("set role: %v", err)
	}
	code, err := repo.GetRole(ctx, u.ID)
	if err != nil || code != model.RoleCodeAdmin {
		t.Fatalf("expected admin, got %q %v", code, err)
	}

	a, err = repo.FindActor(ctx, uuid.New())
	if err != nil || a != nil {
		t.Fatalf("unknown user must give nil actor, got %+v %v", a, err)
	}

	if err := repo.Create(ctx, &model.User{Username: "lead", Email: "x@example.com"}, model.RoleCodeUser); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}
