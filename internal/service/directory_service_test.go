package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

func TestDirectoryService_RegisterUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.dir.RegisterUser(ctx, "  priya ", "priya@example.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.User.Username != "priya" || p.Role != calendar.UserRoleUser {
		t.Fatalf("unexpected profile: %+v", p)
	}

	_, err = f.dir.RegisterUser(ctx, "priya", "other@example.com")
	expectKind(t, err, ErrConflict)

	_, err = f.dir.RegisterUser(ctx, "", "x@example.com")
	expectKind(t, err, ErrValidation)

	_, err = f.dir.RegisterUser(ctx, "sam", "not-an-email")
	expectKind(t, err, ErrValidation)
}

func TestDirectoryService_SetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.dir.SetRole(ctx, f.admin.ID.String(), f.user.ID.String(), "manager")
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if p.Role != calendar.UserRoleManager {
		t.Fatalf("expected manager, got %s", p.Role)
	}

	// новая роль действует сразу
	b := f.submit(t, day, "10:00", "11:00")
	if _, err := f.bookings.ManagerApprove(ctx, b.ID.String(), f.user.ID.String()); err != nil {
		t.Fatalf("promoted user must be able to approve: %v", err)
	}

	_, err = f.dir.SetRole(ctx, f.admin.ID.String(), f.user.ID.String(), "superuser")
	expectKind(t, err, ErrValidation)

	_, err = f.dir.SetRole(ctx, f.admin.ID.String(), uuid.NewString(), "admin")
	expectKind(t, err, ErrNotFound)
}

func TestDirectoryService_SetRoleRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// обычный пользователь не может выдать себе права
	_, err := f.dir.SetRole(ctx, f.other.ID.String(), f.other.ID.String(), "admin")
	expectKind(t, err, ErrForbidden)

	_, err = f.dir.SetRole(ctx, f.manager.ID.String(), f.other.ID.String(), "manager")
	expectKind(t, err, ErrForbidden)

	_, err = f.dir.SetRole(ctx, uuid.NewString(), f.other.ID.String(), "admin")
	expectKind(t, err, ErrForbidden)

	_, err = f.dir.SetRole(ctx, "", f.other.ID.String(), "admin")
	expectKind(t, err, ErrValidation)

	p, err := f.dir.GetUser(ctx, f.other.ID.String())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if p.Role != calendar.UserRoleUser {
		t.Fatalf("role must not change, got %s", p.Role)
	}
}

func TestDirectoryService_EnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.dir.EnsureAdmin(ctx, "root", "root@example.com")
	if err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if p.Role != calendar.UserRoleAdmin {
		t.Fatalf("expected admin, got %s", p.Role)
	}

	again, err := f.dir.EnsureAdmin(ctx, "root", "root@example.com")
	if err != nil {
		t.Fatalf("ensure admin again: %v", err)
	}
	if again.User.ID != p.User.ID {
		t.Fatalf("second call must reuse the user")
	}

	// существующий пользователь повышается до администратора
	promoted, err := f.dir.EnsureAdmin(ctx, "other", "")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if promoted.User.ID != f.other.ID || promoted.Role != calendar.UserRoleAdmin {
		t.Fatalf("unexpected profile: %+v", promoted)
	}
	if _, err := f.dir.SetRole(ctx, f.other.ID.String(), f.user.ID.String(), "manager"); err != nil {
		t.Fatalf("bootstrapped admin must be able to set roles: %v", err)
	}

	_, err = f.dir.EnsureAdmin(ctx, " ", "x@example.com")
	expectKind(t, err, ErrValidation)
}

func TestDirectoryService_GetUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.dir.GetUser(ctx, f.admin.ID.String())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if p.User.Username != "admin" || p.Role != calendar.UserRoleAdmin {
		t.Fatalf("unexpected profile: %+v", p)
	}

	_, err = f.dir.GetUser(ctx, uuid.NewString())
	expectKind(t, err, ErrNotFound)
}

func TestDirectoryService_Halls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.dir.CreateHall(ctx, f.manager.ID.String(), HallInput{Name: "B", Capacity: 10})
	expectKind(t, err, ErrForbidden)

	_, err = f.dir.CreateHall(ctx, f.admin.ID.String(), HallInput{Name: "A", Capacity: 10})
	expectKind(t, err, ErrConflict)

	_, err = f.dir.CreateHall(ctx, f.admin.ID.String(), HallInput{Name: "B", Capacity: 0})
	expectKind(t, err, ErrValidation)

	b, err := f.dir.CreateHall(ctx, f.admin.ID.String(), HallInput{Name: "B", Capacity: 40})
	if err != nil {
		t.Fatalf("create hall: %v", err)
	}
	if !b.IsAvailable {
		t.Fatalf("new hall must be available")
	}

	halls, err := f.dir.ListHalls(ctx)
	if err != nil {
		t.Fatalf("list halls: %v", err)
	}
	if len(halls) != 2 || halls[0].Name != "A" || halls[1].Name != "B" {
		t.Fatalf("unexpected halls: %+v", halls)
	}

	got, err := f.dir.GetHall(ctx, f.hall.ID.String())
	if err != nil {
		t.Fatalf("get hall: %v", err)
	}
	if len(got.Equipment) != 1 || got.Equipment[0].Name != "Projector" {
		t.Fatalf("equipment not stored: %+v", got.Equipment)
	}

	_, err = f.dir.GetHall(ctx, uuid.NewString())
	expectKind(t, err, ErrNotFound)
}

func TestDirectoryService_SetHallAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hall := f.hall.ID.String()

	_, err := f.dir.SetHallAvailability(ctx, f.admin.ID.String(), hall, false, "")
	expectKind(t, err, ErrValidation)

	_, err = f.dir.SetHallAvailability(ctx, f.user.ID.String(), hall, false, "repairs")
	expectKind(t, err, ErrForbidden)

	h, err := f.dir.SetHallAvailability(ctx, f.admin.ID.String(), hall, false, "repairs")
	if err != nil {
		t.Fatalf("close hall: %v", err)
	}
	if h.IsAvailable || h.UnavailabilityReason != "repairs" {
		t.Fatalf("unexpected hall: %+v", h)
	}

	h, err = f.dir.SetHallAvailability(ctx, f.admin.ID.String(), hall, true, "ignored")
	if err != nil {
		t.Fatalf("open hall: %v", err)
	}
	if !h.IsAvailable || h.UnavailabilityReason != "" {
		t.Fatalf("reopened hall must drop the reason: %+v", h)
	}

	var events int64
	if err := f.db.Model(&model.Event{}).Where("event_type = ?", model.EventTypeHallAvailability).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 2 {
		t.Fatalf("expected 2 availability events, got %d", events)
	}

	_, err = f.dir.SetHallAvailability(ctx, f.admin.ID.String(), uuid.NewString(), true, "")
	expectKind(t, err, ErrNotFound)
}
