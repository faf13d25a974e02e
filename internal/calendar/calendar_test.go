package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

//
// Окна бронирования
//

func TestParseWindow_Normalizes(t *testing.T) {
	w, err := ParseWindow("2025-01-10", "9:05", "11:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Date != "2025-01-10" || w.StartTime != "09:05" || w.EndTime != "11:00" {
		t.Fatalf("unexpected window: %+v", w)
	}
	if !w.Range.Start.Equal(mustTime(t, 2025, 1, 10, 9, 5)) {
		t.Fatalf("unexpected start: %v", w.Range.Start)
	}
	if !w.Range.End.Equal(mustTime(t, 2025, 1, 10, 11, 0)) {
		t.Fatalf("unexpected end: %v", w.Range.End)
	}
}

func TestParseWindow_RejectsInvertedAndEmpty(t *testing.T) {
	cases := []struct{ start, end string }{
		{"11:00", "10:00"},
		{"10:00", "10:00"},
	}
	for _, c := range cases {
		_, err := ParseWindow("2025-01-10", c.start, c.end)
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("%s-%s: expected ErrInvalidTimeRange, got %v", c.start, c.end, err)
		}
	}
}

func TestParseWindow_BadInput(t *testing.T) {
	if _, err := ParseWindow("10/01/2025", "10:00", "11:00"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseWindow("2025-01-10", "25:00", "26:00"); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if _, err := ParseWindow("2025-01-10", "10:00", ""); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock for empty end, got %v", err)
	}
}

//
// HasOverlap
//

func TestHasOverlap_TouchingIsNotOverlap(t *testing.T) {
	newRange := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 11, 0),
		End:   mustTime(t, 2025, 1, 1, 12, 0),
	}
	existing := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 11, 0)},
	}

	has, conflicts := HasOverlap(newRange, existing)
	if has {
		t.Fatalf("expected no overlap, got conflicts: %+v", conflicts)
	}
}

func TestHasOverlap_OverlapFound(t *testing.T) {
	newRange := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 30),
		End:   mustTime(t, 2025, 1, 1, 11, 30),
	}
	existing := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 9, 0), End: mustTime(t, 2025, 1, 1, 10, 0)},
		{Start: mustTime(t, 2025, 1, 1, 11, 0), End: mustTime(t, 2025, 1, 1, 12, 0)},
	}

	has, conflicts := HasOverlap(newRange, existing)
	if !has {
		t.Fatalf("expected overlap, got none")
	}
	if len(conflicts) != 1 || conflicts[0] != 1 {
		t.Fatalf("expected the second range to conflict, got %v", conflicts)
	}
}

func TestHasOverlap_Containment(t *testing.T) {
	newRange := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 15),
		End:   mustTime(t, 2025, 1, 1, 10, 45),
	}
	existing := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 11, 0)},
	}

	if has, _ := HasOverlap(newRange, existing); !has {
		t.Fatalf("expected contained range to overlap")
	}
}

//
// ValidateActor
//

type mockActorStore struct {
	actor *Actor
	err   error
}

func (m *mockActorStore) FindActor(ctx context.Context, id uuid.UUID) (*Actor, error) {
	return m.actor, m.err
}

func TestValidateActor_Success(t *testing.T) {
	id := uuid.New()
	store := &mockActorStore{actor: &Actor{ID: id, Role: UserRoleManager}}

	a, err := ValidateActor(context.Background(), store, id.String(), UserRoleManager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != id || a.Role != UserRoleManager {
		t.Fatalf("unexpected actor: %+v", a)
	}
}

func TestValidateActor_InvalidID(t *testing.T) {
	_, err := ValidateActor(context.Background(), &mockActorStore{}, "not-a-uuid")
	if err != ErrInvalidActorID {
		t.Fatalf("expected ErrInvalidActorID, got %v", err)
	}
}

func TestValidateActor_UserNotFound(t *testing.T) {
	_, err := ValidateActor(context.Background(), &mockActorStore{}, uuid.NewString())
	if err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestValidateActor_WrongRole(t *testing.T) {
	store := &mockActorStore{actor: &Actor{ID: uuid.New(), Role: UserRoleUser}}
	_, err := ValidateActor(context.Background(), store, uuid.NewString(), UserRoleManager, UserRoleAdmin)
	if err != ErrRoleNotAllowed {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}

//
// Paginate
//

func TestPaginate_Basic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	page := Paginate(items, 1, 5)

	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on page 1, got %d", len(page.Items))
	}
	if page.HasPrev {
		t.Fatalf("expected HasPrev=false on first page")
	}
	if !page.HasNext {
		t.Fatalf("expected HasNext=true on first page")
	}
	if page.Total != len(items) {
		t.Fatalf("expected Total=%d, got %d", len(items), page.Total)
	}
}

func TestPaginate_LastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	page := Paginate(items, 2, 4)

	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items on last page, got %d", len(page.Items))
	}
	if !page.HasPrev || page.HasNext {
		t.Fatalf("unexpected prev/next: %+v", page)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	var items []int
	page := Paginate(items, 0, 0)

	if page.Page != 1 || page.PageSize != DefaultPageSize {
		t.Fatalf("expected defaults, got page=%d size=%d", page.Page, page.PageSize)
	}
	if len(page.Items) != 0 || page.HasNext || page.HasPrev {
		t.Fatalf("expected empty page, got %+v", page)
	}
}
