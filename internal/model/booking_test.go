package model

import "testing"

func TestBookingStatus_Display(t *testing.T) {
	cases := map[BookingStatus]DisplayStatus{
		BookingStatusPending:           DisplayStatusPending,
		BookingStatusApprovedByManager: DisplayStatusPending,
		BookingStatusApprovedByAdmin:   DisplayStatusConfirmed,
		BookingStatusRejectedByManager: DisplayStatusRejected,
		BookingStatusRejectedByAdmin:   DisplayStatusRejected,
		BookingStatus("booked"):        DisplayStatusUnknown,
	}
	for s, want := range cases {
		if got := s.Display(); got != want {
			t.Fatalf("%s: expected %s, got %s", s, want, got)
		}
	}
}

func TestBookingStatus_ActiveAndTerminal(t *testing.T) {
	for _, s := range ActiveBookingStatuses {
		if !s.IsActive() {
			t.Fatalf("%s must be active", s)
		}
	}
	for _, s := range RejectedBookingStatuses {
		if s.IsActive() || !s.IsTerminal() {
			t.Fatalf("%s must be terminal and inactive", s)
		}
	}
	if !BookingStatusApprovedByAdmin.IsTerminal() || !BookingStatusApprovedByAdmin.IsActive() {
		t.Fatalf("confirmed booking keeps its slot and is final")
	}
	if BookingStatusPending.IsTerminal() || BookingStatusApprovedByManager.IsTerminal() {
		t.Fatalf("pending statuses must not be terminal")
	}
}
