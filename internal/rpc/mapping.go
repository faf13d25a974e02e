package rpc

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	bookingv1 "github.com/Leganyst/seminar-hall-booking/internal/api/booking/v1"
	directoryv1 "github.com/Leganyst/seminar-hall-booking/internal/api/directory/v1"
	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

//
// Маппинг model <-> protobuf
//

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func mapBooking(b *model.Booking) *bookingv1.Booking {
	if b == nil {
		return nil
	}
	out := &bookingv1.Booking{
		Id:              b.ID.String(),
		HallId:          b.HallID.String(),
		RequesterId:     b.RequesterID.String(),
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		EventName:       b.EventName,
		EventDetails:    b.EventDetails,
		Coordinators:    make([]*bookingv1.Coordinator, 0, len(b.Coordinators)),
		Status:          string(b.Status),
		DisplayStatus:   string(b.Status.Display()),
		RejectionReason: b.RejectionReason,
		ManagerId:       optionalID(b.ManagerID),
		AdminId:         optionalID(b.AdminID),
		CreatedAt:       timestamppb.New(b.CreatedAt),
		UpdatedAt:       timestamppb.New(b.UpdatedAt),
	}
	for _, c := range b.Coordinators {
		out.Coordinators = append(out.Coordinators, &bookingv1.Coordinator{
			Name:    c.Name,
			Contact: c.Contact,
			Email:   c.Email,
		})
	}
	return out
}

func mapBookings(items []model.Booking) []*bookingv1.Booking {
	out := make([]*bookingv1.Booking, 0, len(items))
	for i := range items {
		out = append(out, mapBooking(&items[i]))
	}
	return out
}

func mapTimeWindows(items []model.Booking) []*bookingv1.TimeWindow {
	out := make([]*bookingv1.TimeWindow, 0, len(items))
	for _, b := range items {
		out = append(out, &bookingv1.TimeWindow{
			BookingId: b.ID.String(),
			Date:      b.BookingDate,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    string(b.Status),
		})
	}
	return out
}

func toCoordinators(in []*bookingv1.Coordinator) []model.Coordinator {
	out := make([]model.Coordinator, 0, len(in))
	for _, c := range in {
		out = append(out, model.Coordinator{
			Name:    c.GetName(),
			Contact: c.GetContact(),
			Email:   c.GetEmail(),
		})
	}
	return out
}

func mapEvent(e *model.Event) *bookingv1.Event {
	return &bookingv1.Event{
		Id:        e.ID.String(),
		Type:      string(e.EventType),
		BookingId: optionalID(e.BookingID),
		UserId:    optionalID(e.UserID),
		Details:   e.Details,
		CreatedAt: timestamppb.New(e.CreatedAt),
	}
}

func mapNotification(n *model.Notification) *bookingv1.Notification {
	return &bookingv1.Notification{
		Id:          n.ID.String(),
		RecipientId: n.RecipientID.String(),
		BookingId:   n.BookingID.String(),
		Message:     n.Message,
		Read:        n.Read,
		CreatedAt:   timestamppb.New(n.CreatedAt),
	}
}

func mapUser(p *service.UserProfile) *directoryv1.User {
	if p == nil || p.User == nil {
		return nil
	}
	return &directoryv1.User{
		Id:       p.User.ID.String(),
		Username: p.User.Username,
		Email:    p.User.Email,
		Role:     string(p.Role),
	}
}

func mapHall(h *model.Hall) *directoryv1.Hall {
	if h == nil {
		return nil
	}
	out := &directoryv1.Hall{
		Id:                   h.ID.String(),
		Name:                 h.Name,
		Capacity:             int32(h.Capacity),
		Details:              h.Details,
		Equipment:            make([]*directoryv1.Equipment, 0, len(h.Equipment)),
		IsAvailable:          h.IsAvailable,
		UnavailabilityReason: h.UnavailabilityReason,
	}
	for _, e := range h.Equipment {
		out.Equipment = append(out.Equipment, &directoryv1.Equipment{
			Name:      e.Name,
			Type:      e.Type,
			Condition: e.Condition,
			Available: e.Available,
			Quantity:  int32(e.Quantity),
		})
	}
	return out
}

func toEquipment(in []*directoryv1.Equipment) []model.Equipment {
	out := make([]model.Equipment, 0, len(in))
	for _, e := range in {
		out = append(out, model.Equipment{
			Name:      e.GetName(),
			Type:      e.GetType(),
			Condition: e.GetCondition(),
			Available: e.GetAvailable(),
			Quantity:  int(e.GetQuantity()),
		})
	}
	return out
}

// В двух пакетах свой PageInfo, поле в поле.
func bookingPageInfo[T any](p calendar.Page[T]) *bookingv1.PageInfo {
	return &bookingv1.PageInfo{
		Page:     int32(p.Page),
		PageSize: int32(p.PageSize),
		Total:    int32(p.Total),
		HasNext:  p.HasNext,
		HasPrev:  p.HasPrev,
	}
}

func directoryPageInfo[T any](p calendar.Page[T]) *directoryv1.PageInfo {
	return &directoryv1.PageInfo{
		Page:     int32(p.Page),
		PageSize: int32(p.PageSize),
		Total:    int32(p.Total),
		HasNext:  p.HasNext,
		HasPrev:  p.HasPrev,
	}
}
