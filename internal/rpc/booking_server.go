package rpc

import (
	"context"

	"go.uber.org/zap"

	bookingv1 "github.com/Leganyst/seminar-hall-booking/internal/api/booking/v1"
	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

// BookingServer: транспорт поверх service.BookingService.
type BookingServer struct {
	bookingv1.UnimplementedBookingServiceServer

	svc *service.BookingService
	log *zap.Logger
}

func NewBookingServer(svc *service.BookingService, log *zap.Logger) *BookingServer {
	return &BookingServer{svc: svc, log: log}
}

func (s *BookingServer) SubmitBooking(ctx context.Context, req *bookingv1.SubmitBookingRequest) (*bookingv1.BookingResponse, error) {
	b, err := s.svc.SubmitBooking(ctx, service.BookingInput{
		HallID:       req.GetHallId(),
		RequesterID:  req.GetRequesterId(),
		Date:         req.GetDate(),
		StartTime:    req.GetStartTime(),
		EndTime:      req.GetEndTime(),
		EventName:    req.GetEventName(),
		EventDetails: req.GetEventDetails(),
		Coordinators: toCoordinators(req.GetCoordinators()),
	})
	return s.booking(b, err)
}

func (s *BookingServer) UpdatePendingBooking(ctx context.Context, req *bookingv1.UpdatePendingBookingRequest) (*bookingv1.BookingResponse, error) {
	b, err := s.svc.UpdatePendingBooking(ctx, req.GetBookingId(), req.GetActorId(), service.BookingInput{
		Date:         req.GetDate(),
		StartTime:    req.GetStartTime(),
		EndTime:      req.GetEndTime(),
		EventName:    req.GetEventName(),
		EventDetails: req.GetEventDetails(),
		Coordinators: toCoordinators(req.GetCoordinators()),
	})
	return s.booking(b, err)
}

func (s *BookingServer) ManagerApprove(ctx context.Context, req *bookingv1.DecisionRequest) (*bookingv1.BookingResponse, error) {
	return s.booking(s.svc.ManagerApprove(ctx, req.GetBookingId(), req.GetActorId()))
}

func (s *BookingServer) ManagerReject(ctx context.Context, req *bookingv1.DecisionRequest) (*bookingv1.BookingResponse, error) {
	return s.booking(s.svc.ManagerReject(ctx, req.GetBookingId(), req.GetActorId(), req.GetReason()))
}

func (s *BookingServer) AdminApprove(ctx context.Context, req *bookingv1.DecisionRequest) (*bookingv1.BookingResponse, error) {
	return s.booking(s.svc.AdminApprove(ctx, req.GetBookingId(), req.GetActorId()))
}

func (s *BookingServer) AdminReject(ctx context.Context, req *bookingv1.DecisionRequest) (*bookingv1.BookingResponse, error) {
	return s.booking(s.svc.AdminReject(ctx, req.GetBookingId(), req.GetActorId(), req.GetReason()))
}

func (s *BookingServer) CancelBooking(ctx context.Context, req *bookingv1.CancelBookingRequest) (*bookingv1.CancelBookingResponse, error) {
	if err := s.svc.CancelBooking(ctx, req.GetBookingId(), req.GetActorId()); err != nil {
		return nil, toStatus(s.log, err)
	}
	return &bookingv1.CancelBookingResponse{}, nil
}

func (s *BookingServer) GetBooking(ctx context.Context, req *bookingv1.GetBookingRequest) (*bookingv1.BookingResponse, error) {
	return s.booking(s.svc.GetBooking(ctx, req.GetBookingId()))
}

func (s *BookingServer) CheckConflict(ctx context.Context, req *bookingv1.CheckConflictRequest) (*bookingv1.CheckConflictResponse, error) {
	has, conflicts, err := s.svc.HasConflict(ctx,
		req.GetHallId(), req.GetDate(), req.GetStartTime(), req.GetEndTime(), req.GetExcludingBookingId())
	if err != nil {
		return nil, toStatus(s.log, err)
	}
	return &bookingv1.CheckConflictResponse{
		Conflict:  has,
		Conflicts: mapTimeWindows(conflicts),
	}, nil
}

func (s *BookingServer) ListBookings(ctx context.Context, req *bookingv1.ListBookingsRequest) (*bookingv1.ListBookingsResponse, error) {
	items, err := s.svc.ListView(ctx, service.View(req.GetView()), req.GetUserId())
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	page := calendar.Paginate(items, int(req.GetPage()), int(req.GetPageSize()))
	return &bookingv1.ListBookingsResponse{
		Bookings: mapBookings(page.Items),
		PageInfo: bookingPageInfo(page),
	}, nil
}

func (s *BookingServer) BookingHistory(ctx context.Context, req *bookingv1.BookingHistoryRequest) (*bookingv1.BookingHistoryResponse, error) {
	events, err := s.svc.BookingHistory(ctx, req.GetBookingId())
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	resp := &bookingv1.BookingHistoryResponse{Events: make([]*bookingv1.Event, 0, len(events))}
	for i := range events {
		resp.Events = append(resp.Events, mapEvent(&events[i]))
	}
	return resp, nil
}

func (s *BookingServer) ListNotifications(ctx context.Context, req *bookingv1.ListNotificationsRequest) (*bookingv1.ListNotificationsResponse, error) {
	items, err := s.svc.ListNotifications(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	if req.GetUnreadOnly() {
		unread := make([]model.Notification, 0, len(items))
		for _, n := range items {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		items = unread
	}

	page := calendar.Paginate(items, int(req.GetPage()), int(req.GetPageSize()))
	resp := &bookingv1.ListNotificationsResponse{
		Notifications: make([]*bookingv1.Notification, 0, len(page.Items)),
		PageInfo:      bookingPageInfo(page),
	}
	for i := range page.Items {
		resp.Notifications = append(resp.Notifications, mapNotification(&page.Items[i]))
	}
	return resp, nil
}

func (s *BookingServer) MarkNotificationRead(ctx context.Context, req *bookingv1.MarkNotificationReadRequest) (*bookingv1.MarkNotificationReadResponse, error) {
	if err := s.svc.MarkNotificationRead(ctx, req.GetNotificationId(), req.GetUserId()); err != nil {
		return nil, toStatus(s.log, err)
	}
	return &bookingv1.MarkNotificationReadResponse{}, nil
}

func (s *BookingServer) booking(b *model.Booking, err error) (*bookingv1.BookingResponse, error) {
	if err != nil {
		return nil, toStatus(s.log, err)
	}
	return &bookingv1.BookingResponse{Booking: mapBooking(b)}, nil
}
