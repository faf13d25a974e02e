package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/notify"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
)

// Мобильный номер: необязательный +91 или 0, затем 10 цифр, первая 6-9.
var contactRe = regexp.MustCompile(`^(\+91|0)?[6-9]\d{9}$`)

// BookingInput: данные заявки от пользователя. HallID при редактировании игнорируется.
type BookingInput struct {
	HallID       string
	RequesterID  string
	Date         string
	StartTime    string
	EndTime      string
	EventName    string
	EventDetails string
	Coordinators []model.Coordinator
}

// BookingService реализует жизненный цикл заявки на зал: подачу, согласование
// менеджером и администратором, отмену, проверку пересечений и выборки.
type BookingService struct {
	bookings      repository.BookingRepository
	halls         repository.HallRepository
	users         repository.UserRepository
	events        repository.EventRepository
	notifications repository.NotificationRepository
	sink          notify.Sink
	log           *zap.Logger
}

func NewBookingService(
	bookings repository.BookingRepository,
	halls repository.HallRepository,
	users repository.UserRepository,
	events repository.EventRepository,
	notifications repository.NotificationRepository,
	sink notify.Sink,
	log *zap.Logger,
) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		bookings:      bookings,
		halls:         halls,
		users:         users,
		events:        events,
		notifications: notifications,
		sink:          sink,
		log:           log,
	}
}

//
// Подача и редактирование
//

// SubmitBooking создаёт заявку в статусе pending, если окно свободно.
func (s *BookingService) SubmitBooking(ctx context.Context, in BookingInput) (*model.Booking, error) {
	hallID, err := parseID("hall_id", in.HallID)
	if err != nil {
		return nil, err
	}
	requesterID, err := parseID("requester_id", in.RequesterID)
	if err != nil {
		return nil, err
	}

	window, coordinators, err := validateBookingInput(in)
	if err != nil {
		return nil, err
	}

	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return nil, s.lookupError("hall", err)
	}
	if err := checkHallAvailable(hall); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, s.lookupError("user", err)
	}

	b := &model.Booking{
		HallID:       hallID,
		RequesterID:  requesterID,
		BookingDate:  window.Date,
		StartTime:    window.StartTime,
		EndTime:      window.EndTime,
		EventName:    strings.TrimSpace(in.EventName),
		EventDetails: strings.TrimSpace(in.EventDetails),
		Coordinators: coordinators,
		Status:       model.BookingStatusPending,
	}
	ev := &model.Event{
		EventType: model.EventTypeBookingCreated,
		UserID:    &requesterID,
		Details:   fmt.Sprintf("hall=%s date=%s %s-%s", hallID, window.Date, window.StartTime, window.EndTime),
	}

	if err := s.bookings.CreateWithNoOverlap(ctx, b, ev); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, newError(ErrConflict, "seminar hall %q is already booked for %s %s-%s", hall.Name, window.Date, window.StartTime, window.EndTime)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "hall not found")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking submitted",
		zap.String("booking_id", b.ID.String()),
		zap.String("hall_id", hallID.String()),
		zap.String("requester_id", requesterID.String()),
		zap.String("date", b.BookingDate),
		zap.String("start", b.StartTime),
		zap.String("end", b.EndTime),
	)

	return b, nil
}

// UpdatePendingBooking меняет окно и описание заявки, пока она в pending.
// Проверка пересечений не учитывает прежнее окно этой же заявки.
func (s *BookingService) UpdatePendingBooking(ctx context.Context, bookingID, actorID string, in BookingInput) (*model.Booking, error) {
	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID("actor_id", actorID)
	if err != nil {
		return nil, err
	}

	window, coordinators, err := validateBookingInput(in)
	if err != nil {
		return nil, err
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notInState(model.BookingStatusPending)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if current.RequesterID != actor {
		return nil, newError(ErrForbidden, "only the requester can edit this booking")
	}
	if current.Status != model.BookingStatusPending {
		return nil, statusError(current.Status, model.BookingStatusPending)
	}

	// закрытый зал не принимает и перенос заявки
	hall, err := s.halls.GetByID(ctx, current.HallID)
	if err != nil {
		return nil, s.lookupError("hall", err)
	}
	if err := checkHallAvailable(hall); err != nil {
		return nil, err
	}

	b := &model.Booking{
		ID:           id,
		HallID:       current.HallID,
		BookingDate:  window.Date,
		StartTime:    window.StartTime,
		EndTime:      window.EndTime,
		EventName:    strings.TrimSpace(in.EventName),
		EventDetails: strings.TrimSpace(in.EventDetails),
		Coordinators: coordinators,
	}
	ev := &model.Event{
		EventType: model.EventTypeBookingUpdated,
		UserID:    &actor,
		Details: fmt.Sprintf("%s %s-%s -> %s %s-%s",
			current.BookingDate, current.StartTime, current.EndTime,
			window.Date, window.StartTime, window.EndTime),
	}

	if err := s.bookings.UpdatePendingWithNoOverlap(ctx, b, ev); err != nil {
		switch {
		case errors.Is(err, repository.ErrOverlap):
			return nil, newError(ErrConflict, "seminar hall %q is already booked for %s %s-%s", hall.Name, window.Date, window.StartTime, window.EndTime)
		case errors.Is(err, repository.ErrStatusChanged):
			return nil, notInState(model.BookingStatusPending)
		default:
			return nil, fmt.Errorf("update booking: %w", err)
		}
	}

	s.log.Info("booking updated",
		zap.String("booking_id", id.String()),
		zap.String("actor_id", actor.String()),
		zap.String("date", b.BookingDate),
		zap.String("start", b.StartTime),
		zap.String("end", b.EndTime),
	)

	return b, nil
}

//
// Согласование
//

func (s *BookingService) ManagerApprove(ctx context.Context, bookingID, actorID string) (*model.Booking, error) {
	return s.transition(ctx, OpManagerApprove, bookingID, actorID, "")
}

func (s *BookingService) ManagerReject(ctx context.Context, bookingID, actorID, reason string) (*model.Booking, error) {
	return s.transition(ctx, OpManagerReject, bookingID, actorID, reason)
}

func (s *BookingService) AdminApprove(ctx context.Context, bookingID, actorID string) (*model.Booking, error) {
	return s.transition(ctx, OpAdminApprove, bookingID, actorID, "")
}

func (s *BookingService) AdminReject(ctx context.Context, bookingID, actorID, reason string) (*model.Booking, error) {
	return s.transition(ctx, OpAdminReject, bookingID, actorID, reason)
}

func (s *BookingService) transition(ctx context.Context, op Operation, bookingID, actorID, reason string) (*model.Booking, error) {
	t, ok := transitions[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if t.requiresReason && reason == "" {
		return nil, validationError("rejection reason is required")
	}
	if !t.requiresReason {
		reason = ""
	}

	actor, err := authorizeActor(ctx, s.users, actorID, t.role)
	if err != nil {
		return nil, err
	}

	change := repository.StatusChange{
		From:            t.from,
		To:              t.to,
		RejectionReason: reason,
	}
	switch t.role {
	case calendar.UserRoleManager:
		change.ManagerID = &actor.ID
	case calendar.UserRoleAdmin:
		change.AdminID = &actor.ID
	}

	details := fmt.Sprintf("%s -> %s", t.from, t.to)
	if reason != "" {
		details += ": " + reason
	}
	ev := &model.Event{EventType: t.event, UserID: &actor.ID, Details: details}

	b, err := s.bookings.TransitionStatus(ctx, id, change, ev)
	if err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, s.currentStateError(ctx, id, t.from)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking status changed",
		zap.String("booking_id", id.String()),
		zap.String("actor_id", actor.ID.String()),
		zap.String("from", string(t.from)),
		zap.String("to", string(t.to)),
	)

	hallName := s.hallName(ctx, b.HallID)
	s.emit(ctx, b.RequesterID, b.ID, formatMessage(t.requesterMessage, hallName, reason, t.requiresReason))
	if t.managerMessage != "" && b.ManagerID != nil {
		s.emit(ctx, *b.ManagerID, b.ID, formatMessage(t.managerMessage, hallName, reason, t.requiresReason))
	}

	return b, nil
}

// CancelBooking удаляет заявку владельца, пока она в pending.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, actorID string) error {
	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return err
	}
	actor, err := parseID("actor_id", actorID)
	if err != nil {
		return err
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notInState(model.BookingStatusPending)
		}
		return fmt.Errorf("get booking: %w", err)
	}
	if b.RequesterID != actor {
		return newError(ErrForbidden, "only the requester can cancel this booking")
	}
	if b.Status != model.BookingStatusPending {
		return statusError(b.Status, model.BookingStatusPending)
	}

	ev := &model.Event{
		EventType: model.EventTypeBookingCancelled,
		UserID:    &actor,
		Details:   fmt.Sprintf("hall=%s date=%s %s-%s", b.HallID, b.BookingDate, b.StartTime, b.EndTime),
	}
	if err := s.bookings.DeleteIfStatus(ctx, id, model.BookingStatusPending, ev); err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			return notInState(model.BookingStatusPending)
		}
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("booking cancelled",
		zap.String("booking_id", id.String()),
		zap.String("actor_id", actor.String()),
	)
	return nil
}

//
// Чтение
//

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*model.Booking, error) {
	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return nil, err
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError("booking", err)
	}
	return b, nil
}

// HasConflict: пересекается ли окно с активными заявками зала и с какими именно.
// excludingBookingID может быть пустым.
func (s *BookingService) HasConflict(ctx context.Context, hallID, date, startTime, endTime, excludingBookingID string) (bool, []model.Booking, error) {
	hid, err := parseID("hall_id", hallID)
	if err != nil {
		return false, nil, err
	}

	var exclude *uuid.UUID
	if strings.TrimSpace(excludingBookingID) != "" {
		eid, err := parseID("excluding_booking_id", excludingBookingID)
		if err != nil {
			return false, nil, err
		}
		exclude = &eid
	}

	window, err := parseWindow(date, startTime, endTime)
	if err != nil {
		return false, nil, err
	}

	if _, err := s.halls.GetByID(ctx, hid); err != nil {
		return false, nil, s.lookupError("hall", err)
	}

	conflicts, err := s.bookings.Conflicts(ctx, hid, window, exclude)
	if err != nil {
		return false, nil, fmt.Errorf("check conflict: %w", err)
	}
	return len(conflicts) > 0, conflicts, nil
}

// View: выборка заявок для дашборда.
type View string

const (
	ViewPendingManager View = "pending_manager"
	ViewPendingAdmin   View = "pending_admin"
	ViewConfirmed      View = "confirmed"
	ViewRejected       View = "rejected"
	ViewUser           View = "user"
)

func (s *BookingService) PendingForManager(ctx context.Context) ([]model.Booking, error) {
	return s.byStatuses(ctx, model.BookingStatusPending)
}

func (s *BookingService) PendingForAdmin(ctx context.Context) ([]model.Booking, error) {
	return s.byStatuses(ctx, model.BookingStatusApprovedByManager)
}

func (s *BookingService) Confirmed(ctx context.Context) ([]model.Booking, error) {
	return s.byStatuses(ctx, model.BookingStatusApprovedByAdmin)
}

func (s *BookingService) Rejected(ctx context.Context) ([]model.Booking, error) {
	return s.byStatuses(ctx, model.RejectedBookingStatuses...)
}

// ByUser: все заявки пользователя в любых статусах, новые сверху.
func (s *BookingService) ByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	id, err := parseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	items, err := s.bookings.ListByRequester(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return items, nil
}

// ListView выбирает выборку по имени. userID нужен только для ViewUser.
func (s *BookingService) ListView(ctx context.Context, view View, userID string) ([]model.Booking, error) {
	switch view {
	case ViewPendingManager:
		return s.PendingForManager(ctx)
	case ViewPendingAdmin:
		return s.PendingForAdmin(ctx)
	case ViewConfirmed:
		return s.Confirmed(ctx)
	case ViewRejected:
		return s.Rejected(ctx)
	case ViewUser:
		return s.ByUser(ctx, userID)
	default:
		return nil, validationError("unknown view %q", view)
	}
}

func (s *BookingService) byStatuses(ctx context.Context, statuses ...model.BookingStatus) ([]model.Booking, error) {
	items, err := s.bookings.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return items, nil
}

// BookingHistory: журнал событий заявки, старые сверху. Переживает отмену.
func (s *BookingService) BookingHistory(ctx context.Context, bookingID string) ([]model.Event, error) {
	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListByBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

//
// Уведомления
//

func (s *BookingService) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	id, err := parseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	items, err := s.notifications.ListByRecipient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *BookingService) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	nid, err := parseID("notification_id", notificationID)
	if err != nil {
		return err
	}
	uid, err := parseID("user_id", userID)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkRead(ctx, nid, uid); err != nil {
		return s.lookupError("notification", err)
	}
	return nil
}

// emit отдаёт уведомление в синк. Ошибка доставки только логируется:
// переход статуса уже зафиксирован.
func (s *BookingService) emit(ctx context.Context, recipientID, bookingID uuid.UUID, message string) {
	if s.sink == nil {
		return
	}
	n := &model.Notification{
		RecipientID: recipientID,
		BookingID:   bookingID,
		Message:     message,
	}
	if err := s.sink.Send(ctx, n); err != nil {
		s.log.Warn("notification delivery failed",
			zap.String("recipient_id", recipientID.String()),
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
	}
}

func (s *BookingService) hallName(ctx context.Context, hallID uuid.UUID) string {
	h, err := s.halls.GetByID(ctx, hallID)
	if err != nil || h.Name == "" {
		return hallID.String()
	}
	return h.Name
}

// currentStateError перечитывает заявку после проигранного CAS, чтобы сказать,
// в каком она теперь статусе.
func (s *BookingService) currentStateError(ctx context.Context, id uuid.UUID, want model.BookingStatus) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return notInState(want)
	}
	return statusError(b.Status, want)
}

func (s *BookingService) lookupError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, "%s not found", what)
	}
	return fmt.Errorf("get %s: %w", what, err)
}

//
// Проверки
//

func authorizeActor(ctx context.Context, store calendar.ActorStore, actorID string, allowed ...calendar.UserRole) (*calendar.Actor, error) {
	actor, err := calendar.ValidateActor(ctx, store, actorID, allowed...)
	switch {
	case err == nil:
		return actor, nil
	case errors.Is(err, calendar.ErrInvalidActorID):
		return nil, validationError("actor_id must be a valid id")
	case errors.Is(err, calendar.ErrUserNotFound):
		return nil, newError(ErrForbidden, "actor is not a known user")
	case errors.Is(err, calendar.ErrRoleNotAllowed):
		return nil, newError(ErrForbidden, "actor role is not allowed to perform this operation")
	default:
		return nil, fmt.Errorf("validate actor: %w", err)
	}
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, validationError("%s must be a valid id", field)
	}
	return id, nil
}

func parseWindow(date, startTime, endTime string) (calendar.Window, error) {
	w, err := calendar.ParseWindow(date, startTime, endTime)
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, calendar.ErrInvalidDate):
		return calendar.Window{}, validationError("date must be in YYYY-MM-DD format")
	case errors.Is(err, calendar.ErrInvalidClock):
		return calendar.Window{}, validationError("start and end time must be in HH:MM format")
	case errors.Is(err, calendar.ErrInvalidTimeRange):
		return calendar.Window{}, validationError("start time must be before end time")
	default:
		return calendar.Window{}, validationError("invalid time window: %v", err)
	}
}

// validateBookingInput возвращает разобранное окно и координаторов без лишних пробелов.
func validateBookingInput(in BookingInput) (calendar.Window, []model.Coordinator, error) {
	if strings.TrimSpace(in.EventName) == "" {
		return calendar.Window{}, nil, validationError("event_name is required")
	}
	if strings.TrimSpace(in.EventDetails) == "" {
		return calendar.Window{}, nil, validationError("event_details is required")
	}

	window, err := parseWindow(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return calendar.Window{}, nil, err
	}

	// пустой список координаторов допустим
	coordinators := make([]model.Coordinator, 0, len(in.Coordinators))
	for i, c := range in.Coordinators {
		c = model.Coordinator{
			Name:    strings.TrimSpace(c.Name),
			Contact: strings.TrimSpace(c.Contact),
			Email:   strings.TrimSpace(c.Email),
		}
		if c.Name == "" {
			return calendar.Window{}, nil, validationError("coordinator #%d: name is required", i+1)
		}
		if !contactRe.MatchString(c.Contact) {
			return calendar.Window{}, nil, validationError("coordinator #%d: invalid phone number %q", i+1, c.Contact)
		}
		if c.Email != "" {
			if _, err := mail.ParseAddress(c.Email); err != nil {
				return calendar.Window{}, nil, validationError("coordinator #%d: invalid email %q", i+1, c.Email)
			}
		}
		coordinators = append(coordinators, c)
	}

	return window, coordinators, nil
}

func checkHallAvailable(hall *model.Hall) error {
	if hall.IsAvailable {
		return nil
	}
	reason := hall.UnavailabilityReason
	if reason == "" {
		reason = "not available"
	}
	return validationError("seminar hall %q is unavailable: %s", hall.Name, reason)
}

func notInState(status model.BookingStatus) error {
	return newError(ErrInvalidTransition, "booking not found or not in %s state", status)
}

// statusError: заявка есть, но не в нужном статусе. Для терминальных
// статусов сообщаем итог, который видит пользователь.
func statusError(current, want model.BookingStatus) error {
	if current.IsTerminal() {
		return newError(ErrInvalidTransition, "booking is already %s", strings.ToLower(string(current.Display())))
	}
	return newError(ErrInvalidTransition, "booking is %s, not in %s state", current, want)
}

func formatMessage(tmpl, hall, reason string, withReason bool) string {
	if withReason {
		return fmt.Sprintf(tmpl, hall, reason)
	}
	return fmt.Sprintf(tmpl, hall)
}
