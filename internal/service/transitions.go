package service

import (
	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

// Operation: переход статуса, который выполняет менеджер или администратор.
type Operation string

const (
	OpManagerApprove Operation = "manager_approve"
	OpManagerReject  Operation = "manager_reject"
	OpAdminApprove   Operation = "admin_approve"
	OpAdminReject    Operation = "admin_reject"
)

type transition struct {
	from  model.BookingStatus
	to    model.BookingStatus
	role  calendar.UserRole
	event model.EventType

	requiresReason bool

	// Шаблоны уведомлений: %s зал, %s причина (для отказов).
	// Пустой шаблон менеджеру: менеджера не уведомляем.
	requesterMessage string
	managerMessage   string
}

var transitions = map[Operation]transition{
	OpManagerApprove: {
		from:             model.BookingStatusPending,
		to:               model.BookingStatusApprovedByManager,
		role:             calendar.UserRoleManager,
		event:            model.EventTypeBookingManagerApproved,
		requesterMessage: `Your booking for seminar hall "%s" has been approved by the manager and is awaiting admin approval.`,
	},
	OpManagerReject: {
		from:             model.BookingStatusPending,
		to:               model.BookingStatusRejectedByManager,
		role:             calendar.UserRoleManager,
		event:            model.EventTypeBookingManagerRejected,
		requiresReason:   true,
		requesterMessage: `Your booking for seminar hall "%s" has been rejected. Reason: %s`,
	},
	OpAdminApprove: {
		from:             model.BookingStatusApprovedByManager,
		to:               model.BookingStatusApprovedByAdmin,
		role:             calendar.UserRoleAdmin,
		event:            model.EventTypeBookingAdminApproved,
		requesterMessage: `Your booking for seminar hall "%s" has been approved by admin and is confirmed.`,
		managerMessage:   `Booking for seminar hall "%s" has been approved by admin.`,
	},
	OpAdminReject: {
		from:             model.BookingStatusApprovedByManager,
		to:               model.BookingStatusRejectedByAdmin,
		role:             calendar.UserRoleAdmin,
		event:            model.EventTypeBookingAdminRejected,
		requiresReason:   true,
		requesterMessage: `Your booking for seminar hall "%s" has been rejected by the admin. Reason: %s`,
		managerMessage:   `Booking for seminar hall "%s" has been rejected by the admin. Reason: %s`,
	},
}
