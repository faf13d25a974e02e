package rpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

// toStatus переводит ошибку сервиса в gRPC-статус.
// Неизвестные ошибки наружу не отдаются: только лог и Internal.
func toStatus(log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var se *service.Error
	if !errors.As(err, &se) {
		log.Error("internal error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}

	return status.Error(codeOf(se.Kind), se.Message)
}

func codeOf(kind error) codes.Code {
	switch {
	case errors.Is(kind, service.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(kind, service.ErrNotFound):
		return codes.NotFound
	case errors.Is(kind, service.ErrConflict):
		return codes.AlreadyExists
	case errors.Is(kind, service.ErrInvalidTransition):
		return codes.FailedPrecondition
	case errors.Is(kind, service.ErrForbidden):
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}
