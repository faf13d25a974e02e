package rpc

import (
	"context"

	"go.uber.org/zap"

	directoryv1 "github.com/Leganyst/seminar-hall-booking/internal/api/directory/v1"
	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

// DirectoryServer: пользователи, роли и залы.
type DirectoryServer struct {
	directoryv1.UnimplementedDirectoryServiceServer

	svc *service.DirectoryService
	log *zap.Logger
}

func NewDirectoryServer(svc *service.DirectoryService, log *zap.Logger) *DirectoryServer {
	return &DirectoryServer{svc: svc, log: log}
}

func (s *DirectoryServer) RegisterUser(ctx context.Context, req *directoryv1.RegisterUserRequest) (*directoryv1.UserResponse, error) {
	return s.user(s.svc.RegisterUser(ctx, req.GetUsername(), req.GetEmail()))
}

func (s *DirectoryServer) SetRole(ctx context.Context, req *directoryv1.SetRoleRequest) (*directoryv1.UserResponse, error) {
	return s.user(s.svc.SetRole(ctx, req.GetActorId(), req.GetUserId(), req.GetRole()))
}

func (s *DirectoryServer) GetUser(ctx context.Context, req *directoryv1.GetUserRequest) (*directoryv1.UserResponse, error) {
	return s.user(s.svc.GetUser(ctx, req.GetUserId()))
}

func (s *DirectoryServer) CreateHall(ctx context.Context, req *directoryv1.CreateHallRequest) (*directoryv1.HallResponse, error) {
	return s.hall(s.svc.CreateHall(ctx, req.GetActorId(), service.HallInput{
		Name:      req.GetName(),
		Capacity:  int(req.GetCapacity()),
		Details:   req.GetDetails(),
		Equipment: toEquipment(req.GetEquipment()),
	}))
}

func (s *DirectoryServer) GetHall(ctx context.Context, req *directoryv1.GetHallRequest) (*directoryv1.HallResponse, error) {
	return s.hall(s.svc.GetHall(ctx, req.GetHallId()))
}

func (s *DirectoryServer) ListHalls(ctx context.Context, req *directoryv1.ListHallsRequest) (*directoryv1.ListHallsResponse, error) {
	halls, err := s.svc.ListHalls(ctx)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	if req.GetAvailableOnly() {
		open := make([]model.Hall, 0, len(halls))
		for _, h := range halls {
			if h.IsAvailable {
				open = append(open, h)
			}
		}
		halls = open
	}

	page := calendar.Paginate(halls, int(req.GetPage()), int(req.GetPageSize()))
	resp := &directoryv1.ListHallsResponse{
		Halls:    make([]*directoryv1.Hall, 0, len(page.Items)),
		PageInfo: directoryPageInfo(page),
	}
	for i := range page.Items {
		resp.Halls = append(resp.Halls, mapHall(&page.Items[i]))
	}
	return resp, nil
}

func (s *DirectoryServer) SetHallAvailability(ctx context.Context, req *directoryv1.SetHallAvailabilityRequest) (*directoryv1.HallResponse, error) {
	return s.hall(s.svc.SetHallAvailability(ctx, req.GetActorId(), req.GetHallId(), req.GetIsAvailable(), req.GetReason()))
}

func (s *DirectoryServer) user(p *service.UserProfile, err error) (*directoryv1.UserResponse, error) {
	if err != nil {
		return nil, toStatus(s.log, err)
	}
	return &directoryv1.UserResponse{User: mapUser(p)}, nil
}

func (s *DirectoryServer) hall(h *model.Hall, err error) (*directoryv1.HallResponse, error) {
	if err != nil {
		return nil, toStatus(s.log, err)
	}
	return &directoryv1.HallResponse{Hall: mapHall(h)}, nil
}
