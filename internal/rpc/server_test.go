package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	bookingv1 "github.com/Leganyst/seminar-hall-booking/internal/api/booking/v1"
	directoryv1 "github.com/Leganyst/seminar-hall-booking/internal/api/directory/v1"
	"github.com/Leganyst/seminar-hall-booking/internal/config"
	"github.com/Leganyst/seminar-hall-booking/internal/db"
	"github.com/Leganyst/seminar-hall-booking/internal/notify"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

type testEnv struct {
	conn      *grpc.ClientConn
	bookings  bookingv1.BookingServiceClient
	directory directoryv1.DirectoryServiceClient
	adminID   string
}

// startServer поднимает сервер на bufconn. Администратор заводится так же, как при старте сервиса.
func startServer(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}
	gdb, err := db.NewGormDB(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(context.Background(), gdb, cfg.Driver); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := zaptest.NewLogger(t)

	users := repository.NewGormUserRepository(gdb)
	halls := repository.NewGormHallRepository(gdb)
	notifications := repository.NewGormNotificationRepository(gdb)

	bookingSvc := service.NewBookingService(
		repository.NewGormBookingRepository(gdb),
		halls,
		users,
		repository.NewGormEventRepository(gdb),
		notifications,
		notify.NewGormSink(notifications),
		log,
	)
	dirSvc := service.NewDirectoryService(users, halls, log)

	admin, err := dirSvc.EnsureAdmin(context.Background(), "admin", "admin@example.com")
	if err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}

	srv, _ := NewServer(log, NewBookingServer(bookingSvc, log), NewDirectoryServer(dirSvc, log))

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &testEnv{
		conn:      conn,
		bookings:  bookingv1.NewBookingServiceClient(conn),
		directory: directoryv1.NewDirectoryServiceClient(conn),
		adminID:   admin.User.ID.String(),
	}
}

// must(client.Call(ctx, req))(t): ответ или t.Fatal.
func must[T any](v T, err error) func(t *testing.T) T {
	return func(t *testing.T) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
}

func expectCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, err)
	}
}

func (e *testEnv) register(t *testing.T, name, role string) string {
	t.Helper()
	ctx := context.Background()
	u := must(e.directory.RegisterUser(ctx, &directoryv1.RegisterUserRequest{Username: name, Email: name + "@example.com"}))(t)
	if role != "user" {
		u = must(e.directory.SetRole(ctx, &directoryv1.SetRoleRequest{ActorId: e.adminID, UserId: u.GetUser().GetId(), Role: role}))(t)
	}
	if u.GetUser().GetRole() != role {
		t.Fatalf("expected role %s, got %s", role, u.GetUser().GetRole())
	}
	return u.GetUser().GetId()
}

func TestServer_BookingLifecycle(t *testing.T) {
	env := startServer(t)
	ctx := context.Background()

	userID := env.register(t, "user", "user")
	managerID := env.register(t, "manager", "manager")
	adminID := env.adminID

	hall := must(env.directory.CreateHall(ctx, &directoryv1.CreateHallRequest{
		ActorId:   adminID,
		Name:      "A",
		Capacity:  80,
		Equipment: []*directoryv1.Equipment{{Name: "Mic", Type: "audio", Condition: "good", Available: true, Quantity: 2}},
	}))(t).GetHall()
	if hall.GetCapacity() != 80 || len(hall.GetEquipment()) != 1 || hall.GetEquipment()[0].GetQuantity() != 2 {
		t.Fatalf("unexpected hall: %v", hall)
	}

	submit := &bookingv1.SubmitBookingRequest{
		HallId:       hall.GetId(),
		RequesterId:  userID,
		Date:         "2025-01-10",
		StartTime:    "10:00",
		EndTime:      "11:00",
		EventName:    "Workshop",
		EventDetails: "Intro to gRPC",
		Coordinators: []*bookingv1.Coordinator{{Name: "Asha", Contact: "9123456789", Email: "asha@example.com"}},
	}
	b := must(env.bookings.SubmitBooking(ctx, submit))(t).GetBooking()
	if b.GetStatus() != "pending" || b.GetDisplayStatus() != "Pending" || len(b.GetCoordinators()) != 1 {
		t.Fatalf("unexpected booking: %v", b)
	}
	if b.GetCreatedAt() == nil || b.GetCreatedAt().AsTime().IsZero() {
		t.Fatalf("created_at must be set, got %v", b.GetCreatedAt())
	}

	overlapping := proto.Clone(submit).(*bookingv1.SubmitBookingRequest)
	overlapping.StartTime, overlapping.EndTime = "10:30", "11:30"
	_, err := env.bookings.SubmitBooking(ctx, overlapping)
	expectCode(t, err, codes.AlreadyExists)

	conflict := must(env.bookings.CheckConflict(ctx, &bookingv1.CheckConflictRequest{
		HallId: hall.GetId(), Date: "2025-01-10", StartTime: "10:59", EndTime: "12:00",
	}))(t)
	if !conflict.GetConflict() || len(conflict.GetConflicts()) != 1 {
		t.Fatalf("expected one conflict, got %v", conflict)
	}
	if w := conflict.GetConflicts()[0]; w.GetBookingId() != b.GetId() || w.GetStartTime() != "10:00" || w.GetEndTime() != "11:00" {
		t.Fatalf("unexpected conflicting window: %v", w)
	}

	free := must(env.bookings.CheckConflict(ctx, &bookingv1.CheckConflictRequest{
		HallId: hall.GetId(), Date: "2025-01-10", StartTime: "11:00", EndTime: "12:00",
	}))(t)
	if free.GetConflict() || len(free.GetConflicts()) != 0 {
		t.Fatalf("touching window must be free, got %v", free)
	}

	_, err = env.bookings.AdminApprove(ctx, &bookingv1.DecisionRequest{BookingId: b.GetId(), ActorId: adminID})
	expectCode(t, err, codes.FailedPrecondition)

	_, err = env.bookings.ManagerReject(ctx, &bookingv1.DecisionRequest{BookingId: b.GetId(), ActorId: managerID})
	expectCode(t, err, codes.InvalidArgument)

	_, err = env.bookings.ManagerApprove(ctx, &bookingv1.DecisionRequest{BookingId: b.GetId(), ActorId: userID})
	expectCode(t, err, codes.PermissionDenied)

	b = must(env.bookings.ManagerApprove(ctx, &bookingv1.DecisionRequest{BookingId: b.GetId(), ActorId: managerID}))(t).GetBooking()
	if b.GetStatus() != "approved_by_manager" || b.GetDisplayStatus() != "Pending" || b.GetManagerId() != managerID {
		t.Fatalf("unexpected booking after manager approve: %v", b)
	}

	b = must(env.bookings.AdminApprove(ctx, &bookingv1.DecisionRequest{BookingId: b.GetId(), ActorId: adminID}))(t).GetBooking()
	if b.GetStatus() != "approved_by_admin" || b.GetDisplayStatus() != "Confirmed" || b.GetAdminId() != adminID {
		t.Fatalf("unexpected booking after admin approve: %v", b)
	}

	_, err = env.bookings.CancelBooking(ctx, &bookingv1.CancelBookingRequest{BookingId: b.GetId(), ActorId: userID})
	expectCode(t, err, codes.FailedPrecondition)

	confirmed := must(env.bookings.ListBookings(ctx, &bookingv1.ListBookingsRequest{View: "confirmed"}))(t)
	if len(confirmed.GetBookings()) != 1 || confirmed.GetPageInfo().GetTotal() != 1 || confirmed.GetBookings()[0].GetId() != b.GetId() {
		t.Fatalf("unexpected confirmed view: %v", confirmed)
	}

	_, err = env.bookings.ListBookings(ctx, &bookingv1.ListBookingsRequest{View: "all"})
	expectCode(t, err, codes.InvalidArgument)

	history := must(env.bookings.BookingHistory(ctx, &bookingv1.BookingHistoryRequest{BookingId: b.GetId()}))(t)
	if len(history.GetEvents()) != 3 {
		t.Fatalf("expected 3 events, got %d", len(history.GetEvents()))
	}

	inbox := must(env.bookings.ListNotifications(ctx, &bookingv1.ListNotificationsRequest{UserId: userID}))(t)
	if len(inbox.GetNotifications()) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(inbox.GetNotifications()))
	}
	must(env.bookings.MarkNotificationRead(ctx, &bookingv1.MarkNotificationReadRequest{
		NotificationId: inbox.GetNotifications()[0].GetId(), UserId: userID,
	}))(t)

	unread := must(env.bookings.ListNotifications(ctx, &bookingv1.ListNotificationsRequest{UserId: userID, UnreadOnly: true}))(t)
	if len(unread.GetNotifications()) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(unread.GetNotifications()))
	}

	_, err = env.bookings.GetBooking(ctx, &bookingv1.GetBookingRequest{BookingId: hall.GetId()})
	expectCode(t, err, codes.NotFound)
}

func TestServer_SetRoleRequiresAdmin(t *testing.T) {
	env := startServer(t)
	ctx := context.Background()

	userID := env.register(t, "user", "user")

	_, err := env.directory.SetRole(ctx, &directoryv1.SetRoleRequest{ActorId: userID, UserId: userID, Role: "admin"})
	expectCode(t, err, codes.PermissionDenied)

	_, err = env.directory.SetRole(ctx, &directoryv1.SetRoleRequest{UserId: userID, Role: "admin"})
	expectCode(t, err, codes.InvalidArgument)

	u := must(env.directory.GetUser(ctx, &directoryv1.GetUserRequest{UserId: userID}))(t)
	if u.GetUser().GetRole() != "user" {
		t.Fatalf("role must not change, got %s", u.GetUser().GetRole())
	}
}

func TestServer_ListPagination(t *testing.T) {
	env := startServer(t)
	ctx := context.Background()

	userID := env.register(t, "user", "user")
	hall := must(env.directory.CreateHall(ctx, &directoryv1.CreateHallRequest{ActorId: env.adminID, Name: "A", Capacity: 10}))(t).GetHall()

	for i := 0; i < 5; i++ {
		must(env.bookings.SubmitBooking(ctx, &bookingv1.SubmitBookingRequest{
			HallId:       hall.GetId(),
			RequesterId:  userID,
			Date:         "2025-03-01",
			StartTime:    fmt.Sprintf("%02d:00", 8+i),
			EndTime:      fmt.Sprintf("%02d:00", 9+i),
			EventName:    "Lecture",
			EventDetails: "Weekly lecture",
		}))(t)
	}

	page := must(env.bookings.ListBookings(ctx, &bookingv1.ListBookingsRequest{View: "pending_manager", Page: 2, PageSize: 2}))(t)
	info := page.GetPageInfo()
	if len(page.GetBookings()) != 2 || info.GetTotal() != 5 || !info.GetHasNext() || !info.GetHasPrev() {
		t.Fatalf("unexpected page: %v", info)
	}
	if page.GetBookings()[0].GetStartTime() != "10:00" {
		t.Fatalf("expected bookings ordered by time, got %s first", page.GetBookings()[0].GetStartTime())
	}

	mine := must(env.bookings.ListBookings(ctx, &bookingv1.ListBookingsRequest{View: "user", UserId: userID}))(t)
	if mine.GetPageInfo().GetTotal() != 5 {
		t.Fatalf("expected 5 user bookings, got %d", mine.GetPageInfo().GetTotal())
	}

	must(env.directory.SetHallAvailability(ctx, &directoryv1.SetHallAvailabilityRequest{
		ActorId: env.adminID, HallId: hall.GetId(), IsAvailable: false, Reason: "exams",
	}))(t)
	open := must(env.directory.ListHalls(ctx, &directoryv1.ListHallsRequest{AvailableOnly: true}))(t)
	if len(open.GetHalls()) != 0 {
		t.Fatalf("closed hall must be filtered out, got %d", len(open.GetHalls()))
	}
}

func TestServer_Health(t *testing.T) {
	env := startServer(t)

	for _, name := range []string{
		bookingv1.BookingService_ServiceDesc.ServiceName,
		directoryv1.DirectoryService_ServiceDesc.ServiceName,
	} {
		resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		if err != nil {
			t.Fatalf("health check %s: %v", name, err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			t.Fatalf("%s: unexpected health status %s", name, resp.GetStatus())
		}
	}
}

// Отражение должно отдавать описание сервисов: по нему работают grpcurl и другие клиенты.
func TestServer_ReflectionDescribesServices(t *testing.T) {
	env := startServer(t)

	cases := []struct {
		symbol string
		file   string
	}{
		{"seminar.booking.v1.BookingService", "seminar/booking/v1/booking.proto"},
		{"seminar.directory.v1.DirectoryService", "seminar/directory/v1/directory.proto"},
	}

	stream, err := reflectionpb.NewServerReflectionClient(env.conn).ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("open reflection stream: %v", err)
	}
	defer func() { _ = stream.CloseSend() }()

	for _, c := range cases {
		err := stream.Send(&reflectionpb.ServerReflectionRequest{
			MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: c.symbol},
		})
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		resp, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		if e := resp.GetErrorResponse(); e != nil {
			t.Fatalf("%s: reflection error %d %s", c.symbol, e.GetErrorCode(), e.GetErrorMessage())
		}

		var found *descriptorpb.FileDescriptorProto
		for _, raw := range resp.GetFileDescriptorResponse().GetFileDescriptorProto() {
			fd := &descriptorpb.FileDescriptorProto{}
			if err := proto.Unmarshal(raw, fd); err != nil {
				t.Fatalf("unmarshal descriptor: %v", err)
			}
			if fd.GetName() == c.file {
				found = fd
			}
		}
		if found == nil {
			t.Fatalf("%s: descriptor %s not returned", c.symbol, c.file)
		}
		if len(found.GetService()) != 1 {
			t.Fatalf("%s: expected one service, got %d", c.file, len(found.GetService()))
		}
	}
}

// Вызов без сгенерированного клиента, как его делает произвольный protobuf-клиент.
func TestServer_DefaultCodecInvoke(t *testing.T) {
	env := startServer(t)

	out := &directoryv1.UserResponse{}
	err := env.conn.Invoke(context.Background(),
		directoryv1.DirectoryService_GetUser_FullMethodName,
		&directoryv1.GetUserRequest{UserId: env.adminID}, out)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out.GetUser().GetUsername() != "admin" || out.GetUser().GetRole() != "admin" {
		t.Fatalf("unexpected user: %v", out.GetUser())
	}
}

func TestToStatus_Mapping(t *testing.T) {
	log := zap.NewNop()
	cases := []struct {
		kind error
		want codes.Code
	}{
		{service.ErrValidation, codes.InvalidArgument},
		{service.ErrNotFound, codes.NotFound},
		{service.ErrConflict, codes.AlreadyExists},
		{service.ErrInvalidTransition, codes.FailedPrecondition},
		{service.ErrForbidden, codes.PermissionDenied},
	}
	for _, c := range cases {
		err := toStatus(log, &service.Error{Kind: c.kind, Message: "boom"})
		if status.Code(err) != c.want {
			t.Fatalf("%v: expected %s, got %s", c.kind, c.want, status.Code(err))
		}
		if status.Convert(err).Message() != "boom" {
			t.Fatalf("message must be kept, got %q", status.Convert(err).Message())
		}
	}

	err := toStatus(log, errors.New("pq: connection refused"))
	if status.Code(err) != codes.Internal || status.Convert(err).Message() != "internal error" {
		t.Fatalf("internal errors must be hidden, got %v", err)
	}

	if toStatus(log, nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}
