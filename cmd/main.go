package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Leganyst/seminar-hall-booking/internal/config"
	"github.com/Leganyst/seminar-hall-booking/internal/db"
	"github.com/Leganyst/seminar-hall-booking/internal/logger"
	"github.com/Leganyst/seminar-hall-booking/internal/notify"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
	"github.com/Leganyst/seminar-hall-booking/internal/rpc"
	"github.com/Leganyst/seminar-hall-booking/internal/service"
)

func main() {
	// 1. Конфиг из .env и окружения.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Логгер.
	lg, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// 3. БД и миграции.
	gormDB, err := db.NewGormDB(cfg.DB)
	if err != nil {
		lg.Fatal("init db", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		lg.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := db.Migrate(context.Background(), gormDB, cfg.DB.Driver); err != nil {
		lg.Fatal("migrate", zap.Error(err))
	}
	if cfg.DB.Driver == config.DriverPostgres {
		if v, err := db.Version(context.Background(), gormDB); err == nil {
			lg.Info("schema version", zap.Int64("version", v))
		}
	}

	// 4. Репозитории.
	userRepo := repository.NewGormUserRepository(gormDB)
	hallRepo := repository.NewGormHallRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)
	notificationRepo := repository.NewGormNotificationRepository(gormDB)

	// 5. Уведомления: всегда во входящие, в RabbitMQ если задан RABBIT_URL.
	sink := notify.MultiSink{notify.NewGormSink(notificationRepo)}
	if cfg.RabbitURL != "" {
		pub, err := notify.NewPublisher(cfg.RabbitURL, cfg.NotifyExchange)
		if err != nil {
			lg.Fatal("init rabbitmq publisher", zap.Error(err))
		}
		defer pub.Close()
		sink = append(sink, notify.NewAMQPSink(pub))
		lg.Info("publishing notifications to rabbitmq", zap.String("exchange", cfg.NotifyExchange))
	}

	// 6. Сервисы.
	bookingSvc := service.NewBookingService(bookingRepo, hallRepo, userRepo, eventRepo, notificationRepo, sink, lg)
	directorySvc := service.NewDirectoryService(userRepo, hallRepo, lg)

	// Роли выдаёт только администратор, первого заводим из конфига.
	if cfg.BootstrapAdminUsername != "" {
		if _, err := directorySvc.EnsureAdmin(context.Background(), cfg.BootstrapAdminUsername, cfg.BootstrapAdminEmail); err != nil {
			lg.Fatal("bootstrap admin", zap.String("username", cfg.BootstrapAdminUsername), zap.Error(err))
		}
	}

	// 7. gRPC-сервер.
	grpcServer, healthSrv := rpc.NewServer(
		lg,
		rpc.NewBookingServer(bookingSvc, lg),
		rpc.NewDirectoryServer(directorySvc, lg),
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		lg.Fatal("listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	lg.Info("booking gRPC server listening",
		zap.String("addr", cfg.GRPCAddr),
		zap.String("env", cfg.Environment),
		zap.String("db_driver", cfg.DB.Driver),
	)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			lg.Fatal("grpc serve", zap.Error(err))
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	lg.Info("shutting down gRPC server")
	healthSrv.Shutdown()
	grpcServer.GracefulStop()
}
