package grpc

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/ecologicaleaving/wikigaialab/internal/config"
	"github.com/ecologicaleaving/wikigaialab/pkg/logger"
)

// Server gRPC 서버 구조체
type Server struct {
	server  *grpc.Server
	health  *health.Server
	logger  *zap.Logger
	address string
	service string
}

// NewServer gRPC 서버 생성
func NewServer(cfg config.GRPCConfig, serviceName string, log *zap.Logger) *Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(log)))

	// 헬스 체크 서비스 등록
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(server)

	return &Server{
		server:  server,
		health:  healthServer,
		logger:  log,
		address: cfg.Address(),
		service: serviceName,
	}
}

// Start gRPC 서버 시작
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("gRPC 서버 리스너 생성 실패: %w", err)
	}
	return s.Serve(listener)
}

// Serve 주어진 리스너로 서버를 실행합니다.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC 서버 시작", zap.String("address", listener.Addr().String()))
	return s.server.Serve(listener)
}

// Stop 헬스 상태를 NOT_SERVING 으로 바꾸고 서버를 중지합니다.
func (s *Server) Stop() {
	s.logger.Info("gRPC 서버 종료 중...")
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.health.SetServingStatus(s.service, healthpb.HealthCheckResponse_NOT_SERVING)
	s.server.GracefulStop()
}
