package logger

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 클라이언트/네트워크 측 원인으로 보는 상태 코드
var transientCodes = map[codes.Code]struct{}{
	codes.Canceled:          {},
	codes.DeadlineExceeded:  {},
	codes.ResourceExhausted: {},
	codes.Aborted:           {},
	codes.Unavailable:       {},
}

// NewGrpcUnaryServerInterceptor 단일 요청 gRPC 호출을 zap 으로 기록하는 인터셉터입니다.
func NewGrpcUnaryServerInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("grpc.service", path.Dir(info.FullMethod)[1:]),
			zap.String("grpc.method", path.Base(info.FullMethod)),
			zap.String("grpc.code", code.String()),
			zap.Duration("grpc.duration", time.Since(start)),
		}

		if code == codes.OK {
			logger.Debug("gRPC 요청 완료", fields...)
			return resp, err
		}
		fields = append(fields, zap.Error(err))
		if _, ok := transientCodes[code]; ok {
			logger.Warn("gRPC 요청 실패", fields...)
		} else {
			logger.Error("gRPC 요청 오류", fields...)
		}
		return resp, err
	}
}
