package errors

import (
	"go.uber.org/zap"
)

// LogError 에러를 코드와 함께 구조화 로그로 남깁니다.
// 클라이언트 측 에러 코드는 Warn, 그 외는 Error 레벨입니다.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	code := CodeOf(err)
	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err), zap.String("error_code", code))
	allFields = append(allFields, fields...)

	switch code {
	case ErrNotFound, ErrInvalidArgument, ErrConflict, ErrUnauthorized, ErrUnauthenticated:
		logger.Warn(msg, allFields...)
	default:
		logger.Error(msg, allFields...)
	}
}
