package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/middleware/auth"
	"github.com/ecologicaleaving/wikigaialab/pkg/logger"
)

const testSecret = "test-secret"

func createValidJWT(userID uuid.UUID) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(testSecret))
	return tokenString
}

// newTestEcho mirrors the production error handling and validation setup
func newTestEcho() (*echo.Echo, *echo.Group) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	logger.WithEchoLogger(e, zap.NewNop())
	api := e.Group("/api/v1", auth.JWTMiddleware(auth.JWTConfig{
		Secret:          testSecret,
		Logger:          zap.NewNop(),
		Optional:        true,
		TokenQueryParam: "token",
	}))
	return e, api
}

func doRequest(e *echo.Echo, method, path string, userID uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+createValidJWT(userID))
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, code, decodeBody(t, rec)["code"])
}

type testServer struct {
	echo        *echo.Echo
	social      *MockSocialUsecase
	reputation  *MockReputationUsecase
	achievement *MockAchievementUsecase
	subscriber  *fakeSubscriber
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

func newTestServer() *testServer {
	e, api := newTestEcho()
	ts := &testServer{
		echo:        e,
		social:      new(MockSocialUsecase),
		reputation:  new(MockReputationUsecase),
		achievement: new(MockAchievementUsecase),
		subscriber:  newFakeSubscriber(),
	}
	RegisterRoutes(api, Handlers{
		Social:      NewSocialHandler(zap.NewNop(), ts.social),
		Reputation:  NewReputationHandler(zap.NewNop(), ts.reputation),
		Achievement: NewAchievementHandler(zap.NewNop(), ts.achievement),
		Realtime:    NewRealtimeHandler(zap.NewNop(), ts.subscriber, nil, time.Second),
	}, passThrough)
	return ts
}
