package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/adapter/notification"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

// RealtimeHandler streams a user's realtime events and notifications over a websocket
type RealtimeHandler struct {
	logger       *zap.Logger
	subscriber   messaging.RedisClient
	upgrader     websocket.Upgrader
	pingInterval time.Duration
}

// NewRealtimeHandler creates a websocket handler. allowedOrigins empty accepts any origin.
func NewRealtimeHandler(logger *zap.Logger, subscriber messaging.RedisClient, allowedOrigins []string, pingInterval time.Duration) *RealtimeHandler {
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return &RealtimeHandler{
		logger:     logger,
		subscriber: subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				_, ok := origins[r.Header.Get("Origin")]
				return ok
			},
		},
		pingInterval: pingInterval,
	}
}

// Stream handles GET /api/v1/ws
func (h *RealtimeHandler) Stream(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	channels := []string{interfaces.UserChannel(userID), notification.UserNotificationsChannel(userID)}
	merged, err := h.subscribeAll(ctx, channels)
	if err != nil {
		h.logger.Error("Failed to subscribe realtime channels",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		h.logger.Warn("Websocket upgrade failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}
	defer conn.Close()

	h.logger.Info("Realtime client connected", zap.String("user_id", userID.String()))

	// reads only detect disconnects; clients never send data
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Realtime client disconnected", zap.String("user_id", userID.String()))
			return nil
		case msg, ok := <-merged:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg.Payload); err != nil {
				h.logger.Warn("Failed to write realtime message",
					zap.String("user_id", userID.String()),
					zap.String("channel", msg.Channel),
					zap.Error(err))
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}

// subscribeAll fans every subscription into one channel that closes once all inputs close
func (h *RealtimeHandler) subscribeAll(ctx context.Context, channels []string) (<-chan messaging.Message, error) {
	inputs := make([]<-chan messaging.Message, 0, len(channels))
	for _, name := range channels {
		ch, err := h.subscriber.Subscribe(ctx, name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, ch)
	}

	out := make(chan messaging.Message)
	var wg sync.WaitGroup
	for _, in := range inputs {
		wg.Add(1)
		go func(in <-chan messaging.Message) {
			defer wg.Done()
			for msg := range in {
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}(in)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out, nil
}
