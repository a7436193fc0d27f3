package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecologicaleaving/wikigaialab/internal/adapter/notification"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

func TestRealtimeHandler_Stream(t *testing.T) {
	userID := uuid.New()
	ts := newTestServer()
	server := httptest.NewServer(ts.echo)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?token=" + createValidJWT(userID)
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	realtime := ts.subscriber.channel(interfaces.UserChannel(userID))
	notifications := ts.subscriber.channel(notification.UserNotificationsChannel(userID))
	require.NotNil(t, realtime)
	require.NotNil(t, notifications)

	messages := []messaging.Message{
		{Channel: interfaces.UserChannel(userID), Payload: []byte(`{"type":"new_follower"}`)},
		{Channel: notification.UserNotificationsChannel(userID), Payload: []byte(`{"type":"achievement"}`)},
	}
	go func() {
		realtime <- messages[0]
		notifications <- messages[1]
	}()

	received := make([]string, 0, len(messages))
	for range messages {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		msgType, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, msgType)
		received = append(received, string(payload))
	}
	assert.ElementsMatch(t, []string{string(messages[0].Payload), string(messages[1].Payload)}, received)
}

func TestRealtimeHandler_RequiresToken(t *testing.T) {
	ts := newTestServer()
	server := httptest.NewServer(ts.echo)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
