package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGateway поднимает шлюз на тестовом HTTP-сервере с настоящим хабом комнат
func newTestGateway(t *testing.T, apiKeys []string) (*room.Hub, *mocks.MockTrackingService, *httptest.Server) {
	ctrl := gomock.NewController(t)
	trackingMock := mocks.NewMockTrackingService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: apiKeys}
	hub := room.NewHub(room.Config{}, logger, nil)
	t.Cleanup(hub.Close)

	gateway := NewGateway(hub, trackingMock, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	gateway.RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, trackingMock, srv
}

// wsURL переводит адрес тестового сервера в ws-схему
func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func dial(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	return conn
}

func TestGateway_UnknownChannelRejected(t *testing.T) {
	_, _, srv := newTestGateway(t, nil)

	resp, err := http.Get(srv.URL + "/ws/firehose/event-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateway_InvalidTokenRejected(t *testing.T) {
	_, _, srv := newTestGateway(t, []string{"secret"})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/broadcast/event-1?token=wrong"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_ValidTokenAccepted(t *testing.T) {
	_, _, srv := newTestGateway(t, []string{"secret"})

	conn := dial(t, wsURL(srv, "/ws/broadcast/event-1?token=secret"))
	assert.NotNil(t, conn)
}

func TestGateway_TrackChannelAppliesPositions(t *testing.T) {
	// Подготовка
	_, trackingMock, srv := newTestGateway(t, nil)
	tracked := make(chan models.Entity, 1)

	// Ожидания: некорректное сообщение отбрасывается, валидное доходит до сервиса
	trackingMock.EXPECT().
		Track(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entity models.Entity) error {
			tracked <- entity
			return nil
		}).Times(1)

	conn := dial(t, wsURL(srv, "/ws/track/event-1?user_id=vol-1&kind=volunteer&label=Bob"))

	// Действие
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("не json")))
	require.NoError(t, conn.WriteJSON(trackMessage{Lat: 55.75, Lng: 37.61}))

	// Проверки
	select {
	case entity := <-tracked:
		assert.Equal(t, "vol-1", entity.ID)
		assert.Equal(t, "event-1", entity.EventID)
		assert.Equal(t, models.EntityVolunteer, entity.Kind)
		assert.Equal(t, "Bob", entity.Label)
		assert.InDelta(t, 55.75, entity.Lat, 1e-9)
		assert.InDelta(t, 37.61, entity.Lng, 1e-9)
	case <-time.After(3 * time.Second):
		t.Fatal("track message was not applied")
	}
}

func TestGateway_TrackChannelAnonymousFallback(t *testing.T) {
	// Подготовка: без user_id и с неизвестным kind
	_, trackingMock, srv := newTestGateway(t, nil)
	tracked := make(chan models.Entity, 1)

	trackingMock.EXPECT().
		Track(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entity models.Entity) error {
			tracked <- entity
			return nil
		}).Times(1)

	conn := dial(t, wsURL(srv, "/ws/track/event-1?kind=alien"))

	// Действие
	require.NoError(t, conn.WriteJSON(trackMessage{Lat: 1, Lng: 2}))

	// Проверки: сгенерированный анонимный ID, kind приводится к attendee
	select {
	case entity := <-tracked:
		assert.True(t, strings.HasPrefix(entity.ID, "anon-"))
		assert.Equal(t, models.EntityAttendee, entity.Kind)
	case <-time.After(3 * time.Second):
		t.Fatal("track message was not applied")
	}
}

func TestGateway_LiveMapSubscriberGetsSnapshot(t *testing.T) {
	// Подготовка: в комнате уже есть сущность до подключения подписчика
	hub, _, srv := newTestGateway(t, nil)
	ctx := context.Background()
	r, err := hub.Get(ctx, "event-1")
	require.NoError(t, err)
	require.NoError(t, r.UpsertEntity(ctx, models.Entity{ID: "user-1", Kind: models.EntityAttendee, Lat: 55.75, Lng: 37.61}))

	// Действие
	conn := dial(t, wsURL(srv, "/ws/live-map/event-1"))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	// Проверки: первым сообщением приходит снапшот
	var entity room.MapEntity
	require.NoError(t, json.Unmarshal(payload, &entity))
	assert.Equal(t, "user-1", entity.ID)
	assert.Equal(t, "attendee", entity.Type)
}

func TestGateway_BroadcastSubscriberReceivesAlert(t *testing.T) {
	// Подготовка
	hub, _, srv := newTestGateway(t, nil)
	ctx := context.Background()
	conn := dial(t, wsURL(srv, "/ws/broadcast/event-1"))

	r, err := hub.Get(ctx, "event-1")
	require.NoError(t, err)

	// Действие: даем подписке зарегистрироваться, затем шлем оповещение
	require.Eventually(t, func() bool {
		stats, err := r.Stats(ctx)
		return err == nil && stats.Subscribers == 1
	}, 3*time.Second, 10*time.Millisecond)

	_, err = r.BroadcastAlert(ctx, &models.SafetyAlert{
		Title:    "Гроза",
		Message:  "Укройтесь в павильонах",
		Severity: models.AlertWarning,
	})
	require.NoError(t, err)

	// Проверки
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg room.AlertMessage
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "safety_alert", msg.Type)
	assert.Equal(t, "Гроза", msg.Alert.Title)
}
