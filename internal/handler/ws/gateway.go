package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// trackMessage - входящее сообщение канала track
type trackMessage struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Gateway обслуживает живые подключения к каналам события:
// track (входящие позиции), heatmap, live-map и broadcast (исходящие).
type Gateway struct {
	hub             *room.Hub
	trackingService service.TrackingService
	logger          *logrus.Logger
	cfg             *config.Config
	upgrader        websocket.Upgrader
}

func NewGateway(hub *room.Hub, trackingService service.TrackingService, logger *logrus.Logger, cfg *config.Config) *Gateway {
	return &Gateway{
		hub:             hub,
		trackingService: trackingService,
		logger:          logger,
		cfg:             cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Клиенты ходят с разных origin-ов (мобильный веб, панель организатора)
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes регистрирует маршруты живых каналов
func (g *Gateway) RegisterRoutes(r gin.IRouter) {
	ws := r.Group("/ws")
	ws.GET("/:channel/:event_id", g.serve)
}

// serve разбирает канал, проверяет токен и передает соединение
// соответствующему циклу обработки
func (g *Gateway) serve(c *gin.Context) {
	channel, err := room.ParseChannel(c.Param("channel"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	eventID := c.Param("event_id")
	log := g.logger.WithFields(logrus.Fields{
		"channel":  channel,
		"event_id": eventID,
	})

	// Браузерные клиенты не могут выставить заголовок, токен идет query-параметром
	if len(g.cfg.APIKeys) > 0 && !g.tokenValid(c.Query("token")) {
		log.Warn("WebSocket connection rejected: invalid token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade WebSocket connection")
		return
	}

	if channel == room.ChannelTrack {
		g.serveTrack(conn, eventID, c, log)
		return
	}
	g.serveSubscriber(conn, channel, eventID, log)
}

func (g *Gateway) tokenValid(token string) bool {
	for _, key := range g.cfg.APIKeys {
		if key == token {
			return true
		}
	}
	return false
}

// serveTrack - цикл входящего канала позиций. Каждое сообщение {lat,lng}
// обновляет позицию отправителя и добавляет точку плотности.
// Некорректные сообщения отбрасываются без разрыва соединения.
func (g *Gateway) serveTrack(conn *websocket.Conn, eventID string, c *gin.Context, log *logrus.Entry) {
	defer conn.Close()

	entity := models.Entity{
		ID:      strings.TrimSpace(c.Query("user_id")),
		EventID: eventID,
		Kind:    models.EntityKind(c.Query("kind")),
		Label:   c.Query("label"),
	}
	if entity.ID == "" {
		entity.ID = "anon-" + uuid.NewString()
	}
	switch entity.Kind {
	case models.EntityAttendee, models.EntityVolunteer, models.EntityOrganizer, models.EntityAuthority:
	default:
		entity.Kind = models.EntityAttendee
	}
	log = log.WithField("entity_id", entity.ID)
	log.Info("Track connection established")

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("Track connection closed unexpectedly")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg trackMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.WithError(err).Debug("Dropping malformed track message")
			continue
		}

		entity.Lat = msg.Lat
		entity.Lng = msg.Lng
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		if err := g.trackingService.Track(ctx, entity); err != nil {
			log.WithError(err).Error("Failed to apply track message")
		}
		cancel()
	}
}

// serveSubscriber - цикл исходящего канала. Подписчик получает снапшот
// (для live-map и heatmap), затем живые дельты. Медленный клиент теряет
// самые старые сообщения, соединение не рвется.
func (g *Gateway) serveSubscriber(conn *websocket.Conn, channel room.Channel, eventID string, log *logrus.Entry) {
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	r, err := g.hub.Get(ctx, eventID)
	cancel()
	if err != nil {
		log.WithError(err).Error("Failed to get event room for subscriber")
		return
	}

	ctx, cancel = context.WithTimeout(context.Background(), writeWait)
	sub, err := r.Subscribe(ctx, channel)
	cancel()
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to event channel")
		return
	}
	defer r.Unsubscribe(sub)
	log.WithField("subscriber_id", sub.ID).Info("Subscriber connected")

	// Читаем соединение только чтобы заметить разрыв со стороны клиента
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(maxMessageSize)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.SetReadDeadline(time.Now().Add(pongWait))
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-sub.Receive():
			if !ok {
				// Комната закрылась
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.WithError(err).Debug("Failed to write to subscriber, closing")
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			log.WithField("subscriber_id", sub.ID).Info("Subscriber disconnected")
			return
		}
	}
}
