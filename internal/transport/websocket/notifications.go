package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

// Event — событие, рассылаемое подключённому персоналу.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// TokenParser проверяет access token при подключении.
type TokenParser interface {
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

// Client represents a connected WebSocket client
type Client struct {
	UserID int64
	Role   domain.UserRole
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *NotificationHub
}

// NotificationHub maintains the set of active clients and broadcasts events
type NotificationHub struct {
	clients map[int64]*Client

	broadcast chan Event

	register   chan *Client
	unregister chan *Client

	parser TokenParser
	logger *zap.Logger

	mutex sync.RWMutex
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

func NewNotificationHub(parser TokenParser, logger *zap.Logger) *NotificationHub {
	return &NotificationHub{
		clients:    make(map[int64]*Client),
		broadcast:  make(chan Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		parser:     parser,
		logger:     logger,
	}
}

// Run starts the notification hub
func (h *NotificationHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client.UserID] = client
			h.mutex.Unlock()
			h.logger.Info("клиент подключился к каналу уведомлений",
				zap.Int64("user_id", client.UserID),
				zap.String("role", string(client.Role)))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client.UserID]; ok {
				delete(h.clients, client.UserID)
				close(client.Send)
			}
			h.mutex.Unlock()
			h.logger.Info("клиент отключился от канала уведомлений", zap.Int64("user_id", client.UserID))

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// NotifyContactCreated рассылает событие о новом обращении с формы.
func (h *NotificationHub) NotifyContactCreated(submission domain.ContactSubmission) {
	event := Event{
		Type:      "contact.created",
		Payload:   submission,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("канал рассылки переполнен, событие отброшено", zap.String("type", event.Type))
	}
}

func (h *NotificationHub) broadcastEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("ошибка сериализации события", zap.Error(err))
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("канал клиента переполнен, событие пропущено",
				zap.Int64("user_id", client.UserID),
				zap.String("type", event.Type))
		}
	}
}

// HandleWebSocket handles WebSocket connections
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "требуется токен"})
		return
	}

	userID, role, err := h.parser.ParseToken(c.Request.Context(), tokenStr)
	if err != nil {
		h.logger.Warn("недействительный токен при подключении к уведомлениям", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "недействительный токен"})
		return
	}

	if role != domain.UserRoleAdmin && role != domain.UserRoleManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "доступ запрещен"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("ошибка обновления соединения до WebSocket", zap.Error(err))
		return
	}

	client := &Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		Send:   make(chan []byte, 64),
		Hub:    h,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Канал односторонний, входящие сообщения игнорируются.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Error("ошибка WebSocket", zap.Error(err))
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Error("ошибка записи сообщения в WebSocket",
					zap.Int64("user_id", c.UserID),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
