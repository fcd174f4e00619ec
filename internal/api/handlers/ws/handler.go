package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olahol/melody"

	"github.com/m04kA/WGS-BookingService/internal/infra/notify"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик websocket подключений
type Metrics interface {
	WSClientConnected()
	WSClientDisconnected()
	ChangeEventReceived(relation string)
}

// ChangeMessage сообщение об изменении данных, рассылаемое клиентам
type ChangeMessage struct {
	Relation string    `json:"relation"`
	Op       string    `json:"op,omitempty"`
	ID       int64     `json:"id,omitempty"`
	At       time.Time `json:"at"`
}

// Handler websocket хаб: принимает подключения фронтенда и транслирует
// события изменений хранилища всем подключенным клиентам
type Handler struct {
	hub     *melody.Melody
	metrics Metrics
	logger  Logger
}

func NewHandler(metrics Metrics, logger Logger) *Handler {
	hub := melody.New()

	h := &Handler{
		hub:     hub,
		metrics: metrics,
		logger:  logger,
	}

	hub.HandleConnect(func(s *melody.Session) {
		if h.metrics != nil {
			h.metrics.WSClientConnected()
		}
		h.logger.Info("GET /ws - Client connected: remote=%s", s.Request.RemoteAddr)
	})

	hub.HandleDisconnect(func(s *melody.Session) {
		if h.metrics != nil {
			h.metrics.WSClientDisconnected()
		}
		h.logger.Info("GET /ws - Client disconnected: remote=%s", s.Request.RemoteAddr)
	})

	return h
}

// Handle GET /api/v1/ws
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.HandleRequest(w, r); err != nil {
		h.logger.Warn("GET /ws - Upgrade failed: %v", err)
	}
}

// Run читает события изменений хранилища и рассылает их клиентам.
// Блокируется до закрытия канала событий.
func (h *Handler) Run(events <-chan notify.Event) {
	for event := range events {
		if h.metrics != nil {
			h.metrics.ChangeEventReceived(event.Relation)
		}

		payload, err := json.Marshal(ChangeMessage{
			Relation: event.Relation,
			Op:       event.Op,
			ID:       event.ID,
			At:       time.Now().UTC(),
		})
		if err != nil {
			h.logger.Error("GET /ws - Failed to marshal change message: %v", err)
			continue
		}

		if err := h.hub.Broadcast(payload); err != nil {
			h.logger.Warn("GET /ws - Broadcast failed: %v", err)
		}
	}
}

// Close закрывает все активные подключения
func (h *Handler) Close() error {
	return h.hub.Close()
}
