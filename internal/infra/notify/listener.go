package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Каналы pg_notify, порождаемые триггером notify_changes() в миграциях
const (
	ChannelBookings  = "bookings_changed"
	ChannelCancelled = "cancelled_bookings_changed"
	ChannelRooms     = "rooms_changed"
	ChannelSettings  = "studio_settings_changed"
)

// Параметры переподключения pq.Listener
const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// Event событие изменения данных в хранилище
type Event struct {
	Relation string `json:"relation"`
	Op       string `json:"op"`
	ID       int64  `json:"id,omitempty"`
}

// Listener слушает события изменений хранилища через PostgreSQL LISTEN/NOTIFY
// и транслирует их в канал Events
type Listener struct {
	pqListener *pq.Listener
	events     chan Event
	done       chan struct{}
}

// logFunc получает сообщения о состоянии соединения слушателя
type logFunc func(format string, args ...any)

// New создает слушателя, подписанного на все каналы изменений хранилища.
// Переподключение при обрыве соединения выполняет сам pq.Listener.
func New(dsn string, logWarn logFunc) (*Listener, error) {
	pqListener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logWarn("notify: listener event %d: %v", event, err)
			}
		})

	channels := []string{ChannelBookings, ChannelCancelled, ChannelRooms, ChannelSettings}
	for _, channel := range channels {
		if err := pqListener.Listen(channel); err != nil {
			pqListener.Close()
			return nil, fmt.Errorf("notify: listen %s: %w", channel, err)
		}
	}

	l := &Listener{
		pqListener: pqListener,
		events:     make(chan Event, 64),
		done:       make(chan struct{}),
	}

	go l.run(logWarn)

	return l, nil
}

// Events канал событий изменений хранилища
func (l *Listener) Events() <-chan Event {
	return l.events
}

// Close останавливает слушателя и закрывает канал событий
func (l *Listener) Close() error {
	close(l.done)
	return l.pqListener.Close()
}

func (l *Listener) run(logWarn logFunc) {
	defer close(l.events)

	// Периодический Ping выявляет молча оборванные соединения
	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ping.C:
			if err := l.pqListener.Ping(); err != nil {
				logWarn("notify: ping failed: %v", err)
			}
		case notification, ok := <-l.pqListener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения - подписчикам знать незачем
			if notification == nil {
				continue
			}

			event := Event{Relation: notification.Channel}
			if err := json.Unmarshal([]byte(notification.Extra), &event); err != nil {
				logWarn("notify: malformed payload on %s: %v", notification.Channel, err)
			}
			event.Relation = notification.Channel

			select {
			case l.events <- event:
			default:
				// Медленный потребитель не должен блокировать соединение
				logWarn("notify: event buffer full, dropping %s", notification.Channel)
			}
		}
	}
}
