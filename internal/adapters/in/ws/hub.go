package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/net/websocket"

	httpapi "tracker/internal/adapters/in/http"
	"tracker/internal/core/ports"
)

// FirehoseTopic receives every event regardless of order topic. The
// vendor and delivery dashboards subscribe to it.
const FirehoseTopic = "orders"

// sendBufferSize bounds the per-session outbound queue. A slow consumer
// overflowing it loses events instead of blocking the hub.
const sendBufferSize = 32

// Envelope is the wire frame for both directions: outbound events and
// inbound subscribe/unsubscribe controls or rebroadcast emissions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// SubscribeRequest is the payload of subscribe/unsubscribe controls.
type SubscribeRequest struct {
	Topic string `json:"topic"`
}

// Hub is the broadcast channel. It implements ports.EventPublisher for
// the command handlers and serves the websocket endpoint for sessions.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[*session]struct{}
	topics   map[string]map[*session]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:   logger.With("component", "ws-hub"),
		sessions: make(map[*session]struct{}),
		topics:   make(map[string]map[*session]struct{}),
	}
}

// Handler returns the websocket endpoint. Wire it with
// echo.WrapHandler on the /ws route.
func (h *Hub) Handler() *websocket.Server {
	return &websocket.Server{Handler: h.serve}
}

// Publish implements ports.EventPublisher. The event is delivered to
// sessions subscribed to its order topic and to the firehose; sessions
// with a full buffer are skipped.
func (h *Hub) Publish(_ context.Context, event ports.Event) {
	frame, err := marshalEvent(event)
	if err != nil {
		h.logger.Error("drop unencodable event", "event", string(event.Kind), "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := make(map[*session]struct{})
	for _, topic := range []string{event.Topic.String(), FirehoseTopic} {
		for sess := range h.topics[topic] {
			if _, done := delivered[sess]; done {
				continue
			}
			delivered[sess] = struct{}{}
			sess.send(frame)
		}
	}
}

// SessionCount reports the number of connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// TopicSubscribers reports how many sessions are subscribed to a topic.
func (h *Hub) TopicSubscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close disconnects every session.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]*session, 0, len(h.sessions))
	for sess := range h.sessions {
		sessions = append(sessions, sess)
	}
	h.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
}

func (h *Hub) serve(conn *websocket.Conn) {
	sess := newSession(conn)

	h.mu.Lock()
	h.sessions[sess] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("session connected")

	go sess.writeLoop()
	h.readLoop(sess)

	h.detach(sess)
	sess.close()
	h.logger.Debug("session disconnected")
}

// readLoop consumes inbound frames until the connection drops.
// subscribe/unsubscribe adjust the registry; any known event kind is
// rebroadcast to every other session, the emitter never hears its own
// emission back.
func (h *Hub) readLoop(sess *session) {
	for {
		var raw string
		if err := websocket.Message.Receive(sess.conn, &raw); err != nil {
			return
		}

		var envelope Envelope
		if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
			h.logger.Debug("drop malformed frame", "error", err)
			continue
		}

		switch envelope.Event {
		case "subscribe", "unsubscribe":
			var request SubscribeRequest
			if err := json.Unmarshal(envelope.Data, &request); err != nil || request.Topic == "" {
				continue
			}
			if envelope.Event == "subscribe" {
				h.subscribe(sess, request.Topic)
			} else {
				h.unsubscribe(sess, request.Topic)
			}
		case string(ports.EventLocationUpdate), string(ports.EventOrderStatusUpdate),
			string(ports.EventOrderAssigned), string(ports.EventNewOrder):
			h.rebroadcast(sess, []byte(raw))
		default:
			h.logger.Debug("drop unknown event", "event", envelope.Event)
		}
	}
}

// rebroadcast forwards an inbound emission to every session except the
// emitter.
func (h *Hub) rebroadcast(origin *session, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sess := range h.sessions {
		if sess == origin {
			continue
		}
		sess.send(frame)
	}
}

func (h *Hub) subscribe(sess *session, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*session]struct{})
	}
	h.topics[topic][sess] = struct{}{}
}

func (h *Hub) unsubscribe(sess *session, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeFromTopic(sess, topic)
}

func (h *Hub) detach(sess *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, sess)
	for topic := range h.topics {
		h.removeFromTopic(sess, topic)
	}
}

// removeFromTopic requires h.mu held.
func (h *Hub) removeFromTopic(sess *session, topic string) {
	subscribers, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(subscribers, sess)
	if len(subscribers) == 0 {
		delete(h.topics, topic)
	}
}

// marshalEvent renders the outbound envelope in the wire format the
// dashboards consume.
func marshalEvent(event ports.Event) ([]byte, error) {
	data, err := marshalPayload(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: string(event.Kind), Data: data})
}

func marshalPayload(event ports.Event) (json.RawMessage, error) {
	switch payload := event.Payload.(type) {
	case ports.LocationUpdate:
		update := struct {
			OrderID           string           `json:"orderId"`
			DeliveryPartnerID string           `json:"deliveryPartnerId"`
			Location          httpapi.Location `json:"location"`
			Status            string           `json:"status"`
		}{
			OrderID:           payload.OrderID.String(),
			DeliveryPartnerID: payload.PartnerID.String(),
			Location:          httpapi.SampleToDTO(payload.Sample),
			Status:            payload.Status.String(),
		}
		return json.Marshal(update)
	case ports.OrderStatusUpdate:
		return json.Marshal(httpapi.OrderToDTO(payload.Order))
	case ports.OrderAssigned:
		return json.Marshal(httpapi.OrderToDTO(payload.Order))
	case ports.NewOrder:
		return json.Marshal(httpapi.OrderToDTO(payload.Order))
	default:
		return json.Marshal(event.Payload)
	}
}
