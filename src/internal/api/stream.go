package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/store"
)

const (
	streamWriteWait  = 10 * time.Second
	streamSendBuffer = 64
)

// LogTopic is the topic of log stream messages.
const LogTopic = "log"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamMessage is one message pushed to log stream subscribers.
type StreamMessage struct {
	Topic string          `json:"topic"`
	Data  models.LogEntry `json:"data"`
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LogStream fans new log entries out to websocket subscribers.
type LogStream struct {
	mu       sync.RWMutex
	clients  map[*streamClient]struct{}
	attached map[*store.Store]struct{}
	closed   bool
}

// NewLogStream creates an empty stream.
func NewLogStream() *LogStream {
	return &LogStream{
		clients:  make(map[*streamClient]struct{}),
		attached: make(map[*store.Store]struct{}),
	}
}

// Attach publishes every log entry added to st. Attaching the same store
// again is a no-op.
func (s *LogStream) Attach(st *store.Store) {
	s.mu.Lock()
	if _, ok := s.attached[st]; ok {
		s.mu.Unlock()
		return
	}
	s.attached[st] = struct{}{}
	s.mu.Unlock()

	st.OnLog(s.Publish)
}

// Publish sends entry to every subscriber. Slow subscribers miss messages
// instead of blocking the writer.
func (s *LogStream) Publish(entry models.LogEntry) {
	msg, err := json.Marshal(StreamMessage{Topic: LogTopic, Data: entry})
	if err != nil {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for client := range s.clients {
		select {
		case client.send <- msg:
		default:
			log.Debugf("Log stream subscriber is lagging, dropping entry %d", entry.ID)
		}
	}
}

// Subscribers returns the number of connected clients.
func (s *LogStream) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ServeHTTP upgrades the request and streams log entries until the client leaves.
// GET /api/logs/stream
func (s *LogStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("Log stream upgrade failed: %v", err)
		return
	}

	client := &streamClient{conn: conn, send: make(chan []byte, streamSendBuffer)}
	if !s.register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
	s.unregister(client)
}

// Close disconnects every subscriber and refuses new ones.
func (s *LogStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for client := range s.clients {
		delete(s.clients, client)
		close(client.send)
	}
}

func (s *LogStream) register(c *streamClient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.clients[c] = struct{}{}
	return true
}

func (s *LogStream) unregister(c *streamClient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

// readPump drains client frames so control messages are processed; it
// returns when the connection fails or is closed.
func (c *streamClient) readPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *streamClient) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}
