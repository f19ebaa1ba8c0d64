package client

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"

	"spendaily/internal/events"
)

const (
	defaultHandshakeTimeout  = 10 * time.Second
	defaultReconnectDelay    = 3 * time.Second
	defaultMaxReconnectTries = 5
)

// SocketManager maintains a single websocket connection to the server and
// dispatches decoded events to registered listeners. Lost connections are
// retried with a fixed delay up to a bounded number of attempts; once the
// attempts are exhausted the manager gives up and callers fall back to
// cache TTL expiry alone.
type SocketManager struct {
	url              string
	handshakeTimeout time.Duration
	reconnectDelay   time.Duration
	maxReconnects    int
	logger           *zap.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	started   bool
	listeners map[int]func(events.Event)
	nextID    int

	stop     chan struct{}
	stopOnce sync.Once
}

func NewSocketManager(url string, logger *zap.Logger) *SocketManager {
	return &SocketManager{
		url:              url,
		handshakeTimeout: defaultHandshakeTimeout,
		reconnectDelay:   defaultReconnectDelay,
		maxReconnects:    defaultMaxReconnectTries,
		logger:           logger,
		listeners:        make(map[int]func(events.Event)),
		stop:             make(chan struct{}),
	}
}

// AddListener registers a callback for every decoded event and returns a
// function that removes it.
func (m *SocketManager) AddListener(fn func(events.Event)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Start launches the connection loop. Subsequent calls are no-ops, so a
// reconnect already in progress is never raced by a second one.
func (m *SocketManager) Start() {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	go m.run()
}

func (m *SocketManager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *SocketManager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	if m.conn != nil {
		m.conn.Close()
	}
	m.mu.Unlock()
}

func (m *SocketManager) run() {
	attempts := 0
	for {
		select {
		case <-m.stop:
			return
		default:
		}

		dialer := websocket.Dialer{HandshakeTimeout: m.handshakeTimeout}
		conn, _, err := dialer.Dial(m.url, nil)
		if err != nil {
			attempts++
			if attempts > m.maxReconnects {
				m.logger.Warn("websocket reconnect attempts exhausted, relying on cache expiry",
					zap.Int("attempts", attempts-1))
				return
			}
			m.logger.Info("websocket dial failed, retrying",
				zap.Error(err), zap.Int("attempt", attempts))
			select {
			case <-m.stop:
				return
			case <-time.After(m.reconnectDelay):
			}
			continue
		}

		attempts = 0
		m.setConn(conn, true)
		m.logger.Info("websocket connected", zap.String("url", m.url))

		m.readLoop(conn)
		m.setConn(nil, false)

		select {
		case <-m.stop:
			return
		case <-time.After(m.reconnectDelay):
		}
	}
}

func (m *SocketManager) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.logger.Info("websocket read ended", zap.Error(err))
			conn.Close()
			return
		}

		var e events.Event
		if err := json.Unmarshal(data, &e); err != nil {
			m.logger.Warn("discarding malformed websocket message", zap.Error(err))
			continue
		}

		m.mu.Lock()
		fns := make([]func(events.Event), 0, len(m.listeners))
		for _, fn := range m.listeners {
			fns = append(fns, fn)
		}
		m.mu.Unlock()

		for _, fn := range fns {
			fn(e)
		}
	}
}

func (m *SocketManager) setConn(conn *websocket.Conn, connected bool) {
	m.mu.Lock()
	m.conn = conn
	m.connected = connected
	m.mu.Unlock()
}
