package boardfeed

import (
	"context"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
)

// Frame is one board update pushed to live displays. Version increases by
// one per accepted command on the session.
type Frame struct {
	Key     draft.SessionKey
	Version uint64
	State   draft.State
	Events  []draft.Event
}

type msg interface{ isHubMsg() }

type publish struct {
	key    draft.SessionKey
	state  draft.State
	events []draft.Event
}

type join struct {
	key      draft.SessionKey
	clientID string
	outbox   chan Frame
	snapshot *draft.State
}

type leave struct {
	key      draft.SessionKey
	clientID string
	outbox   chan Frame
}

type countClients struct {
	key   draft.SessionKey
	reply chan int
}

func (publish) isHubMsg()      {}
func (join) isHubMsg()         {}
func (leave) isHubMsg()        {}
func (countClients) isHubMsg() {}

type session struct {
	last    *Frame
	version uint64
	clients map[string]chan Frame
}

// Hub fans board updates out to feed clients. All state is owned by the loop
// goroutine; callers talk to it through the inbox.
type Hub struct {
	mu         sync.RWMutex
	closed     bool
	inbox      chan msg
	sessions   map[draft.SessionKey]*session
	outboxSize int
	logger     *logging.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewHub(parent context.Context, outboxSize int, logger *logging.Logger) *Hub {
	if outboxSize < 1 {
		outboxSize = 8
	}
	if logger == nil {
		logger = logging.Default()
	}
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:      make(chan msg, 64),
		sessions:   make(map[draft.SessionKey]*session),
		outboxSize: outboxSize,
		logger:     logger.Named("boardfeed"),
		ctx:        ctx,
		cancel:     cancel,
	}
	go h.loop()
	return h
}

// Publish queues a board update. It drops the update once the hub is closed.
func (h *Hub) Publish(key draft.SessionKey, state draft.State, events []draft.Event) {
	h.send(publish{key: key, state: state, events: events})
}

// Subscribe registers a client on a session. The latest frame, if any, is
// delivered first. The returned channel is closed when the client is dropped
// for falling behind, when leave is called, or when the hub shuts down.
func (h *Hub) Subscribe(key draft.SessionKey, clientID string) (<-chan Frame, func()) {
	return h.subscribe(key, clientID, nil)
}

// SubscribeWithSnapshot is Subscribe for a session that may not have published
// since the process started: when no frame exists yet the client gets the
// stored state as version 0.
func (h *Hub) SubscribeWithSnapshot(key draft.SessionKey, clientID string, snapshot draft.State) (<-chan Frame, func()) {
	return h.subscribe(key, clientID, &snapshot)
}

func (h *Hub) subscribe(key draft.SessionKey, clientID string, snapshot *draft.State) (<-chan Frame, func()) {
	outbox := make(chan Frame, h.outboxSize)
	if !h.send(join{key: key, clientID: clientID, outbox: outbox, snapshot: snapshot}) {
		close(outbox)
		return outbox, func() {}
	}
	return outbox, func() { h.send(leave{key: key, clientID: clientID, outbox: outbox}) }
}

// Clients reports how many feed clients are attached to a session.
func (h *Hub) Clients(key draft.SessionKey) int {
	reply := make(chan int, 1)
	if !h.send(countClients{key: key, reply: reply}) {
		return 0
	}
	select {
	case n := <-reply:
		return n
	case <-h.ctx.Done():
		return 0
	}
}

func (h *Hub) Close() {
	h.cancel()
}

func (h *Hub) send(m msg) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return false
	}
	select {
	case h.inbox <- m:
		return true
	case <-h.ctx.Done():
		return false
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return
		case m := <-h.inbox:
			switch m := m.(type) {
			case publish:
				h.broadcast(m)
			case join:
				s := h.session(m.key)
				if prev, ok := s.clients[m.clientID]; ok {
					close(prev)
				}
				s.clients[m.clientID] = m.outbox
				switch {
				case s.last != nil:
					m.outbox <- *s.last
				case m.snapshot != nil:
					m.outbox <- Frame{Key: m.key, Version: s.version, State: *m.snapshot}
				}
			case leave:
				if s, ok := h.sessions[m.key]; ok {
					if ch, ok := s.clients[m.clientID]; ok && ch == m.outbox {
						close(ch)
						delete(s.clients, m.clientID)
					}
				}
			case countClients:
				n := 0
				if s, ok := h.sessions[m.key]; ok {
					n = len(s.clients)
				}
				m.reply <- n
			}
		}
	}
}

func (h *Hub) session(key draft.SessionKey) *session {
	s, ok := h.sessions[key]
	if !ok {
		s = &session{clients: make(map[string]chan Frame)}
		h.sessions[key] = s
	}
	return s
}

func (h *Hub) broadcast(p publish) {
	s := h.session(p.key)
	s.version++
	frame := Frame{Key: p.key, Version: s.version, State: p.state, Events: p.events}
	s.last = &frame

	for id, ch := range s.clients {
		select {
		case ch <- frame:
		default:
			close(ch)
			delete(s.clients, id)
			h.logger.Warn("feed client dropped", "session", p.key, "client_id", id)
		}
	}
}

// shutdown stops new messages before draining, so every join either lands
// in the drain or is refused by send.
func (h *Hub) shutdown() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

drain:
	for {
		select {
		case m := <-h.inbox:
			if j, ok := m.(join); ok {
				close(j.outbox)
			}
		default:
			break drain
		}
	}
	for _, s := range h.sessions {
		for id, ch := range s.clients {
			close(ch)
			delete(s.clients, id)
		}
	}
}
