package relay

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/apbharucha/poker/advisor"
	"github.com/apbharucha/poker/poker"
)

// Request is one advice request from a connected client.
type Request struct {
	Op      string              `json:"op"`
	Context advisor.GameContext `json:"context"`
}

// Response carries the answer for one request. Exactly one of the payload
// fields is set unless Error is non-empty.
type Response struct {
	Op             string                    `json:"op"`
	Recommendation *advisor.AIRecommendation `json:"recommendation,omitempty"`
	Insight        *advisor.InsightSummary   `json:"insight,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

// Request operations understood by the relay.
const (
	OpRecommend = "recommend"
	OpInsight   = "insight"
)

// Server relays game snapshots to the recommendation engine over WebSocket.
// Each connection is served independently; a bad request produces an error
// response rather than a dropped connection.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	engine   *advisor.Engine
	logger   *log.Logger
	clock    quartz.Clock

	pingInterval time.Duration
	readTimeout  time.Duration

	sessions map[*session]bool
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a relay server for the given engine.
func NewServer(cfg *Config, engine *advisor.Engine, logger *log.Logger, clock quartz.Clock) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		addr: cfg.Server.Addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The relay only ever serves the local assistant
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		engine:       engine,
		logger:       logger.WithPrefix("relay"),
		clock:        clock,
		pingInterval: time.Duration(cfg.Server.PingInterval) * time.Second,
		readTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		sessions:     make(map[*session]bool),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start starts the relay server. It blocks until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("Starting relay server", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop stops the relay server and closes all sessions.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for sess := range s.sessions {
		_ = sess.close()
	}
	s.mu.Unlock()

	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	sess := newSession(conn, s)

	s.mu.Lock()
	s.sessions[sess] = true
	total := len(s.sessions)
	s.mu.Unlock()
	s.logger.Info("Client connected", "remote", conn.RemoteAddr(), "total", total)

	sess.start()

	go func() {
		<-sess.ctx.Done()
		s.mu.Lock()
		delete(s.sessions, sess)
		total := len(s.sessions)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

// handle answers a single request.
func (s *Server) handle(ctx context.Context, req Request) Response {
	if err := validateContext(req.Context); err != nil {
		return Response{Op: req.Op, Error: err.Error()}
	}

	switch req.Op {
	case OpRecommend:
		rec := s.engine.Recommend(ctx, req.Context)
		return Response{Op: req.Op, Recommendation: &rec}

	case OpInsight:
		profile := advisor.BuildOpponentProfile(req.Context.Opponents)
		insight := advisor.GeneratePlayerInsight(req.Context.Actions, req.Context, profile)
		return Response{Op: req.Op, Insight: &insight}

	default:
		return Response{Op: req.Op, Error: fmt.Sprintf("unknown op: %q", req.Op)}
	}
}

// validateContext rejects snapshots the engine cannot sensibly answer.
func validateContext(game advisor.GameContext) error {
	if len(game.HoleCards) > 2 {
		return fmt.Errorf("at most 2 hole cards, got %d", len(game.HoleCards))
	}
	if len(game.CommunityCards) > 5 {
		return fmt.Errorf("at most 5 community cards, got %d", len(game.CommunityCards))
	}

	seen := make(map[poker.Card]bool)
	for _, card := range append(append([]poker.Card{}, game.HoleCards...), game.CommunityCards...) {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}

	if game.Pot < 0 || game.CallAmount < 0 || game.Stack < 0 {
		return fmt.Errorf("pot, call amount and stack must be non-negative")
	}

	return nil
}

// session is one WebSocket connection. Reads are serial; the ping loop only
// writes control frames, which gorilla allows concurrently with WriteJSON.
type session struct {
	conn      *websocket.Conn
	server    *Server
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, server *Server) *session {
	ctx, cancel := context.WithCancel(server.ctx)

	return &session{
		conn:   conn,
		server: server,
		logger: server.logger.WithPrefix("session").With("remote", conn.RemoteAddr()),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *session) start() {
	go s.readLoop()
	go s.pingLoop()
}

func (s *session) close() error {
	var err error
	s.closeOnce.Do(func() {
		s.cancel()
		err = s.conn.Close()
	})
	return err
}

func (s *session) readLoop() {
	defer func() { _ = s.close() }()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(s.server.clock.Now().Add(s.server.readTimeout))
	})
	_ = s.conn.SetReadDeadline(s.server.clock.Now().Add(s.server.readTimeout))

	for {
		var req Request
		if err := s.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("Read failed", "error", err)
			}
			return
		}
		_ = s.conn.SetReadDeadline(s.server.clock.Now().Add(s.server.readTimeout))

		resp := s.server.handle(s.ctx, req)
		if resp.Error != "" {
			s.logger.Debug("Rejected request", "op", req.Op, "error", resp.Error)
		}

		if err := s.conn.WriteJSON(resp); err != nil {
			s.logger.Warn("Write failed", "error", err)
			return
		}
	}
}

func (s *session) pingLoop() {
	waiter := s.server.clock.TickerFunc(s.ctx, s.server.pingInterval, func() error {
		deadline := s.server.clock.Now().Add(10 * time.Second)
		return s.conn.WriteControl(websocket.PingMessage, nil, deadline)
	}, "ping")

	if err := waiter.Wait(); err != nil && s.ctx.Err() == nil {
		s.logger.Debug("Ping loop stopped", "error", err)
		_ = s.close()
	}
}
