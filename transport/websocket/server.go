package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/rocketscienceinc/startup-journey/internal/journey"
	"github.com/rocketscienceinc/startup-journey/internal/pkg"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	Catalog() catalog.View

	CreateSession(ctx context.Context) (*entity.Game, error)
	GetSession(ctx context.Context, id string) (*entity.Game, error)
	DeleteSession(ctx context.Context, id string) error

	CreatePlayer(ctx context.Context, id, name string, archetype entity.Archetype) (*entity.Game, *entity.Player, error)
	StartGame(ctx context.Context, id string) (*entity.Game, error)
	PerformAction(ctx context.Context, id, action string) (*entity.Game, journey.Outcome, error)
	PlayCard(ctx context.Context, id, cardID string) (*entity.Game, journey.Outcome, error)
	SelectCard(ctx context.Context, id, cardID string) (*entity.Game, error)
	DismissCard(ctx context.Context, id string) (*entity.Game, error)
	NextTurn(ctx context.Context, id string) (*entity.Game, error)
	MovePlayer(ctx context.Context, id, playerID string, position int) (*entity.Game, error)
	UpdatePlayerStats(ctx context.Context, id, playerID string, patch journey.StatsPatch) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
}

// Limits caps how fast one connection may send messages.
type Limits struct {
	MessagesPerSecond float64
	Burst             int
}

type handlerFunc func(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error)

type Server struct {
	logger    *slog.Logger
	uGame     uGame
	validator *pkg.Validator
	upgrader  websocket.Upgrader
	limits    Limits

	handlers map[string]handlerFunc

	sessionsMutex sync.RWMutex
	sessions      map[string]map[*connection]struct{}
}

func New(logger *slog.Logger, uGame uGame, limits Limits) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		uGame:     uGame,
		validator: pkg.NewValidator(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		limits: limits,

		sessions: make(map[string]map[*connection]struct{}),
	}

	server.handlers = map[string]handlerFunc{
		actionSessionNew:        server.handleNewSession,
		actionSessionJoin:       server.handleJoinSession,
		actionSessionDelete:     server.handleDeleteSession,
		actionCatalogGet:        server.handleGetCatalog,
		actionPlayerCreate:      server.handleCreatePlayer,
		actionPlayerMove:        server.handleMovePlayer,
		actionPlayerUpdateStats: server.handleUpdateStats,
		actionGameStart:         server.handleStartGame,
		actionGameAction:        server.handleGameAction,
		actionGamePlayCard:      server.handlePlayCard,
		actionGameSelectCard:    server.handleSelectCard,
		actionGameDismissCard:   server.handleDismissCard,
		actionGameNextTurn:      server.handleNextTurn,
		actionGameReset:         server.handleResetGame,
		actionGameState:         server.handleGameState,
	}

	return server
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws, rate.NewLimiter(rate.Limit(that.limits.MessagesPerSecond), that.limits.Burst))

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	go that.pingLoop(ctx, conn)

	that.readLoop(ctx, conn)

	that.leave(conn)
	_ = ws.Close()

	log.Info("WebSocket connection closed", "remote", req.RemoteAddr)
}

func (that *Server) readLoop(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "readLoop")

	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := conn.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}

			return
		}

		that.dispatch(ctx, conn, &msg)
	}
}

func (that *Server) dispatch(ctx context.Context, conn *connection, msg *Message) {
	log := that.logger.With("method", "dispatch", "action", msg.Action)

	if !conn.limiter.Allow() {
		that.reply(conn, msg.Action, ResponsePayload{Error: ErrRateLimited.Error()})
		return
	}

	handler, ok := that.handlers[msg.Action]
	if !ok {
		that.reply(conn, actionError, ResponsePayload{Error: fmt.Sprintf("%s: %q", ErrUnknownMessage, msg.Action)})
		return
	}

	payload, err := handler(ctx, conn, msg)
	if err != nil {
		log.Info("request rejected", "error", err)
		that.reply(conn, msg.Action, ResponsePayload{Session: conn.SessionID(), Error: err.Error()})

		return
	}

	that.reply(conn, msg.Action, payload)

	if payload.Game != nil && msg.Action != actionGameState {
		that.broadcast(conn, payload.Game)
	}
}

func (that *Server) reply(conn *connection, action string, payload ResponsePayload) {
	if err := conn.send(action, payload); err != nil {
		that.logger.Error("failed to send message", "method", "reply", "action", action, "error", err)
	}
}

func (that *Server) pingLoop(ctx context.Context, conn *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.ws.Close()
			return
		case <-ticker.C:
			if err := conn.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// join moves the connection into a session's audience.
func (that *Server) join(conn *connection, sessionID string) {
	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	if previous := conn.SessionID(); previous != "" {
		delete(that.sessions[previous], conn)
		if len(that.sessions[previous]) == 0 {
			delete(that.sessions, previous)
		}
	}

	if that.sessions[sessionID] == nil {
		that.sessions[sessionID] = make(map[*connection]struct{})
	}

	that.sessions[sessionID][conn] = struct{}{}
	conn.setSessionID(sessionID)
}

func (that *Server) leave(conn *connection) {
	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	sessionID := conn.SessionID()
	if sessionID == "" {
		return
	}

	delete(that.sessions[sessionID], conn)
	if len(that.sessions[sessionID]) == 0 {
		delete(that.sessions, sessionID)
	}
}

// forget detaches every connection from a deleted session.
func (that *Server) forget(sessionID string) {
	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	for conn := range that.sessions[sessionID] {
		conn.setSessionID("")
	}

	delete(that.sessions, sessionID)
}

// broadcast pushes the new state to every other connection watching the session.
func (that *Server) broadcast(from *connection, game *entity.Game) {
	that.sessionsMutex.RLock()
	peers := make([]*connection, 0, len(that.sessions[game.ID]))
	for peer := range that.sessions[game.ID] {
		if peer != from {
			peers = append(peers, peer)
		}
	}
	that.sessionsMutex.RUnlock()

	for _, peer := range peers {
		that.reply(peer, actionGameUpdate, ResponsePayload{Session: game.ID, Game: game})
	}
}
