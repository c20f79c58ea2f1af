package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

// decode unmarshals the message payload into req and validates it. An empty payload
// decodes to the zero request.
func (that *Server) decode(msg *Message, req any) error {
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, req); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	if err := that.validator.Validate(req); err != nil {
		return err
	}

	return nil
}

// sessionFor decodes a request carrying an optional session id and resolves it.
func (that *Server) sessionFor(conn *connection, msg *Message) (string, error) {
	var req sessionRequest
	if err := that.decode(msg, &req); err != nil {
		return "", err
	}

	return conn.resolveSession(req.SessionID)
}

func (that *Server) handleNewSession(ctx context.Context, conn *connection, _ *Message) (ResponsePayload, error) {
	game, err := that.uGame.CreateSession(ctx)
	if err != nil {
		return ResponsePayload{}, err
	}

	that.join(conn, game.ID)

	return ResponsePayload{Session: game.ID, Game: game}, nil
}

func (that *Server) handleJoinSession(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req joinRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.GetSession(ctx, req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	that.join(conn, game.ID)

	return ResponsePayload{Session: game.ID, Game: game}, nil
}

// handleDeleteSession drops the session; connections watching it are detached.
func (that *Server) handleDeleteSession(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	id, err := that.sessionFor(conn, msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	if err = that.uGame.DeleteSession(ctx, id); err != nil {
		return ResponsePayload{}, err
	}

	that.forget(id)

	return ResponsePayload{Session: id}, nil
}

func (that *Server) handleGetCatalog(_ context.Context, _ *connection, _ *Message) (ResponsePayload, error) {
	view := that.uGame.Catalog()

	return ResponsePayload{Catalog: &view}, nil
}

func (that *Server) handleCreatePlayer(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req createPlayerRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, player, err := that.uGame.CreatePlayer(ctx, id, req.Name, entity.Archetype(req.Archetype))
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game, Player: player}, nil
}

func (that *Server) handleMovePlayer(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req movePlayerRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.MovePlayer(ctx, id, req.PlayerID, req.Position)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game}, nil
}

func (that *Server) handleUpdateStats(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req updateStatsRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.UpdatePlayerStats(ctx, id, req.PlayerID, req.Stats)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game}, nil
}

func (that *Server) handleStartGame(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	return that.withSessionID(ctx, conn, msg, that.uGame.StartGame)
}

func (that *Server) handleGameAction(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req actionRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, outcome, err := that.uGame.PerformAction(ctx, id, req.Action)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game, Outcome: &outcome}, nil
}

func (that *Server) handlePlayCard(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req cardRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, outcome, err := that.uGame.PlayCard(ctx, id, req.CardID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game, Outcome: &outcome}, nil
}

func (that *Server) handleSelectCard(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	var req cardRequest
	if err := that.decode(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	id, err := conn.resolveSession(req.SessionID)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.SelectCard(ctx, id, req.CardID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game}, nil
}

func (that *Server) handleDismissCard(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	return that.withSessionID(ctx, conn, msg, that.uGame.DismissCard)
}

func (that *Server) handleNextTurn(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	return that.withSessionID(ctx, conn, msg, that.uGame.NextTurn)
}

func (that *Server) handleResetGame(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	return that.withSessionID(ctx, conn, msg, that.uGame.ResetGame)
}

func (that *Server) handleGameState(ctx context.Context, conn *connection, msg *Message) (ResponsePayload, error) {
	return that.withSessionID(ctx, conn, msg, that.uGame.GetSession)
}

// withSessionID serves requests whose only argument is the session id.
func (that *Server) withSessionID(
	ctx context.Context,
	conn *connection,
	msg *Message,
	fn func(ctx context.Context, id string) (*entity.Game, error),
) (ResponsePayload, error) {
	id, err := that.sessionFor(conn, msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := fn(ctx, id)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: id, Game: game}, nil
}
