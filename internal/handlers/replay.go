package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/avdeyev/npuzzle-server/internal/npuzzle"
)

type replayCommand string

const (
	replayNext    replayCommand = "n"
	replayRestart replayCommand = "r"
	replayQuit    replayCommand = "q"
)

type replayStepDTO struct {
	Step  int     `json:"step"`
	Move  *string `json:"move,omitempty"`
	Board []int   `json:"board"`
	Done  bool    `json:"done"`
}

func newReplayStepDTO(rec *npuzzle.Record, steps []npuzzle.State, i int) replayStepDTO {
	dto := replayStepDTO{
		Step:  i,
		Board: boardLabels(steps[i].Board()),
		Done:  i == len(steps)-1,
	}
	if i > 0 {
		name := rec.Moves[i-1].String()
		dto.Move = &name
	}
	return dto
}

// Replay streams a stored solution over a websocket, one step per client
// "n" command. Pacing belongs entirely to the consumer; the search was
// finished long before the first frame.
func (h SolveHandler) Replay(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.repo.FetchSolveSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch solve session from db", "error", err)
		return
	}

	rec, err := npuzzle.DecodeRecord(session.Record)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid solve_session.record", "error", err)
		return
	}
	steps, err := rec.Steps()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("stored record does not replay", "error", err)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	if err := h.runReplayLoop(conn, rec, steps); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			h.logger.Debug("replay loop ended", "error", err)
		}
	}
}

func (h SolveHandler) runReplayLoop(
	conn *websocket.Conn, rec *npuzzle.Record, steps []npuzzle.State,
) error {
	current := 0
	if err := conn.WriteJSON(newReplayStepDTO(rec, steps, current)); err != nil {
		return err
	}

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			continue
		}

		switch replayCommand(strings.TrimSpace(string(buf))) {
		case replayNext:
			if current < len(steps)-1 {
				current++
			}
		case replayRestart:
			current = 0
		case replayQuit:
			return conn.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
		default:
			continue
		}

		if err := conn.WriteJSON(newReplayStepDTO(rec, steps, current)); err != nil {
			return err
		}
	}
}
