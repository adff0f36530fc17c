package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avdeyev/npuzzle-server/internal/config"
	"github.com/avdeyev/npuzzle-server/internal/metrics"
	"github.com/avdeyev/npuzzle-server/internal/middleware"
	"github.com/avdeyev/npuzzle-server/internal/npuzzle"
	"github.com/avdeyev/npuzzle-server/internal/repository"
)

var ErrUnsolvableBoard = fmt.Errorf(
	"board has odd inversion parity relative to the goal and can never reach it",
)

type SolveHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewSolveHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *SolveHandler {
	return &SolveHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

// Scramble hands out a random board guaranteed to be solvable towards the
// requested (or canonical) goal.
func (h SolveHandler) Scramble(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseScrambleDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	goal, err := goalOrDefault(dto.Goal)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board := npuzzle.Scramble(goal, h.rnd)
	metrics.ScramblesTotal.Inc()

	sendJSONOrLog(w, h.logger, ScrambleResponseDTO{
		Board:  boardLabels(board),
		BoardS: npuzzle.FormatBoard(board),
		Goal:   boardLabels(goal),
	})
}

func (h SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseSolveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board, err := npuzzle.ParseBoard(dto.Board)
	if err != nil {
		metrics.SolveFailures.WithLabelValues("invalid_board").Inc()
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	goal, err := goalOrDefault(dto.Goal)
	if err != nil {
		metrics.SolveFailures.WithLabelValues("invalid_board").Inc()
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	if !npuzzle.Solvable(board, goal) {
		metrics.SolveFailures.WithLabelValues("unsolvable").Inc()
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(ErrUnsolvableBoard))
		return
	}

	started := time.Now()
	sol, err := npuzzle.SolveLimited(board, goal, dto.MaxExpand)
	if errors.Is(err, npuzzle.ErrBudgetExceeded) {
		metrics.SolveFailures.WithLabelValues("budget").Inc()
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		metrics.SolveFailures.WithLabelValues("internal").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("solver failed", "board", board.String(), "error", err)
		return
	}
	solveMs := float64(time.Since(started)) / float64(time.Millisecond)

	metrics.SolvesTotal.Inc()
	metrics.SolutionLength.Observe(float64(sol.Length()))
	metrics.NodesExpanded.Observe(float64(sol.Expanded))

	rec := npuzzle.Record{
		Start:    board,
		Goal:     goal,
		Moves:    sol.Moves,
		Expanded: sol.Expanded,
	}
	buf, err := rec.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to encode solve record", "error", err)
		return
	}

	params := repository.CreateSolveSessionParams{
		StartBoard: npuzzle.FormatBoard(board),
		GoalBoard:  npuzzle.FormatBoard(goal),
		Length:     sol.Length(),
		Expanded:   sol.Expanded,
		SolveMs:    solveMs,
		Record:     buf,
	}
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		params.PlayerId = &claims.PlayerId
	}

	session, err := h.repo.CreateSolveSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create solve session", "error", err)
		return
	}

	resp, err := NewSolveSessionDTO(session.SolveSessionId, &rec, solveMs)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to rebuild solution steps", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, resp)
}

func (h SolveHandler) Fetch(w http.ResponseWriter, r *http.Request) {
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

	resp, err := NewSolveSessionDTO(session.SolveSessionId, rec, session.SolveMs)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to rebuild solution steps", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, resp)
}

func (h SolveHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	limit := 25
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = n
	}

	scores, err := h.repo.GetHighscores(r.Context(), limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch highscores", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, scores)
}
