package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avdeyev/npuzzle-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	solve := handlers.NewSolveHandler(a.logger, a.db, a.ws, createRand())
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("GET /scramble", solve.Scramble)
	a.router.HandleFunc("POST /solve", solve.Solve)
	a.router.HandleFunc("GET /solve/{id}", solve.Fetch)
	a.router.HandleFunc("/solve/{id}/replay", solve.Replay)
	a.router.HandleFunc("GET /highscores", solve.Highscores)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.Handle("GET /metrics", promhttp.Handler())
}
