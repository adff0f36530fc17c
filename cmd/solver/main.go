// Headless batch solver: scrambles boards (or takes one on the command
// line), solves them with A* and prints the move sequences.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/avdeyev/npuzzle-server/internal/npuzzle"
)

var (
	log = logrus.New()

	boardStr  string
	goalStr   string
	count     int
	maxExpand int
	logFile   string
	verbose   bool
)

func init() {
	flag.StringVar(&boardStr, "board", "", "board to solve, e.g. 1,2,3,4,0,6,7,5,8 (default: scramble)")
	flag.StringVar(&goalStr, "goal", "", "goal board (default: 1..8 then blank)")
	flag.IntVar(&count, "n", 1, "number of scrambled instances to solve")
	flag.IntVar(&maxExpand, "max-expand", 0, "expansion budget per solve, 0 = unlimited")
	flag.StringVar(&logFile, "log-file", "", "also log to this file (rotated)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func parseGoal() (npuzzle.Board, error) {
	if goalStr == "" {
		return npuzzle.Goal(), nil
	}
	return npuzzle.ParseBoard(goalStr)
}

func solveOne(start, goal npuzzle.Board) (*npuzzle.Solution, error) {
	if !npuzzle.Solvable(start, goal) {
		return nil, fmt.Errorf("board %s cannot reach %s (inversion parity differs)",
			start, goal)
	}
	started := time.Now()
	sol, err := npuzzle.SolveLimited(start, goal, maxExpand)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"board":    start.String(),
		"length":   sol.Length(),
		"expanded": sol.Expanded,
		"elapsed":  time.Since(started).String(),
	}).Info("solved")
	return sol, nil
}

func printSolution(start npuzzle.Board, sol *npuzzle.Solution) {
	moves := make([]string, len(sol.Moves))
	for i, m := range sol.Moves {
		moves[i] = m.String()
	}
	fmt.Printf("%s: %d moves: %s\n", start, sol.Length(), strings.Join(moves, " "))
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	goal, err := parseGoal()
	if err != nil {
		log.Fatal("bad goal: ", err)
	}

	if boardStr != "" {
		start, err := npuzzle.ParseBoard(boardStr)
		if err != nil {
			log.Fatal("bad board: ", err)
		}
		sol, err := solveOne(start, goal)
		if err != nil {
			log.Fatal(err)
		}
		printSolution(start, sol)
		return
	}

	r := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	starts := make([]npuzzle.Board, count)
	for i := range starts {
		starts[i] = npuzzle.Scramble(goal, r)
	}

	// Each solve owns its frontier and explored set, so instances run
	// in parallel without sharing anything but the goal.
	sols := make([]*npuzzle.Solution, count)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, start := range starts {
		g.Go(func() error {
			sol, err := solveOne(start, goal)
			if err != nil {
				return err
			}
			sols[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for i, sol := range sols {
		printSolution(starts[i], sol)
	}
}
