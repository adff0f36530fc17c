package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SolveSession struct {
	SolveSessionId int64
	PlayerId       *int64
	StartBoard     string
	GoalBoard      string
	Length         int
	Expanded       int
	SolveMs        float64
	Record         []byte
	CreatedAt      pgtype.Timestamptz
}

type CreateSolveSessionParams struct {
	PlayerId   *int64
	StartBoard string
	GoalBoard  string
	Length     int
	Expanded   int
	SolveMs    float64
	Record     []byte
}

func (q *Queries) CreateSolveSession(
	ctx context.Context, params CreateSolveSessionParams,
) (*SolveSession, error) {
	args := pgx.NamedArgs{
		"start_board": params.StartBoard,
		"goal_board":  params.GoalBoard,
		"length":      params.Length,
		"expanded":    params.Expanded,
		"solve_ms":    params.SolveMs,
		"record":      params.Record,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_session (
			player_id, start_board, goal_board, length, expanded, solve_ms, record
		)
		VALUES (
			@player_id, @start_board, @goal_board, @length, @expanded, @solve_ms, @record
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[SolveSession],
	)
}

func (q *Queries) FetchSolveSession(
	ctx context.Context, solveSessionId int64,
) (*SolveSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solve_session WHERE solve_session_id = $1",
		solveSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveSession])
}
