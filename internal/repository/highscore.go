package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Highscore ranks the hardest instances solved optimally: longest optimal
// path first, fewer expanded nodes breaking ties.
type Highscore struct {
	SolveSessionId int64   `json:"solve_session_id"`
	Username       *string `json:"username"`
	StartBoard     string  `json:"start_board"`
	Length         int     `json:"length"`
	Expanded       int     `json:"expanded"`
	SolveMs        float64 `json:"solve_ms"`
}

func (q *Queries) GetHighscores(ctx context.Context, limit int) ([]Highscore, error) {
	rows, err := q.db.Query(
		ctx,
		`SELECT
			solve_session_id,
			username,
			start_board,
			length,
			expanded,
			solve_ms
		FROM solve_session
			LEFT OUTER JOIN player USING (player_id)
		ORDER BY length DESC, expanded ASC
		LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
