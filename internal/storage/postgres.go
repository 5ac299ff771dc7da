package storage

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
)

type PostgresStore struct {
	conn *pgx.Conn
}

func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{conn: conn}, nil
}

func (p *PostgresStore) Close(ctx context.Context) {
	if p.conn != nil {
		_ = p.conn.Close(ctx)
	}
}

func (p *PostgresStore) EnsureTables(ctx context.Context) error {
	_, err := p.conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	outcome TEXT NOT NULL,
	winner TEXT,
	moves INTEGER NOT NULL,
	board_size INTEGER NOT NULL,
	win_length INTEGER NOT NULL,
	started_at TIMESTAMP,
	ended_at TIMESTAMP
);
`)
	return err
}

func (p *PostgresStore) SaveGame(ctx context.Context, game CompletedGame) error {
	if p == nil || p.conn == nil {
		return nil
	}
	_, err := p.conn.Exec(ctx, `INSERT INTO games (id, outcome, winner, moves, board_size, win_length, started_at, ended_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (id) DO NOTHING`,
		game.ID, game.Outcome, game.Winner, game.Moves, game.BoardSize, game.WinLength, game.StartedAt, game.EndedAt)
	if err != nil {
		log.Printf("failed to save game: %v", err)
	}
	return err
}

func (p *PostgresStore) Standings(ctx context.Context, limit int) (Standings, error) {
	var res Standings
	rows, err := p.conn.Query(ctx, `SELECT outcome, COUNT(*) FROM games GROUP BY outcome`)
	if err != nil {
		return res, err
	}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			rows.Close()
			return res, err
		}
		res.add(outcome, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return res, err
	}

	rows, err = p.conn.Query(ctx, `
SELECT id, outcome, COALESCE(winner, ''), moves, board_size, win_length, started_at, ended_at
FROM games
ORDER BY ended_at DESC
LIMIT $1`, limit)
	if err != nil {
		return res, err
	}
	defer rows.Close()
	for rows.Next() {
		var g CompletedGame
		if err := rows.Scan(&g.ID, &g.Outcome, &g.Winner, &g.Moves, &g.BoardSize, &g.WinLength, &g.StartedAt, &g.EndedAt); err != nil {
			return res, err
		}
		res.Recent = append(res.Recent, g)
	}
	return res, rows.Err()
}
