// Package store is a best-effort results log. Writes happen after a response
// is composed and never influence gameplay.
package store

import (
	"context"
	"database/sql"
)

type GameRecord struct {
	SessionID   string
	Challenge   string
	Object      string
	Points      int
	Success     bool
	RewardImage string
}

type ResultsRepo struct{ DB *sql.DB }

func NewResultsRepo(db *sql.DB) *ResultsRepo { return &ResultsRepo{DB: db} }

func (r *ResultsRepo) Insert(ctx context.Context, rec GameRecord) error {
	const q = `
insert into game_results(session_id, challenge, challenge_object, points, success, reward_image)
values ($1,$2,$3,$4,$5,nullif($6,''))`
	_, err := r.DB.ExecContext(ctx, q, rec.SessionID, rec.Challenge, rec.Object, rec.Points, rec.Success, rec.RewardImage)
	return err
}

// EnsureSchema creates the log table when missing so a fresh database works
// without a migration step.
func (r *ResultsRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists game_results (
	id           bigserial primary key,
	session_id   text not null,
	challenge    text not null,
	challenge_object text not null,
	points       int  not null,
	success      bool not null,
	reward_image text,
	created_at   timestamptz not null default now()
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}
