package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"talent-scout/internal/domain"
)

type pgExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgRecordRepository guarda registros en candidate_records; nunca actualiza ni borra.
type PgRecordRepository struct {
	db pgExecer
}

func NewPgRecordRepository(pool *pgxpool.Pool) *PgRecordRepository {
	return &PgRecordRepository{db: pool}
}

func (r *PgRecordRepository) Append(ctx context.Context, record domain.CandidateRecord) error {
	const query = `
		INSERT INTO candidate_records (
			id_email, id_phone, full_name, experience_years, desired_positions,
			location, tech_stack, questions, ts, privacy
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	questions := record.Questions
	if questions == nil {
		questions = []string{}
	}
	_, err := r.db.Exec(ctx, query,
		record.IDEmail,
		record.IDPhone,
		record.FullName,
		record.ExperienceYears,
		record.DesiredPositions,
		record.Location,
		record.TechStack,
		questions,
		record.TS,
		record.Privacy,
	)
	return err
}
