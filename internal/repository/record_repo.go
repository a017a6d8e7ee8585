package repository

import (
	"context"
	"errors"

	"talent-scout/internal/domain"
)

// RecordRepository es un sink de solo escritura para registros de candidatos.
type RecordRepository interface {
	Append(ctx context.Context, record domain.CandidateRecord) error
}

// MultiRecordRepository escribe en todos los sinks configurados.
type MultiRecordRepository struct {
	repos []RecordRepository
}

func NewMultiRecordRepository(repos ...RecordRepository) *MultiRecordRepository {
	out := make([]RecordRepository, 0, len(repos))
	for _, r := range repos {
		if r != nil {
			out = append(out, r)
		}
	}
	return &MultiRecordRepository{repos: out}
}

// Append intenta todos los sinks aunque alguno falle y junta los errores.
func (m *MultiRecordRepository) Append(ctx context.Context, record domain.CandidateRecord) error {
	var errs []error
	for _, r := range m.repos {
		if err := r.Append(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
