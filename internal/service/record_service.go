package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talent-scout/internal/domain"
	"talent-scout/internal/repository"
)

var ErrRecordServiceNotConfigured = errors.New("record service not configured")

// RecordService arma el registro seudonimizado y lo entrega al sink.
type RecordService struct {
	repo repository.RecordRepository
	salt string
	now  func() time.Time
}

func NewRecordService(repo repository.RecordRepository, salt string) *RecordService {
	return &RecordService{
		repo: repo,
		salt: salt,
		now:  time.Now,
	}
}

// BuildRecord reemplaza email y telefono por su hash; nunca copia el texto plano.
func (s *RecordService) BuildRecord(profile domain.CandidateProfile, questions []string) domain.CandidateRecord {
	qs := append([]string{}, questions...)
	return domain.CandidateRecord{
		IDEmail:          s.hashOptional(profile.Email),
		IDPhone:          s.hashOptional(profile.Phone),
		FullName:         profile.FullName,
		ExperienceYears:  profile.ExperienceYears,
		DesiredPositions: profile.DesiredPositions,
		Location:         profile.Location,
		TechStack:        profile.TechStack,
		Questions:        qs,
		TS:               s.now().Unix(),
		Privacy:          domain.PrivacyNote,
	}
}

func (s *RecordService) Save(ctx context.Context, profile domain.CandidateProfile, questions []string) error {
	if s == nil || s.repo == nil {
		return ErrRecordServiceNotConfigured
	}
	if err := s.repo.Append(ctx, s.BuildRecord(profile, questions)); err != nil {
		return fmt.Errorf("append candidate record: %w", err)
	}
	return nil
}

func (s *RecordService) hashOptional(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	h := HashIdentifier(s.salt, *v)
	return &h
}
