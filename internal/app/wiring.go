package app

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"talent-scout/internal/config"
	"talent-scout/internal/db"
	"talent-scout/internal/llm"
	"talent-scout/internal/repository"
	"talent-scout/internal/service"
)

// Deps agrupa lo que necesitan los binarios; Close libera pool y redis.
type Deps struct {
	Intake *service.IntakeService
	pool   *pgxpool.Pool
	redis  *redis.Client
}

func (d *Deps) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.redis != nil {
		_ = d.redis.Close()
	}
}

// Build arma el grafo de dependencias a partir de la configuración.
// Postgres y Redis son opcionales: si fallan se sigue con archivo y memoria.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Deps {
	deps := &Deps{}

	var primary service.QuestionGenerator
	if cfg.LLMEnabled() {
		client := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger,
			llm.WithTemperature(cfg.LLMTemperature),
			llm.WithMaxTokens(cfg.LLMMaxTokens),
			llm.WithTimeout(cfg.LLMTimeout),
		)
		primary = service.NewLLMQuestionGenerator(client)
	} else {
		logger.Info("llm api key not configured, using offline question bank")
	}
	generator := service.NewFallbackQuestionGenerator(primary, logger)

	sinks := []repository.RecordRepository{repository.NewFileRecordRepository(cfg.RecordsPath)}
	if cfg.DatabaseURL != "" {
		if pool, err := openRecordsDB(ctx, cfg); err != nil {
			logger.Warn("postgres record sink disabled", zap.Error(err))
		} else {
			deps.pool = pool
			sinks = append(sinks, repository.NewPgRecordRepository(pool))
		}
	}
	recorder := service.NewRecordService(repository.NewMultiRecordRepository(sinks...), cfg.Salt)

	var sessions repository.SessionRepository = repository.NewMemorySessionRepository()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, keeping session in memory", zap.Error(err))
			_ = client.Close()
		} else {
			deps.redis = client
			sessions = repository.NewRedisSessionRepository(client, cfg.SessionTTL)
		}
		cancel()
	}

	machine := service.NewIntakeMachine(generator, recorder, logger)
	deps.Intake = service.NewIntakeService(machine, sessions, logger)
	return deps
}

func openRecordsDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Ping(ctxPing, pool); err != nil {
		pool.Close()
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
