package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	"github.com/m04kA/WGS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WGS-BookingService/pkg/psqlbuilder"
)

// ID единственной строки настроек студии
const singletonID = 1

// Repository репозиторий для работы с настройками студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки студии (единственная строка с id = 1)
func (r *Repository) Get(ctx context.Context) (*domain.StudioSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"jam_buka",
		"jam_tutup",
		"durasi_sewa",
		"updated_at",
	).
		From("studio_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.StudioSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.JamBuka,
		&settings.JamTutup,
		&settings.DurasiSewa,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert сохраняет настройки студии, создавая строку при первом обращении
func (r *Repository) Upsert(ctx context.Context, settings *domain.StudioSettings) (*domain.StudioSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("studio_settings").
		Columns("id", "jam_buka", "jam_tutup", "durasi_sewa", "updated_at").
		Values(singletonID, settings.JamBuka, settings.JamTutup, settings.DurasiSewa, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			jam_buka = EXCLUDED.jam_buka,
			jam_tutup = EXCLUDED.jam_tutup,
			durasi_sewa = EXCLUDED.durasi_sewa,
			updated_at = NOW()
		RETURNING id, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
