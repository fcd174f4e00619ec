package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	"github.com/m04kA/WGS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WGS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с архивом отменённых бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория архива
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в архив отменённых бронирований
// Сервисный слой вызывает его ДО удаления исходного бронирования,
// чтобы история не терялась при сбое удаления
func (r *Repository) Create(ctx context.Context, cancelled *domain.CancelledBooking) (*domain.CancelledBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cancelled_bookings").
		Columns(
			"room_id",
			"nama",
			"whatsapp",
			"tanggal",
			"jam",
			"durasi_sewa",
			"created_at",
		).
		Values(
			cancelled.RoomID,
			cancelled.Nama,
			cancelled.Whatsapp,
			cancelled.Tanggal,
			cancelled.Jam,
			cancelled.DurasiSewa,
			cancelled.CreatedAt,
		).
		Suffix("RETURNING id, cancelled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var cancelledAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cancelled.ID,
		&cancelledAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cancelled.CancelledAt = cancelledAt.Time

	return cancelled, nil
}

// List получает все записи архива, сначала свежие отмены
func (r *Repository) List(ctx context.Context) ([]*domain.CancelledBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"nama",
		"whatsapp",
		"tanggal",
		"jam",
		"durasi_sewa",
		"created_at",
		"cancelled_at",
	).
		From("cancelled_bookings").
		OrderBy("cancelled_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cancelled := make([]*domain.CancelledBooking, 0)
	for rows.Next() {
		var item domain.CancelledBooking
		var createdAt, cancelledAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.RoomID,
			&item.Nama,
			&item.Whatsapp,
			&item.Tanggal,
			&item.Jam,
			&item.DurasiSewa,
			&createdAt,
			&cancelledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.CancelledAt = cancelledAt.Time

		cancelled = append(cancelled, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cancelled, nil
}
