package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/pkg/psqlbuilder"
	"github.com/cst-sportspot/booking-service/pkg/txmanager"
)

// DBExecutor переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.DBExecutor

var venueColumns = []string{
	"id",
	"name",
	"type",
	"capacity",
	"status",
	"equipment",
	"image",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками и их заблокированными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку.
// Нарушение уникальности имени возвращается как ErrDuplicateName.
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venues").
		Columns("name", "type", "capacity", "status", "equipment", "image").
		Values(v.Name, v.Type, v.Capacity, v.Status, pq.Array(v.Equipment), v.Image).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVenueRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return v, nil
}

// List получает все площадки, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Type,
			&v.Capacity,
			&v.Status,
			pq.Array(&v.Equipment),
			&v.Image,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time
		venues = append(venues, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// Update обновляет данные площадки
func (r *Repository) Update(ctx context.Context, v *domain.Venue) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("venues").
		Set("name", v.Name).
		Set("type", v.Type).
		Set("capacity", v.Capacity).
		Set("status", v.Status).
		Set("equipment", pq.Array(v.Equipment)).
		Set("image", v.Image).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// Delete удаляет площадку. Проверка ссылающихся бронирований - на уровне сервиса.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// Count подсчитывает общее количество площадок
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("venues").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// AddBlockedSlot добавляет административно заблокированный слот площадки
func (r *Repository) AddBlockedSlot(ctx context.Context, s *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venue_blocked_slots").
		Columns("venue_id", "date", "start_time", "end_time").
		Values(s.VenueID, s.Date, s.StartTime, s.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddBlockedSlot - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	return s, nil
}

// DeleteBlockedSlot удаляет заблокированный слот площадки
func (r *Repository) DeleteBlockedSlot(ctx context.Context, venueID, slotID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venue_blocked_slots").
		Where(squirrel.Eq{"id": slotID, "venue_id": venueID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

// GetBlockedSlotsByDay получает заблокированные слоты площадки,
// попадающие в границы дня [dayStart, dayEnd)
func (r *Repository) GetBlockedSlotsByDay(ctx context.Context, venueID int64, dayStart, dayEnd time.Time) ([]*domain.BlockedSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "venue_id", "date", "start_time", "end_time", "created_at").
		From("venue_blocked_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.GtOrEq{"date": dayStart}).
		Where(squirrel.Lt{"date": dayEnd}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlotsByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlotsByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var s domain.BlockedSlot
		var createdAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.VenueID, &s.Date, &s.StartTime, &s.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedSlotsByDay - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlotsByDay - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func scanVenueRow(row *sql.Row) (*domain.Venue, error) {
	var v domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Type,
		&v.Capacity,
		&v.Status,
		pq.Array(&v.Equipment),
		&v.Image,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// isUniqueViolation определяет нарушение уникального ограничения PostgreSQL (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
