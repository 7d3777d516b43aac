package booking

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

var bookingColumns = []string{
	"id",
	"user_id",
	"venue_id",
	"venue_name",
	"full_name",
	"student_number",
	"year",
	"course",
	"email",
	"date",
	"start_time",
	"end_time",
	"participants",
	"needs_equipment",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - создание
// с проверкой доступности слота выполняется в сериализуемой транзакции.
// Нарушение частичного уникального индекса активных слотов возвращается
// как ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"venue_id",
			"venue_name",
			"full_name",
			"student_number",
			"year",
			"course",
			"email",
			"date",
			"start_time",
			"end_time",
			"participants",
			"needs_equipment",
			"notes",
			"status",
		).
		Values(
			b.UserID,
			b.VenueID,
			b.VenueName,
			b.FullName,
			b.StudentNumber,
			b.Year,
			b.Course,
			b.Email,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Participants,
			b.NeedsEquipment,
			b.Notes,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List получает бронирования по фильтру.
//
// Правила сортировки:
// - для выборки одного дня (DayStart/DayEnd заданы) - по start_time ASC,
//   это порядок отрисовки календаря;
// - иначе - по дате создания DESC (сначала новые), порядок админ-списков
//   и истории пользователя.
//
// Внутри транзакции дневная выборка блокируется FOR UPDATE - её использует
// создание бронирования для предотвращения гонки check-then-act.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}

	// Сравнение по границам дня [dayStart, dayEnd), а не по равенству
	// timestamp - исторические записи хранят дату с произвольным временем
	dayQuery := filter.DayStart != nil && filter.DayEnd != nil
	if dayQuery {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"date": *filter.DayStart}).
			Where(squirrel.Lt{"date": *filter.DayEnd})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.Occupying {
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupying})
	}

	if dayQuery {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	if txmanager.IsInTransaction(ctx) && dayQuery {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, только для администратора)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// ExistsForVenue сообщает, ссылается ли хотя бы одно бронирование на площадку.
// Используется как guard при удалении площадки.
func (r *Repository) ExistsForVenue(ctx context.Context, venueID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"venue_id": venueID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForVenue - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForVenue - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// CountByStatus подсчитывает бронирования с указанным статусом
func (r *Repository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByUser подсчитывает все бронирования пользователя
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByUser - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountActiveByUser подсчитывает активные бронирования пользователя:
// статус Pending или Approved, дата не раньше from
func (r *Repository) CountActiveByUser(ctx context.Context, userID int64, from time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"status": occupying}).
		Where(squirrel.GtOrEq{"date": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// RepairVenueNames заполняет кэш venue_name из таблицы площадок для записей,
// где он пуст или расходится. Отдельный repair pass для исторических данных,
// не вызывается на горячем пути.
func (r *Repository) RepairVenueNames(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	const query = `
		UPDATE bookings b
		SET venue_name = v.name, updated_at = NOW()
		FROM venues v
		WHERE b.venue_id = v.id
		  AND (b.venue_name IS NULL OR b.venue_name = '' OR b.venue_name <> v.name)`

	result, err := executor.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%w: RepairVenueNames - execute update: %v", ErrExecQuery, err)
	}

	repaired, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RepairVenueNames - get rows affected: %v", ErrExecQuery, err)
	}

	return repaired, nil
}

// scanBooking сканирует одну строку в модель бронирования
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var venueName sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.VenueID,
		&venueName,
		&b.FullName,
		&b.StudentNumber,
		&b.Year,
		&b.Course,
		&b.Email,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Participants,
		&b.NeedsEquipment,
		&b.Notes,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.VenueName = venueName.String
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var venueName sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.VenueID,
			&venueName,
			&b.FullName,
			&b.StudentNumber,
			&b.Year,
			&b.Course,
			&b.Email,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&b.Participants,
			&b.NeedsEquipment,
			&b.Notes,
			&b.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.VenueName = venueName.String
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation определяет нарушение уникального ограничения PostgreSQL (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
