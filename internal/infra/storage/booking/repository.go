package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/pkg/psqlbuilder"
)

const table = "bookings"

var bookingColumns = []string{
	"id",
	"suite_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"start_date",
	"end_date",
	"total_amount",
	"status",
	"metadata",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// ID и время создания назначает база данных
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := buildInsert(booking)
	if err != nil {
		return nil, err
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetBlockedRanges возвращает периоды, занятые ожидающими и подтвержденными бронированиями номера
func (r *Repository) GetBlockedRanges(ctx context.Context, suiteID string) ([]domain.BookedRange, error) {
	query, args, err := buildBlockedRanges(suiteID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedRanges - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.BookedRange, 0)
	for rows.Next() {
		var br domain.BookedRange
		if err := rows.Scan(&br.From, &br.To); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedRanges - scan: %v", ErrScanRow, err)
		}
		ranges = append(ranges, br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedRanges - rows iteration: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// List возвращает все бронирования, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := buildList()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func buildInsert(booking *domain.Booking) (string, []interface{}, error) {
	metadata, err := json.Marshal(booking.Metadata)
	if err != nil {
		return "", nil, fmt.Errorf("%w: Create - marshal metadata: %v", ErrMetadata, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"suite_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"start_date",
			"end_date",
			"total_amount",
			"status",
			"metadata",
		).
		Values(
			booking.SuiteID,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.StartDate,
			booking.EndDate,
			booking.TotalAmount,
			booking.Status,
			string(metadata),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildBlockedRanges(suiteID string) (string, []interface{}, error) {
	statuses := make([]string, 0, len(domain.BlockingStatuses))
	for _, s := range domain.BlockingStatuses {
		statuses = append(statuses, string(s))
	}

	query, args, err := psqlbuilder.Select("start_date", "end_date").
		From(table).
		Where(squirrel.Eq{"suite_id": suiteID}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: GetBlockedRanges - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildList() (string, []interface{}, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		status    string
		metadata  []byte
		createdAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.SuiteID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalAmount,
		&status,
		&metadata,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	booking.Status = domain.BookingStatus(status)
	booking.CreatedAt = createdAt.Time

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &booking.Metadata); err != nil {
			return nil, fmt.Errorf("%w: booking id=%s: %v", ErrMetadata, booking.ID, err)
		}
	}

	return &booking, nil
}
