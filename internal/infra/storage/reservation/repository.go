package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "reservations"

// columns порядок колонок совпадает с scanReservation
var columns = []string{
	"id",
	"token",
	"arrival_date",
	"departure_date",
	"nights",
	"guests",
	"first_name",
	"last_name",
	"email",
	"phone",
	"message",
	"nightly_rate",
	"subtotal",
	"discount",
	"promo_code",
	"promo_discount",
	"cleaning_fee",
	"tourist_tax",
	"total",
	"deposit_amount",
	"status",
	"rejection_reason",
	"stripe_payment_link_url",
	"smoobu_reservation_id",
	"locale",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе из r.Status
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"token",
			"arrival_date",
			"departure_date",
			"nights",
			"guests",
			"first_name",
			"last_name",
			"email",
			"phone",
			"message",
			"nightly_rate",
			"subtotal",
			"discount",
			"promo_code",
			"promo_discount",
			"cleaning_fee",
			"tourist_tax",
			"total",
			"deposit_amount",
			"status",
			"locale",
		).
		Values(
			res.Token,
			res.ArrivalDate,
			res.DepartureDate,
			res.Nights,
			res.Guests,
			res.FirstName,
			res.LastName,
			res.Email,
			res.Phone,
			res.Message,
			res.NightlyRate,
			res.Subtotal,
			res.Discount,
			res.PromoCode,
			res.PromoDiscount,
			res.CleaningFee,
			res.TouristTax,
			res.Total,
			res.DepositAmount,
			res.Status,
			res.Locale,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetToken получает секрет ссылки бронирования
func (r *Repository) GetToken(ctx context.Context, id int64) (string, error) {
	query, args, err := psqlbuilder.Select("token").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetToken - build select query: %v", ErrBuildQuery, err)
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrReservationNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetToken - scan token: %v", ErrScanRow, err)
	}

	return token, nil
}

// List получает бронирования, новые сверху
// Опционально фильтрует по статусу
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus условно переводит бронирование из change.From в change.To
// Если строка есть, но статус уже другой - ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) error {
	query, args, err := buildStatusUpdate(id, change)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetToken(ctx, id); err != nil {
			return err
		}
		return ErrStatusConflict
	}

	return nil
}

// SetSmoobuReservationID сохраняет id брони в PMS
func (r *Repository) SetSmoobuReservationID(ctx context.Context, id int64, smoobuID int64) error {
	query, args, err := psqlbuilder.Update(table).
		Set("smoobu_reservation_id", smoobuID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetSmoobuReservationID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetSmoobuReservationID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetSmoobuReservationID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// buildStatusUpdate строит UPDATE ... WHERE id = ? AND status = <from>
func buildStatusUpdate(id int64, change domain.StatusChange) (string, []interface{}, error) {
	updateBuilder := psqlbuilder.Update(table).
		Set("status", change.To).
		Set("updated_at", squirrel.Expr("NOW()"))

	if change.DepositAmount != nil {
		updateBuilder = updateBuilder.Set("deposit_amount", *change.DepositAmount)
	}
	if change.PaymentLinkURL != nil {
		updateBuilder = updateBuilder.Set("stripe_payment_link_url", *change.PaymentLinkURL)
	}
	if change.RejectionReason != nil {
		updateBuilder = updateBuilder.Set("rejection_reason", *change.RejectionReason)
	}

	return updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": change.From}).
		ToSql()
}

// scanReservation сканирует строку результата в бронирование
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var phone sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Token,
		&res.ArrivalDate,
		&res.DepartureDate,
		&res.Nights,
		&res.Guests,
		&res.FirstName,
		&res.LastName,
		&res.Email,
		&phone,
		&res.Message,
		&res.NightlyRate,
		&res.Subtotal,
		&res.Discount,
		&res.PromoCode,
		&res.PromoDiscount,
		&res.CleaningFee,
		&res.TouristTax,
		&res.Total,
		&res.DepositAmount,
		&res.Status,
		&res.RejectionReason,
		&res.StripePaymentLinkURL,
		&res.SmoobuReservationID,
		&res.Locale,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Phone = phone.String
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
