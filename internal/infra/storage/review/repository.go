package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	"github.com/m04kA/AGIA-RentalService/pkg/dbmetrics"
	"github.com/m04kA/AGIA-RentalService/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"villa_id",
	"user_id",
	"booking_id",
	"user_name",
	"user_avatar",
	"rating",
	"comment",
	"created_at",
}

// Repository репозиторий отзывов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
// Имя и аватар автора денормализуются на момент создания
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	review.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"id",
			"villa_id",
			"user_id",
			"booking_id",
			"user_name",
			"user_avatar",
			"rating",
			"comment",
		).
		Values(
			review.ID,
			review.VillaID,
			review.UserID,
			review.BookingID,
			review.UserName,
			review.UserAvatar,
			review.Rating,
			review.Comment,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// GetByVillaID получает отзывы по вилле, сначала новые
func (r *Repository) GetByVillaID(ctx context.Context, villaID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"villa_id": villaID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVillaID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVillaID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.VillaID,
			&review.UserID,
			&review.BookingID,
			&review.UserName,
			&review.UserAvatar,
			&review.Rating,
			&review.Comment,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByVillaID - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVillaID - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
