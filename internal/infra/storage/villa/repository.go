package villa

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

var villaColumns = []string{
	"id",
	"name",
	"location",
	"price_per_night",
	"discount_price",
	"description",
	"image_url",
	"capacity",
	"bedrooms",
	"latitude",
	"longitude",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога вилл
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория вилл
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет виллу в каталог
func (r *Repository) Create(ctx context.Context, villa *domain.Villa) (*domain.Villa, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	villa.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("villas").
		Columns(
			"id",
			"name",
			"location",
			"price_per_night",
			"discount_price",
			"description",
			"image_url",
			"capacity",
			"bedrooms",
			"latitude",
			"longitude",
		).
		Values(
			villa.ID,
			villa.Name,
			villa.Location,
			villa.PricePerNight,
			villa.DiscountPrice,
			villa.Description,
			villa.ImageURL,
			villa.Capacity,
			villa.Bedrooms,
			villa.Latitude,
			villa.Longitude,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	villa.CreatedAt = createdAt.Time
	villa.UpdatedAt = updatedAt.Time

	return villa, nil
}

// GetByID получает виллу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Villa, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(villaColumns...).
		From("villas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	villa, err := scanVilla(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVillaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan villa: %v", ErrScanRow, err)
	}

	return villa, nil
}

// List возвращает весь каталог вилл
func (r *Repository) List(ctx context.Context) ([]*domain.Villa, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(villaColumns...).
		From("villas").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	villas := make([]*domain.Villa, 0)
	for rows.Next() {
		villa, err := scanVilla(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		villas = append(villas, villa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return villas, nil
}

// Update обновляет данные виллы
func (r *Repository) Update(ctx context.Context, villa *domain.Villa) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("villas").
		Set("name", villa.Name).
		Set("location", villa.Location).
		Set("price_per_night", villa.PricePerNight).
		Set("discount_price", villa.DiscountPrice).
		Set("description", villa.Description).
		Set("image_url", villa.ImageURL).
		Set("capacity", villa.Capacity).
		Set("bedrooms", villa.Bedrooms).
		Set("latitude", villa.Latitude).
		Set("longitude", villa.Longitude).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": villa.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVillaNotFound
	}

	return nil
}

// Delete удаляет виллу из каталога
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("villas").
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
		return ErrVillaNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVilla(row rowScanner) (*domain.Villa, error) {
	var villa domain.Villa
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&villa.ID,
		&villa.Name,
		&villa.Location,
		&villa.PricePerNight,
		&villa.DiscountPrice,
		&villa.Description,
		&villa.ImageURL,
		&villa.Capacity,
		&villa.Bedrooms,
		&villa.Latitude,
		&villa.Longitude,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	villa.CreatedAt = createdAt.Time
	villa.UpdatedAt = updatedAt.Time

	return &villa, nil
}
