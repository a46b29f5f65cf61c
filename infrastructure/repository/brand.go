package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
	"github.com/vfg2006/brand-projection-api/internal/domain"
)

const brandsTable = "brands"

var brandColumns = []string{
	"id",
	"name",
	"category",
	"starting_sales",
	"monthly_growth_rate",
	"starting_month",
	"has_launch_plan",
	"launch_plan_fee",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=brand.go -destination=mocks/brand_mock.go -package=mocks -exclude_interfaces=rowScanner
type BrandRepository interface {
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	CountBrands(ctx context.Context) (int, error)
	CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
	ReplaceBrands(ctx context.Context, brands []*domain.Brand) ([]*domain.Brand, error)
}

type brandRepository struct {
	conn *database.Connection
}

func NewBrandRepository(conn *database.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

// ListBrands retorna as marcas na ordem de inserção.
func (r *brandRepository) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(brandColumns...).
		From(brandsTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de marcas")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar marcas")
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler marca")
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de marcas")
	}

	return brands, nil
}

// GetBrandByID retorna nil, nil quando a marca não existe.
func (r *brandRepository) GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(brandColumns...).
		From(brandsTable).
		Where(squirrel.Eq{"id": brandID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de marca")
	}

	brand, err := scanBrand(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar marca %s", brandID)
	}

	return brand, nil
}

func (r *brandRepository) CountBrands(ctx context.Context) (int, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("COUNT(*)").
		From(brandsTable).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir contagem de marcas")
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar marcas")
	}

	return count, nil
}

func (r *brandRepository) CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	timestamp := now()
	brand.CreatedAt = timestamp
	brand.UpdatedAt = timestamp

	if err := r.insert(ctx, r.conn, brand); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar marca %s", brand.Name)
	}

	return brand, nil
}

func (r *brandRepository) UpdateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	brand.UpdatedAt = now()

	query, args, err := r.conn.StatementBuilder().
		Update(brandsTable).
		Set("name", brand.Name).
		Set("category", brand.Category).
		Set("starting_sales", brand.StartingSales).
		Set("monthly_growth_rate", brand.MonthlyGrowthRate).
		Set("starting_month", brand.StartingMonth).
		Set("has_launch_plan", brand.HasLaunchPlan).
		Set("launch_plan_fee", brand.LaunchPlanFee).
		Set("updated_at", brand.UpdatedAt).
		Where(squirrel.Eq{"id": brand.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir atualização de marca")
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao atualizar marca %s", brand.ID)
	}

	if err := expectAffected(result); err != nil {
		return nil, err
	}

	return brand, nil
}

func (r *brandRepository) DeleteBrand(ctx context.Context, brandID string) error {
	query, args, err := r.conn.StatementBuilder().
		Delete(brandsTable).
		Where(squirrel.Eq{"id": brandID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir remoção de marca")
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao remover marca %s", brandID)
	}

	return expectAffected(result)
}

// ReplaceBrands apaga a carteira atual e grava a informada numa única
// transação. A ordem da lista é preservada em created_at.
func (r *brandRepository) ReplaceBrands(ctx context.Context, brands []*domain.Brand) ([]*domain.Brand, error) {
	base := now()

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		q := database.TxQueryer(tx)

		query, args, err := r.conn.StatementBuilder().Delete(brandsTable).ToSql()
		if err != nil {
			return err
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return err
		}

		for i, brand := range brands {
			timestamp := base.Add(time.Duration(i) * time.Millisecond)
			brand.CreatedAt = timestamp
			brand.UpdatedAt = timestamp

			if err := r.insert(ctx, q, brand); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao substituir marcas")
	}

	return brands, nil
}

func (r *brandRepository) insert(ctx context.Context, q database.Queryer, brand *domain.Brand) error {
	query, args, err := r.conn.StatementBuilder().
		Insert(brandsTable).
		Columns(brandColumns...).
		Values(
			brand.ID,
			brand.Name,
			brand.Category,
			brand.StartingSales,
			brand.MonthlyGrowthRate,
			brand.StartingMonth,
			brand.HasLaunchPlan,
			brand.LaunchPlanFee,
			brand.CreatedAt,
			brand.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, query, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	brand := &domain.Brand{}

	if err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Category,
		&brand.StartingSales,
		&brand.MonthlyGrowthRate,
		&brand.StartingMonth,
		&brand.HasLaunchPlan,
		&brand.LaunchPlanFee,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	); err != nil {
		return nil, err
	}

	brand.CreatedAt = brand.CreatedAt.UTC()
	brand.UpdatedAt = brand.UpdatedAt.UTC()

	return brand, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
