package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

type postgresProductSource struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProductSource(db *pgxpool.Pool, logger logger.Logger) product.Source {
	return &postgresProductSource{db: db, logger: logger}
}

var psqlProduct = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// LoadAll reads the full product table once; the in-memory catalog built from
// it is the only thing queried at request time.
func (s *postgresProductSource) LoadAll(ctx context.Context) ([]product.Product, error) {
	sql, args, err := psqlProduct.
		Select("id", "name", "description", "category", "price", "rating", "featured").
		From("products").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build product query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to load products", err)
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Rating, &p.Featured); err != nil {
			return nil, apperror.NewInternal("failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating product rows", err)
	}
	return products, nil
}
