package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/atelier-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

const salesTable = "sales_history"

type SaleRepository interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	ListSales(startDate, endDate *time.Time) ([]*domain.Sale, error)
	ListSalesByClientID(clientID int) ([]*domain.Sale, error)
	SaveOrUpdateBatch(sales []*domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Insert(salesTable).
		Columns("client_id", "instrument_id", "sale_price", "sale_date").
		Values(sale.ClientID, sale.InstrumentID, sale.SalePrice, sale.SaleDate).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(salesSQL, salesArgs...).Scan(&sale.ID, &sale.CreatedAt)
	logOperation(salesTable, "insert", start, err)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return sale, nil
}

func (r *saleRepository) ListSales(startDate, endDate *time.Time) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "client_id", "instrument_id", "sale_price", "sale_date", "created_at").
		From(salesTable).
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil && !startDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *startDate})
	}

	if endDate != nil && !endDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sale_date": *endDate})
	}

	return r.querySales(queryBuilder)
}

func (r *saleRepository) ListSalesByClientID(clientID int) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "client_id", "instrument_id", "sale_price", "sale_date", "created_at").
		From(salesTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.querySales(queryBuilder)
}

func (r *saleRepository) querySales(queryBuilder squirrel.SelectBuilder) ([]*domain.Sale, error) {
	start := time.Now()

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(salesSQL, salesArgs...)
	logOperation(salesTable, "select", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)

	for rows.Next() {
		sale := &domain.Sale{}
		if err := rows.Scan(
			&sale.ID,
			&sale.ClientID,
			&sale.InstrumentID,
			&sale.SalePrice,
			&sale.SaleDate,
			&sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar venda: %w", err)
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}

// SaveOrUpdateBatch insere vendas vindas da sincronização com o sistema
// antigo. A chave de conflito (client_id, instrument_id, sale_date) evita
// duplicar linhas já importadas em execuções anteriores
func (r *saleRepository) SaveOrUpdateBatch(sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	start := time.Now()

	query := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns("client_id", "instrument_id", "sale_price", "sale_date").
		PlaceholderFormat(squirrel.Dollar)

	for _, sale := range sales {
		query = query.Values(
			sale.ClientID,
			sale.InstrumentID,
			sale.SalePrice,
			sale.SaleDate,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (client_id, instrument_id, sale_date) DO UPDATE SET
				sale_price = EXCLUDED.sale_price
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	logOperation(salesTable, "upsert", start, err)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
