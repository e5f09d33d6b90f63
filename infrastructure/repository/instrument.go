package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/atelier-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

const instrumentsTable = "instruments"

// ErrDuplicateSerialNumber indica violação de unicidade do número de série
var ErrDuplicateSerialNumber = errors.New("número de série já cadastrado")

// uniqueViolation é o código SQLSTATE do Postgres para unique_violation
const uniqueViolation = "23505"

type InstrumentRepository interface {
	CreateInstrument(instrument *domain.Instrument) (*domain.Instrument, error)
	UpdateInstrument(instrument *domain.Instrument) error
	GetInstrumentByID(instrumentID string) (*domain.Instrument, error)
	GetInstrumentBySerialNumber(serialNumber string) (*domain.Instrument, error)
	ListInstruments(status []domain.InstrumentStatus, limit, offset int) ([]*domain.Instrument, error)
	DeleteInstrument(instrumentID string) error
	SaveOrUpdateBatch(instruments []*domain.Instrument) error
}

type instrumentRepository struct {
	conn *postgres.Connection
}

func NewInstrumentRepository(conn *postgres.Connection) InstrumentRepository {
	return &instrumentRepository{
		conn: conn,
	}
}

func (r *instrumentRepository) CreateInstrument(instrument *domain.Instrument) (*domain.Instrument, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Insert(instrumentsTable).
		Columns("id", "maker", "type", "model", "serial_number", "year", "price", "status").
		Values(
			instrument.ID,
			instrument.Maker,
			instrument.Type,
			instrument.Model,
			instrument.SerialNumber,
			instrument.Year,
			instrument.Price,
			instrument.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	instrumentsSQL, instrumentsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(instrumentsSQL, instrumentsArgs...).Scan(&instrument.CreatedAt, &instrument.UpdatedAt)
	logOperation(instrumentsTable, "insert", start, err)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateSerialNumber
		}
		return nil, errors.Wrap(err, "erro ao inserir instrumento")
	}

	return instrument, nil
}

func (r *instrumentRepository) UpdateInstrument(instrument *domain.Instrument) error {
	start := time.Now()

	queryBuilder := squirrel.
		Update(instrumentsTable).
		Set("maker", instrument.Maker).
		Set("type", instrument.Type).
		Set("model", instrument.Model).
		Set("serial_number", instrument.SerialNumber).
		Set("year", instrument.Year).
		Set("price", instrument.Price).
		Set("status", instrument.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": instrument.ID}).
		PlaceholderFormat(squirrel.Dollar)

	instrumentsSQL, instrumentsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(instrumentsSQL, instrumentsArgs...)
	logOperation(instrumentsTable, "update", start, err)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateSerialNumber
		}
		return errors.Wrap(err, "erro ao atualizar instrumento")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *instrumentRepository) GetInstrumentByID(instrumentID string) (*domain.Instrument, error) {
	return r.getInstrument(squirrel.Eq{"id": instrumentID})
}

func (r *instrumentRepository) GetInstrumentBySerialNumber(serialNumber string) (*domain.Instrument, error) {
	return r.getInstrument(squirrel.Eq{"serial_number": serialNumber})
}

func (r *instrumentRepository) getInstrument(whereClause map[string]interface{}) (*domain.Instrument, error) {
	start := time.Now()

	instrumentsSQL, instrumentsArgs, err := squirrel.
		Select("id", "maker", "type", "model", "serial_number", "year", "price", "status", "created_at", "updated_at").
		From(instrumentsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(instrumentsSQL, instrumentsArgs...)

	instrument, err := deserializeInstrument(row.Scan)
	logOperation(instrumentsTable, "select", start, err)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return instrument, nil
}

func (r *instrumentRepository) ListInstruments(status []domain.InstrumentStatus, limit, offset int) ([]*domain.Instrument, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Select("id", "maker", "type", "model", "serial_number", "year", "price", "status", "created_at", "updated_at").
		From(instrumentsTable).
		OrderBy("maker ASC, type ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": status})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	if offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(offset))
	}

	instrumentsSQL, instrumentsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(instrumentsSQL, instrumentsArgs...)
	logOperation(instrumentsTable, "select", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instruments := make([]*domain.Instrument, 0)

	for rows.Next() {
		instrument, err := deserializeInstrument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar instrumento: %w", err)
		}

		instruments = append(instruments, instrument)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return instruments, nil
}

func (r *instrumentRepository) DeleteInstrument(instrumentID string) error {
	start := time.Now()

	instrumentsSQL, instrumentsArgs, err := squirrel.
		Delete(instrumentsTable).
		Where(squirrel.Eq{"id": instrumentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(instrumentsSQL, instrumentsArgs...)
	logOperation(instrumentsTable, "delete", start, err)
	if err != nil {
		return errors.Wrap(err, "erro ao remover instrumento")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// SaveOrUpdateBatch insere ou atualiza instrumentos vindos da sincronização
// com o sistema antigo, usando o número de série como chave de conflito
func (r *instrumentRepository) SaveOrUpdateBatch(instruments []*domain.Instrument) error {
	if len(instruments) == 0 {
		return nil
	}

	start := time.Now()

	query := squirrel.StatementBuilder.
		Insert(instrumentsTable).
		Columns("id", "maker", "type", "model", "serial_number", "year", "price", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, instrument := range instruments {
		query = query.Values(
			instrument.ID,
			instrument.Maker,
			instrument.Type,
			instrument.Model,
			instrument.SerialNumber,
			instrument.Year,
			instrument.Price,
			instrument.Status,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (serial_number) DO UPDATE SET
				maker = EXCLUDED.maker,
				type = EXCLUDED.type,
				model = EXCLUDED.model,
				year = EXCLUDED.year,
				price = EXCLUDED.price,
				status = EXCLUDED.status,
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	logOperation(instrumentsTable, "upsert", start, err)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func deserializeInstrument(scan func(dest ...any) error) (*domain.Instrument, error) {
	instrument := &domain.Instrument{}

	if err := scan(
		&instrument.ID,
		&instrument.Maker,
		&instrument.Type,
		&instrument.Model,
		&instrument.SerialNumber,
		&instrument.Year,
		&instrument.Price,
		&instrument.Status,
		&instrument.CreatedAt,
		&instrument.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return instrument, nil
}
