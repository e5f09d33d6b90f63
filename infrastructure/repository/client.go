package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/atelier-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

const clientsTable = "clients"

type ClientRepository interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
	GetClientByID(clientID int) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns("name", "lastname", "email", "phone", "address", "city", "tags", "note").
		Values(
			client.Name,
			client.Lastname,
			client.Email,
			client.Phone,
			client.Address,
			client.City,
			pq.Array(client.Tags),
			client.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clientsSQL, clientsArgs...).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	logOperation(clientsTable, "insert", start, err)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) error {
	start := time.Now()

	queryBuilder := squirrel.
		Update(clientsTable).
		Set("name", client.Name).
		Set("lastname", client.Lastname).
		Set("email", client.Email).
		Set("phone", client.Phone).
		Set("address", client.Address).
		Set("city", client.City).
		Set("tags", pq.Array(client.Tags)).
		Set("note", client.Note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID})

	if client.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", client.DeletedAt)
	}

	clientsSQL, clientsArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(clientsSQL, clientsArgs...)
	logOperation(clientsTable, "update", start, err)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *clientRepository) GetClientByID(clientID int) (*domain.Client, error) {
	start := time.Now()

	clientsSQL, clientsArgs, err := squirrel.
		Select("id", "name", "lastname", "email", "phone", "address", "city", "tags", "note", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(clientsSQL, clientsArgs...)

	client, err := deserializeClient(row.Scan)
	logOperation(clientsTable, "select", start, err)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Select("id", "name", "lastname", "email", "phone", "address", "city", "tags", "note", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC, lastname ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	logOperation(clientsTable, "select", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := deserializeClient(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar cliente: %w", err)
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return clients, nil
}

func deserializeClient(scan func(dest ...any) error) (*domain.Client, error) {
	client := &domain.Client{}

	if err := scan(
		&client.ID,
		&client.Name,
		&client.Lastname,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.City,
		pq.Array(&client.Tags),
		&client.Note,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return client, nil
}
