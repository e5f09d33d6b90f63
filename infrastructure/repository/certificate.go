package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/atelier-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

const certificatesTable = "certificates"

type CertificateRepository interface {
	CreateCertificate(certificate *domain.Certificate) (*domain.Certificate, error)
	GetCertificateByID(certificateID string) (*domain.Certificate, error)
	ListCertificatesByInstrumentID(instrumentID string) ([]*domain.Certificate, error)
}

type certificateRepository struct {
	conn *postgres.Connection
}

func NewCertificateRepository(conn *postgres.Connection) CertificateRepository {
	return &certificateRepository{
		conn: conn,
	}
}

func (r *certificateRepository) CreateCertificate(certificate *domain.Certificate) (*domain.Certificate, error) {
	start := time.Now()

	queryBuilder := squirrel.
		Insert(certificatesTable).
		Columns("id", "instrument_id", "client_id", "appraiser", "appraised_value", "notes", "issued_at").
		Values(
			certificate.ID,
			certificate.InstrumentID,
			certificate.ClientID,
			certificate.Appraiser,
			certificate.AppraisedValue,
			certificate.Notes,
			certificate.IssuedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	certificatesSQL, certificatesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(certificatesSQL, certificatesArgs...)
	logOperation(certificatesTable, "insert", start, err)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar certificado: %w", err)
	}

	return certificate, nil
}

func (r *certificateRepository) GetCertificateByID(certificateID string) (*domain.Certificate, error) {
	start := time.Now()

	certificatesSQL, certificatesArgs, err := squirrel.
		Select("id", "instrument_id", "client_id", "appraiser", "appraised_value", "notes", "issued_at").
		From(certificatesTable).
		Where(squirrel.Eq{"id": certificateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	certificate := &domain.Certificate{}
	err = r.conn.QueryRow(certificatesSQL, certificatesArgs...).Scan(
		&certificate.ID,
		&certificate.InstrumentID,
		&certificate.ClientID,
		&certificate.Appraiser,
		&certificate.AppraisedValue,
		&certificate.Notes,
		&certificate.IssuedAt,
	)
	logOperation(certificatesTable, "select", start, err)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return certificate, nil
}

func (r *certificateRepository) ListCertificatesByInstrumentID(instrumentID string) ([]*domain.Certificate, error) {
	start := time.Now()

	certificatesSQL, certificatesArgs, err := squirrel.
		Select("id", "instrument_id", "client_id", "appraiser", "appraised_value", "notes", "issued_at").
		From(certificatesTable).
		Where(squirrel.Eq{"instrument_id": instrumentID}).
		OrderBy("issued_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(certificatesSQL, certificatesArgs...)
	logOperation(certificatesTable, "select", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certificates := make([]*domain.Certificate, 0)

	for rows.Next() {
		certificate := &domain.Certificate{}
		if err := rows.Scan(
			&certificate.ID,
			&certificate.InstrumentID,
			&certificate.ClientID,
			&certificate.Appraiser,
			&certificate.AppraisedValue,
			&certificate.Notes,
			&certificate.IssuedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar certificado: %w", err)
		}

		certificates = append(certificates, certificate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return certificates, nil
}
