// Package clienting gerencia o cadastro de clientes da loja
package clienting

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

var (
	ErrMissingRequiredData = errors.New("nome e email são obrigatórios")
	ErrClientNotFound      = errors.New("cliente não encontrado")
)

type ClientService interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(req *domain.UpdateClientRequest) (*domain.Client, error)
	GetClientByID(clientID int) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	DeleteClient(clientID int) error
}

type Service struct {
	clientRepo repository.ClientRepository
}

func NewService(clientRepo repository.ClientRepository) ClientService {
	return &Service{
		clientRepo: clientRepo,
	}
}

func (s *Service) CreateClient(client *domain.Client) (*domain.Client, error) {
	if client.Name == "" || client.Email == "" {
		return nil, ErrMissingRequiredData
	}

	client.Email = normalizeEmail(client.Email)
	if client.Tags == nil {
		client.Tags = []string{}
	}

	return s.clientRepo.CreateClient(client)
}

func (s *Service) UpdateClient(req *domain.UpdateClientRequest) (*domain.Client, error) {
	if req.ID == 0 {
		return nil, ErrMissingRequiredData
	}

	client, err := s.clientRepo.GetClientByID(req.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if req.Name != nil {
		client.Name = *req.Name
	}

	if req.Lastname != nil {
		client.Lastname = *req.Lastname
	}

	if req.Email != nil {
		client.Email = normalizeEmail(*req.Email)
	}

	if req.Phone != nil {
		client.Phone = *req.Phone
	}

	if req.Address != nil {
		client.Address = *req.Address
	}

	if req.City != nil {
		client.City = *req.City
	}

	if req.Tags != nil {
		client.Tags = *req.Tags
	}

	if req.Note != nil {
		client.Note = *req.Note
	}

	if req.Deleted != nil && *req.Deleted {
		now := time.Now()
		client.Deleted = true
		client.DeletedAt = &now
	}

	if err := s.clientRepo.UpdateClient(client); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

func (s *Service) GetClientByID(clientID int) (*domain.Client, error) {
	return s.clientRepo.GetClientByID(clientID)
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	return s.clientRepo.ListClients()
}

// DeleteClient faz a remoção lógica do cliente; o histórico de vendas
// continua apontando para ele
func (s *Service) DeleteClient(clientID int) error {
	deleted := true
	_, err := s.UpdateClient(&domain.UpdateClientRequest{
		ID:      clientID,
		Deleted: &deleted,
	})
	return err
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
