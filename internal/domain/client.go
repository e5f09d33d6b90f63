// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Client representa um contato no cadastro de clientes da loja
type Client struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Lastname  string     `json:"lastname"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Tags      []string   `json:"tags"`
	Note      string     `json:"note"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type UpdateClientRequest struct {
	ID       int       `json:"id"`
	Name     *string   `json:"name"`
	Lastname *string   `json:"lastname"`
	Email    *string   `json:"email"`
	Phone    *string   `json:"phone"`
	Address  *string   `json:"address"`
	City     *string   `json:"city"`
	Tags     *[]string `json:"tags"`
	Note     *string   `json:"note"`
	Deleted  *bool     `json:"deleted"`
}
