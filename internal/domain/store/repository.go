package store

import (
	"context"
)

// Repository define as operações do diretório de lojas
type Repository interface {
	// Create persiste uma nova loja. O nível é derivado da loja pai
	// (pai.Level + 1, ou 0 quando não há pai). Retorna ErrParentNotFound
	// quando o parent_id informado não resolve para uma loja existente.
	Create(ctx context.Context, s *Store) error

	// FindByID busca uma loja pelo ID
	FindByID(ctx context.Context, id string) (*Store, error)

	// FindAll retorna todas as lojas do diretório
	FindAll(ctx context.Context) ([]*Store, error)

	// FindChildren retorna apenas as filiais diretas da loja informada
	FindChildren(ctx context.Context, parentID string) ([]*Store, error)

	// FindHierarchy retorna o caminho da raiz até a loja informada,
	// com a raiz em primeiro e a própria loja em último
	FindHierarchy(ctx context.Context, id string) ([]*Store, error)

	// Delete remove uma loja. Retorna ErrHasChildren quando a loja
	// ainda possui filiais diretas.
	Delete(ctx context.Context, id string) error
}
