package sharing

import (
	"context"
)

// Repository define a persistência de recursos compartilhados e das
// solicitações de compartilhamento
type Repository interface {
	// SaveResource grava o registro de compartilhamento (cria ou substitui)
	SaveResource(ctx context.Context, r *SharedResource) error

	// FindResourceByID busca um registro pela chave determinística
	FindResourceByID(ctx context.Context, id string) (*SharedResource, error)

	// FindAllResources retorna todos os registros de compartilhamento
	FindAllResources(ctx context.Context) ([]*SharedResource, error)

	// FindResourcesForStore retorna os recursos visíveis para a loja,
	// ou seja, registros em que a loja consta em shared_with
	FindResourcesForStore(ctx context.Context, storeID string) ([]*SharedResource, error)

	// DeleteResource remove um registro de compartilhamento
	DeleteResource(ctx context.Context, id string) error

	// SaveRequest grava uma solicitação (cria ou substitui)
	SaveRequest(ctx context.Context, r *ShareRequest) error

	// FindRequestByID busca uma solicitação pelo ID
	FindRequestByID(ctx context.Context, id string) (*ShareRequest, error)

	// FindAllRequests retorna todas as solicitações
	FindAllRequests(ctx context.Context) ([]*ShareRequest, error)

	// FindRequestsForStore retorna as solicitações em que a loja é a
	// solicitante ou o alvo (visão unificada de entrada e saída)
	FindRequestsForStore(ctx context.Context, storeID string) ([]*ShareRequest, error)
}
