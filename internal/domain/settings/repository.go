package settings

import (
	"context"
)

// Repository define as operações de persistência das configurações de
// sincronização
type Repository interface {
	// FindByHeadquarters retorna as configurações da matriz. Quando não
	// existe registro, cria e persiste o registro padrão (nunca retorna
	// "não encontrado").
	FindByHeadquarters(ctx context.Context, headquartersID string) (*Settings, error)

	// Update aplica uma atualização parcial sobre as configurações da
	// matriz e retorna o registro resultante
	Update(ctx context.Context, headquartersID string, fields UpdateFields) (*Settings, error)
}
