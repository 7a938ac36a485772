package document

import (
	"context"
)

// Repository define o acesso ao documento de dados de cada loja
type Repository interface {
	// Find retorna o documento da loja. Quando a loja ainda não possui
	// documento, retorna um documento vazio (não é erro).
	Find(ctx context.Context, storeID string) (*StoreDocument, error)

	// Save grava o documento da loja, substituindo o anterior por completo
	Save(ctx context.Context, storeID string, doc *StoreDocument) error

	// Update carrega o documento da loja, aplica fn e grava o resultado,
	// tudo sob exclusão mútua da chave daquela loja. Documentos de lojas
	// diferentes podem ser atualizados em paralelo.
	Update(ctx context.Context, storeID string, fn func(doc *StoreDocument) error) error
}
