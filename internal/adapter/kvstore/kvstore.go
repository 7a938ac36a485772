package kvstore

import "context"

// Store define o armazenamento genérico de documentos por chave. Cada valor
// é um documento serializado em JSON. As implementações devem tratar Set
// como substituição integral do valor anterior.
type Store interface {
	// Get retorna o valor da chave. O segundo retorno indica se a chave existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set grava o valor da chave, substituindo o valor anterior se houver
	Set(ctx context.Context, key string, value []byte) error

	// Delete remove a chave. Remover uma chave inexistente não é erro.
	Delete(ctx context.Context, key string) error
}
