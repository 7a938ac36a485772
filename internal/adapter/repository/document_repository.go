package repository

import (
	"context"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// KVDocumentRepository implementa a interface document.Repository sobre o
// armazenamento de documentos, com uma chave app_state_{loja} por loja
type KVDocumentRepository struct {
	kv    kvstore.Store
	locks *keylock.KeyLock
}

// NewKVDocumentRepository cria uma nova instância de KVDocumentRepository
func NewKVDocumentRepository(kv kvstore.Store, locks *keylock.KeyLock) *KVDocumentRepository {
	return &KVDocumentRepository{
		kv:    kv,
		locks: locks,
	}
}

// Find implementa document.Repository.Find. Lojas sem documento gravado
// recebem um documento vazio.
func (r *KVDocumentRepository) Find(ctx context.Context, storeID string) (*document.StoreDocument, error) {
	doc := &document.StoreDocument{}
	if _, err := getJSON(ctx, r.kv, documentKey(storeID), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save implementa document.Repository.Save
func (r *KVDocumentRepository) Save(ctx context.Context, storeID string, doc *document.StoreDocument) error {
	key := documentKey(storeID)

	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	return setJSON(ctx, r.kv, key, doc)
}

// Update implementa document.Repository.Update. A leitura, a aplicação de
// fn e a gravação acontecem sob o lock da chave da loja; nenhum escritor
// concorrente observa um documento parcialmente aplicado.
func (r *KVDocumentRepository) Update(ctx context.Context, storeID string, fn func(doc *document.StoreDocument) error) error {
	key := documentKey(storeID)

	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	doc := &document.StoreDocument{}
	if _, err := getJSON(ctx, r.kv, key, doc); err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return setJSON(ctx, r.kv, key, doc)
}
