package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
)

// Chaves do armazenamento de documentos (uma por coleção global; o
// documento de cada loja tem chave própria derivada do ID da loja)
const (
	keyStoreDirectory   = "store_directory"
	keyBranchSettings   = "headquarters_branch_settings"
	keySharedResources  = "shared_resources"
	keyShareRequests    = "resource_share_requests"
	keyCrossStoreOrders = "cross_store_orders"
)

// documentKey monta a chave do documento de dados de uma loja
func documentKey(storeID string) string {
	return "app_state_" + storeID
}

// getJSON lê e decodifica o valor de uma chave. O primeiro retorno indica
// se a chave existe.
func getJSON(ctx context.Context, kv kvstore.Store, key string, out interface{}) (bool, error) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("falha ao buscar documento %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("falha ao decodificar documento %s: %w", key, err)
	}
	return true, nil
}

// setJSON codifica e grava o valor de uma chave
func setJSON(ctx context.Context, kv kvstore.Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("falha ao codificar documento %s: %w", key, err)
	}

	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("falha ao gravar documento %s: %w", key, err)
	}
	return nil
}
