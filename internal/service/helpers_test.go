package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/repository"
	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// testEnv monta os repositórios sobre o armazenamento em memória
type testEnv struct {
	stores    *repository.KVStoreDirectoryRepository
	settings  *repository.KVSettingsRepository
	documents *repository.KVDocumentRepository
	sharing   *repository.KVSharingRepository
	orders    *repository.KVOrderRepository
}

func newTestEnv() *testEnv {
	kv := kvstore.NewMemoryStore()
	locks := keylock.New()
	return &testEnv{
		stores:    repository.NewKVStoreDirectoryRepository(kv, locks),
		settings:  repository.NewKVSettingsRepository(kv, locks),
		documents: repository.NewKVDocumentRepository(kv, locks),
		sharing:   repository.NewKVSharingRepository(kv, locks),
		orders:    repository.NewKVOrderRepository(kv, locks),
	}
}

func (e *testEnv) createStore(t *testing.T, name, parentID string) *store.Store {
	t.Helper()
	s, err := store.NewStore(name, "", "", "", "", parentID)
	require.NoError(t, err)
	require.NoError(t, e.stores.Create(context.Background(), s))
	return s
}

func (e *testEnv) enableFlags(t *testing.T, headquartersID string, fields settings.UpdateFields) {
	t.Helper()
	_, err := e.settings.Update(context.Background(), headquartersID, fields)
	require.NoError(t, err)
}

func (e *testEnv) saveDocument(t *testing.T, storeID string, doc *document.StoreDocument) {
	t.Helper()
	require.NoError(t, e.documents.Save(context.Background(), storeID, doc))
}

func boolPtr(b bool) *bool {
	return &b
}
