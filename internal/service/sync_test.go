package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

func TestSyncProductsDisabledIsNoOp(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hq := env.createStore(t, "Matriz", "")
	branch := env.createStore(t, "Filial Centro", hq.ID)

	env.saveDocument(t, hq.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "p1", Name: "Arroz 5kg", Price: 25.90, Stock: 100}},
	})
	env.saveDocument(t, branch.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "local1", Name: "Produto Local", Price: 9.90, Stock: 5}},
	})

	svc := NewSyncService(env.stores, env.settings, env.documents, logger.NopLogger{}, 2)
	result, err := svc.SyncProducts(ctx, hq.ID)
	require.NoError(t, err)

	assert.False(t, result.Enabled)
	assert.Equal(t, 0, result.TotalBranches)

	doc, err := env.documents.Find(ctx, branch.ID)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "local1", doc.Products[0].ID)
}

func TestSyncProductsOverwritesDirectBranches(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hq := env.createStore(t, "Matriz", "")
	branch := env.createStore(t, "Filial Centro", hq.ID)
	grandchild := env.createStore(t, "Quiosque", branch.ID)

	env.enableFlags(t, hq.ID, settings.UpdateFields{SyncProducts: boolPtr(true)})

	env.saveDocument(t, hq.ID, &document.StoreDocument{
		Products: []document.Product{
			{ID: "p1", Name: "Arroz 5kg", Price: 25.90, Stock: 100},
			{ID: "p2", Name: "Feijão 1kg", Price: 8.50, Stock: 200},
		},
	})
	env.saveDocument(t, branch.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "local1", Name: "Produto Local", Price: 9.90, Stock: 5}},
		Members:  []document.Member{{ID: "m1", Name: "Cliente da Filial"}},
	})
	env.saveDocument(t, grandchild.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "g1", Name: "Produto do Quiosque", Price: 3.0, Stock: 1}},
	})

	before := time.Now()
	svc := NewSyncService(env.stores, env.settings, env.documents, logger.NopLogger{}, 2)
	result, err := svc.SyncProducts(ctx, hq.ID)
	require.NoError(t, err)

	assert.True(t, result.Enabled)
	assert.Equal(t, "products", result.Category)
	assert.Equal(t, 1, result.TotalBranches)
	assert.Equal(t, 1, result.SyncedBranches)
	assert.Equal(t, 0, result.FailedBranches)

	// A coleção da filial é substituída por inteiro; edições locais somem
	doc, err := env.documents.Find(ctx, branch.ID)
	require.NoError(t, err)
	require.Len(t, doc.Products, 2)
	assert.Equal(t, "p1", doc.Products[0].ID)
	assert.False(t, doc.Products[0].UpdatedAt.Before(before))

	// Coleções de outras categorias ficam intactas
	require.Len(t, doc.Members, 1)
	assert.Equal(t, "m1", doc.Members[0].ID)

	// Apenas filiais diretas participam; a neta não muda
	gdoc, err := env.documents.Find(ctx, grandchild.ID)
	require.NoError(t, err)
	require.Len(t, gdoc.Products, 1)
	assert.Equal(t, "g1", gdoc.Products[0].ID)
}

func TestSyncMembersEmptySourceSkipsBranches(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hq := env.createStore(t, "Matriz", "")
	branch := env.createStore(t, "Filial", hq.ID)

	env.enableFlags(t, hq.ID, settings.UpdateFields{SyncMembers: boolPtr(true)})
	env.saveDocument(t, branch.ID, &document.StoreDocument{
		Members: []document.Member{{ID: "m1", Name: "Cliente Local", Points: 10}},
	})

	svc := NewSyncService(env.stores, env.settings, env.documents, logger.NopLogger{}, 2)
	result, err := svc.SyncMembers(ctx, hq.ID)
	require.NoError(t, err)

	assert.True(t, result.Enabled)
	assert.Equal(t, 0, result.TotalBranches)

	doc, err := env.documents.Find(ctx, branch.ID)
	require.NoError(t, err)
	require.Len(t, doc.Members, 1)
	assert.Equal(t, "m1", doc.Members[0].ID)
}

func TestSyncSuppliersUnknownHeadquarters(t *testing.T) {
	env := newTestEnv()

	svc := NewSyncService(env.stores, env.settings, env.documents, logger.NopLogger{}, 2)
	_, err := svc.SyncSuppliers(context.Background(), "inexistente")
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

// failingDocumentRepository delega para o repositório real, mas falha nas
// gravações da loja configurada
type failingDocumentRepository struct {
	document.Repository
	failStoreID string
}

func (r *failingDocumentRepository) Update(ctx context.Context, storeID string, fn func(doc *document.StoreDocument) error) error {
	if storeID == r.failStoreID {
		return errors.New("gravação indisponível")
	}
	return r.Repository.Update(ctx, storeID, fn)
}

func TestSyncProductsBranchFailureDoesNotStopOthers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	hq := env.createStore(t, "Matriz", "")
	good := env.createStore(t, "Filial Boa", hq.ID)
	bad := env.createStore(t, "Filial Indisponível", hq.ID)

	env.enableFlags(t, hq.ID, settings.UpdateFields{SyncProducts: boolPtr(true)})
	env.saveDocument(t, hq.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "p1", Name: "Arroz 5kg", Price: 25.90, Stock: 100}},
	})

	docs := &failingDocumentRepository{Repository: env.documents, failStoreID: bad.ID}
	svc := NewSyncService(env.stores, env.settings, docs, logger.NopLogger{}, 2)

	result, err := svc.SyncProducts(ctx, hq.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalBranches)
	assert.Equal(t, 1, result.SyncedBranches)
	assert.Equal(t, 1, result.FailedBranches)

	doc, err := env.documents.Find(ctx, good.ID)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "p1", doc.Products[0].ID)
}
