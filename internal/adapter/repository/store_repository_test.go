package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

func newStoreRepo() *KVStoreDirectoryRepository {
	return NewKVStoreDirectoryRepository(kvstore.NewMemoryStore(), keylock.New())
}

func mustCreate(t *testing.T, repo *KVStoreDirectoryRepository, name, parentID string) *store.Store {
	t.Helper()
	s, err := store.NewStore(name, "", "", "", "", parentID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestCreateDerivesLevelFromParent(t *testing.T) {
	repo := newStoreRepo()

	root := mustCreate(t, repo, "Matriz", "")
	child := mustCreate(t, repo, "Filial", root.ID)
	grandchild := mustCreate(t, repo, "Quiosque", child.ID)

	assert.Equal(t, 0, root.Level)
	assert.True(t, root.IsHeadquarters())
	assert.Equal(t, 1, child.Level)
	assert.Equal(t, 2, grandchild.Level)
}

func TestCreateRejectsUnknownParent(t *testing.T) {
	repo := newStoreRepo()

	s, err := store.NewStore("Filial Órfã", "", "", "", "", "inexistente")
	require.NoError(t, err)
	err = repo.Create(context.Background(), s)
	assert.ErrorIs(t, err, store.ErrParentNotFound)
}

func TestFindChildrenReturnsOnlyDirectBranches(t *testing.T) {
	repo := newStoreRepo()
	ctx := context.Background()

	root := mustCreate(t, repo, "Matriz", "")
	child := mustCreate(t, repo, "Filial", root.ID)
	mustCreate(t, repo, "Quiosque", child.ID)

	children, err := repo.FindChildren(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)
}

func TestFindHierarchyWalksToRoot(t *testing.T) {
	repo := newStoreRepo()
	ctx := context.Background()

	root := mustCreate(t, repo, "Matriz", "")
	child := mustCreate(t, repo, "Filial", root.ID)
	grandchild := mustCreate(t, repo, "Quiosque", child.ID)

	path, err := repo.FindHierarchy(ctx, grandchild.ID)
	require.NoError(t, err)

	// O caminho vai da raiz até a própria loja, com nível+1 entradas
	require.Len(t, path, grandchild.Level+1)
	assert.Equal(t, root.ID, path[0].ID)
	assert.Equal(t, child.ID, path[1].ID)
	assert.Equal(t, grandchild.ID, path[2].ID)

	_, err = repo.FindHierarchy(ctx, "inexistente")
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestDeleteRemovesSettingsAndDocument(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	locks := keylock.New()
	repo := NewKVStoreDirectoryRepository(kv, locks)
	settingsRepo := NewKVSettingsRepository(kv, locks)
	documentRepo := NewKVDocumentRepository(kv, locks)
	ctx := context.Background()

	s := mustCreate(t, repo, "Matriz", "")

	yes := true
	original, err := settingsRepo.Update(ctx, s.ID, settings.UpdateFields{SyncProducts: &yes})
	require.NoError(t, err)
	require.NoError(t, documentRepo.Save(ctx, s.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "p1", Name: "Arroz 5kg"}},
	}))

	require.NoError(t, repo.Delete(ctx, s.ID))

	// As configurações somem junto com a loja; uma nova leitura cria um
	// registro padrão do zero
	recreated, err := settingsRepo.FindByHeadquarters(ctx, s.ID)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, recreated.ID)
	assert.False(t, recreated.SyncProducts)

	doc, err := documentRepo.Find(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
}

func TestDeleteRejectsStoreWithBranches(t *testing.T) {
	repo := newStoreRepo()
	ctx := context.Background()

	root := mustCreate(t, repo, "Matriz", "")
	child := mustCreate(t, repo, "Filial", root.ID)

	err := repo.Delete(ctx, root.ID)
	assert.ErrorIs(t, err, store.ErrHasChildren)

	// Removendo a filial primeiro, a matriz pode ser removida
	require.NoError(t, repo.Delete(ctx, child.ID))
	require.NoError(t, repo.Delete(ctx, root.ID))

	_, err = repo.FindByID(ctx, root.ID)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)

	err = repo.Delete(ctx, root.ID)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}
