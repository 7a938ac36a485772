package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/sharing"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

func newSharingService(env *testEnv) *SharingService {
	return NewSharingService(env.sharing, env.stores, env.documents, logger.NopLogger{})
}

func TestShareResourceIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	source := env.createStore(t, "Loja A", "")
	target := env.createStore(t, "Loja B", "")

	env.saveDocument(t, source.ID, &document.StoreDocument{
		Products: []document.Product{{ID: "prod1", Name: "Café 500g", Price: 18.90, Stock: 30}},
	})

	svc := newSharingService(env)

	res, err := svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{target.ID})
	require.NoError(t, err)
	assert.Equal(t, sharing.ResourceID(sharing.TypeProduct, "prod1", source.ID), res.ID)
	assert.Equal(t, "Café 500g", res.Name)
	require.Len(t, res.SharedWith, 1)
	firstSharedAt := res.SharedWith[0].SharedAt

	// Compartilhar de novo com a mesma loja não duplica nem muda shared_at
	res, err = svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{target.ID})
	require.NoError(t, err)
	require.Len(t, res.SharedWith, 1)
	assert.Equal(t, firstSharedAt, res.SharedWith[0].SharedAt)

	all, err := svc.AllSharedResources(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestShareResourceSkipsUnknownAndSelfTargets(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	source := env.createStore(t, "Loja A", "")
	target := env.createStore(t, "Loja B", "")

	svc := newSharingService(env)

	res, err := svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{"fantasma", source.ID, target.ID})
	require.NoError(t, err)
	require.Len(t, res.SharedWith, 1)
	assert.Equal(t, target.ID, res.SharedWith[0].StoreID)

	// Recurso ausente do documento de origem ganha o nome padrão
	assert.Equal(t, "recurso desconhecido", res.Name)
}

func TestShareResourceWithoutValidTargetsIsNotPersisted(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	source := env.createStore(t, "Loja A", "")

	svc := newSharingService(env)

	// Todos os destinos são ignorados (loja inexistente e a própria origem);
	// o registro não pode ser gravado com shared_with vazio
	res, err := svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{"fantasma", source.ID})
	require.NoError(t, err)
	assert.Empty(t, res.SharedWith)

	_, err = env.sharing.FindResourceByID(ctx, res.ID)
	assert.ErrorIs(t, err, sharing.ErrResourceNotFound)

	all, err := svc.AllSharedResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestShareResourceInvalidType(t *testing.T) {
	env := newTestEnv()
	source := env.createStore(t, "Loja A", "")

	svc := newSharingService(env)
	_, err := svc.ShareResource(context.Background(), "prod1", sharing.ResourceType("category"), source.ID, nil)
	assert.ErrorIs(t, err, sharing.ErrInvalidResourceType)
}

func TestShareResourceUnknownSource(t *testing.T) {
	env := newTestEnv()

	svc := newSharingService(env)
	_, err := svc.ShareResource(context.Background(), "prod1", sharing.TypeProduct, "inexistente", nil)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestStopSharingRemovesRecordWhenLastTargetLeaves(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	source := env.createStore(t, "Loja A", "")
	b := env.createStore(t, "Loja B", "")
	c := env.createStore(t, "Loja C", "")

	svc := newSharingService(env)

	res, err := svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{b.ID, c.ID})
	require.NoError(t, err)
	require.Len(t, res.SharedWith, 2)

	require.NoError(t, svc.StopSharingResource(ctx, res.ID, source.ID, b.ID))

	kept, err := env.sharing.FindResourceByID(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, kept.SharedWith, 1)
	assert.Equal(t, c.ID, kept.SharedWith[0].StoreID)

	// Remover a última loja exclui o registro inteiro
	require.NoError(t, svc.StopSharingResource(ctx, res.ID, source.ID, c.ID))
	_, err = env.sharing.FindResourceByID(ctx, res.ID)
	assert.ErrorIs(t, err, sharing.ErrResourceNotFound)
}

func TestStopSharingChecksSourceStore(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	source := env.createStore(t, "Loja A", "")
	b := env.createStore(t, "Loja B", "")

	svc := newSharingService(env)
	res, err := svc.ShareResource(ctx, "prod1", sharing.TypeProduct, source.ID, []string{b.ID})
	require.NoError(t, err)

	err = svc.StopSharingResource(ctx, res.ID, b.ID, b.ID)
	assert.ErrorIs(t, err, sharing.ErrResourceNotFound)

	err = svc.StopSharingResource(ctx, res.ID, source.ID, "fantasma")
	assert.ErrorIs(t, err, sharing.ErrTargetNotShared)
}

func TestProcessShareRequestApproval(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	requester := env.createStore(t, "Loja Solicitante", "")
	target := env.createStore(t, "Loja Alvo", "")

	env.saveDocument(t, target.ID, &document.StoreDocument{
		Suppliers: []document.Supplier{{ID: "sup1", Name: "Distribuidora Sul"}},
	})

	svc := newSharingService(env)

	req, err := svc.CreateShareRequest(ctx, "sup1", sharing.TypeSupplier, "Distribuidora Sul", requester.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, sharing.RequestPending, req.Status)

	resolved, err := svc.ProcessShareRequest(ctx, req.ID, sharing.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, sharing.RequestApproved, resolved.Status)

	// A aprovação faz a loja alvo compartilhar o recurso com a solicitante
	visible, err := svc.SharedResourcesForStore(ctx, requester.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, target.ID, visible[0].SourceStoreID)
	assert.Equal(t, "Distribuidora Sul", visible[0].Name)

	// Solicitação resolvida não pode ser reprocessada
	_, err = svc.ProcessShareRequest(ctx, req.ID, sharing.RequestRejected)
	assert.ErrorIs(t, err, sharing.ErrRequestAlreadyResolved)
}

func TestProcessShareRequestRejection(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	requester := env.createStore(t, "Loja Solicitante", "")
	target := env.createStore(t, "Loja Alvo", "")

	svc := newSharingService(env)

	req, err := svc.CreateShareRequest(ctx, "prod1", sharing.TypeProduct, "Café 500g", requester.ID, target.ID)
	require.NoError(t, err)

	resolved, err := svc.ProcessShareRequest(ctx, req.ID, sharing.RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, sharing.RequestRejected, resolved.Status)

	visible, err := svc.SharedResourcesForStore(ctx, requester.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestProcessShareRequestInvalidDecision(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	requester := env.createStore(t, "Loja Solicitante", "")
	target := env.createStore(t, "Loja Alvo", "")

	svc := newSharingService(env)
	req, err := svc.CreateShareRequest(ctx, "prod1", sharing.TypeProduct, "Café 500g", requester.ID, target.ID)
	require.NoError(t, err)

	_, err = svc.ProcessShareRequest(ctx, req.ID, sharing.RequestPending)
	assert.ErrorIs(t, err, sharing.ErrInvalidDecision)

	// Decisão inválida não muda o estado da solicitação
	kept, err := env.sharing.FindRequestByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, sharing.RequestPending, kept.Status)
}

func TestCreateShareRequestUnknownStores(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	requester := env.createStore(t, "Loja Solicitante", "")

	svc := newSharingService(env)

	_, err := svc.CreateShareRequest(ctx, "prod1", sharing.TypeProduct, "Café 500g", "fantasma", requester.ID)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)

	_, err = svc.CreateShareRequest(ctx, "prod1", sharing.TypeProduct, "Café 500g", requester.ID, "fantasma")
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestShareRequestsForStoreIncludesBothSides(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	a := env.createStore(t, "Loja A", "")
	b := env.createStore(t, "Loja B", "")
	c := env.createStore(t, "Loja C", "")

	svc := newSharingService(env)

	_, err := svc.CreateShareRequest(ctx, "prod1", sharing.TypeProduct, "Café 500g", a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.CreateShareRequest(ctx, "prod2", sharing.TypeProduct, "Açúcar 1kg", c.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.CreateShareRequest(ctx, "prod3", sharing.TypeProduct, "Sal 1kg", b.ID, c.ID)
	require.NoError(t, err)

	reqs, err := svc.ShareRequestsForStore(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 2)
}
