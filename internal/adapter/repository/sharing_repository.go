package repository

import (
	"context"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/sharing"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// KVSharingRepository implementa a interface sharing.Repository sobre o
// armazenamento de documentos, usando as chaves shared_resources e
// resource_share_requests
type KVSharingRepository struct {
	kv    kvstore.Store
	locks *keylock.KeyLock
}

// NewKVSharingRepository cria uma nova instância de KVSharingRepository
func NewKVSharingRepository(kv kvstore.Store, locks *keylock.KeyLock) *KVSharingRepository {
	return &KVSharingRepository{
		kv:    kv,
		locks: locks,
	}
}

// loadResources lê todos os registros de compartilhamento
func (r *KVSharingRepository) loadResources(ctx context.Context) ([]*sharing.SharedResource, error) {
	var resources []*sharing.SharedResource
	if _, err := getJSON(ctx, r.kv, keySharedResources, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// SaveResource implementa sharing.Repository.SaveResource. Registros com o
// mesmo ID são substituídos (upsert pela chave determinística).
func (r *KVSharingRepository) SaveResource(ctx context.Context, res *sharing.SharedResource) error {
	r.locks.Lock(keySharedResources)
	defer r.locks.Unlock(keySharedResources)

	resources, err := r.loadResources(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range resources {
		if existing.ID == res.ID {
			resources[i] = res
			replaced = true
			break
		}
	}
	if !replaced {
		resources = append(resources, res)
	}

	return setJSON(ctx, r.kv, keySharedResources, resources)
}

// FindResourceByID implementa sharing.Repository.FindResourceByID
func (r *KVSharingRepository) FindResourceByID(ctx context.Context, id string) (*sharing.SharedResource, error) {
	resources, err := r.loadResources(ctx)
	if err != nil {
		return nil, err
	}

	for _, res := range resources {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, sharing.ErrResourceNotFound
}

// FindAllResources implementa sharing.Repository.FindAllResources
func (r *KVSharingRepository) FindAllResources(ctx context.Context) ([]*sharing.SharedResource, error) {
	return r.loadResources(ctx)
}

// FindResourcesForStore implementa sharing.Repository.FindResourcesForStore.
// Retorna os recursos visíveis para a loja, não os recursos que ela expõe.
func (r *KVSharingRepository) FindResourcesForStore(ctx context.Context, storeID string) ([]*sharing.SharedResource, error) {
	resources, err := r.loadResources(ctx)
	if err != nil {
		return nil, err
	}

	var visible []*sharing.SharedResource
	for _, res := range resources {
		if res.HasTarget(storeID) {
			visible = append(visible, res)
		}
	}
	return visible, nil
}

// DeleteResource implementa sharing.Repository.DeleteResource
func (r *KVSharingRepository) DeleteResource(ctx context.Context, id string) error {
	r.locks.Lock(keySharedResources)
	defer r.locks.Unlock(keySharedResources)

	resources, err := r.loadResources(ctx)
	if err != nil {
		return err
	}

	for i, res := range resources {
		if res.ID == id {
			resources = append(resources[:i], resources[i+1:]...)
			return setJSON(ctx, r.kv, keySharedResources, resources)
		}
	}
	return sharing.ErrResourceNotFound
}

// loadRequests lê todas as solicitações de compartilhamento
func (r *KVSharingRepository) loadRequests(ctx context.Context) ([]*sharing.ShareRequest, error) {
	var requests []*sharing.ShareRequest
	if _, err := getJSON(ctx, r.kv, keyShareRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SaveRequest implementa sharing.Repository.SaveRequest
func (r *KVSharingRepository) SaveRequest(ctx context.Context, req *sharing.ShareRequest) error {
	r.locks.Lock(keyShareRequests)
	defer r.locks.Unlock(keyShareRequests)

	requests, err := r.loadRequests(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range requests {
		if existing.ID == req.ID {
			requests[i] = req
			replaced = true
			break
		}
	}
	if !replaced {
		requests = append(requests, req)
	}

	return setJSON(ctx, r.kv, keyShareRequests, requests)
}

// FindRequestByID implementa sharing.Repository.FindRequestByID
func (r *KVSharingRepository) FindRequestByID(ctx context.Context, id string) (*sharing.ShareRequest, error) {
	requests, err := r.loadRequests(ctx)
	if err != nil {
		return nil, err
	}

	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, sharing.ErrRequestNotFound
}

// FindAllRequests implementa sharing.Repository.FindAllRequests
func (r *KVSharingRepository) FindAllRequests(ctx context.Context) ([]*sharing.ShareRequest, error) {
	return r.loadRequests(ctx)
}

// FindRequestsForStore implementa sharing.Repository.FindRequestsForStore
func (r *KVSharingRepository) FindRequestsForStore(ctx context.Context, storeID string) ([]*sharing.ShareRequest, error) {
	requests, err := r.loadRequests(ctx)
	if err != nil {
		return nil, err
	}

	var related []*sharing.ShareRequest
	for _, req := range requests {
		if req.RequestingStoreID == storeID || req.TargetStoreID == storeID {
			related = append(related, req)
		}
	}
	return related, nil
}
