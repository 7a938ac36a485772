package repository

import (
	"context"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// KVSettingsRepository implementa a interface settings.Repository sobre o
// armazenamento de documentos, usando a chave headquarters_branch_settings
// (um mapa de matriz para configurações)
type KVSettingsRepository struct {
	kv    kvstore.Store
	locks *keylock.KeyLock
}

// NewKVSettingsRepository cria uma nova instância de KVSettingsRepository
func NewKVSettingsRepository(kv kvstore.Store, locks *keylock.KeyLock) *KVSettingsRepository {
	return &KVSettingsRepository{
		kv:    kv,
		locks: locks,
	}
}

// loadAll lê o mapa completo de configurações
func (r *KVSettingsRepository) loadAll(ctx context.Context) (map[string]*settings.Settings, error) {
	all := make(map[string]*settings.Settings)
	if _, err := getJSON(ctx, r.kv, keyBranchSettings, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// FindByHeadquarters implementa settings.Repository.FindByHeadquarters.
// Quando a matriz ainda não tem registro, o registro padrão é criado e
// persistido na primeira leitura.
func (r *KVSettingsRepository) FindByHeadquarters(ctx context.Context, headquartersID string) (*settings.Settings, error) {
	r.locks.Lock(keyBranchSettings)
	defer r.locks.Unlock(keyBranchSettings)

	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if s, ok := all[headquartersID]; ok {
		return s, nil
	}

	s := settings.NewSettings(headquartersID)
	all[headquartersID] = s
	if err := setJSON(ctx, r.kv, keyBranchSettings, all); err != nil {
		return nil, err
	}
	return s, nil
}

// Update implementa settings.Repository.Update. Apenas os campos informados
// são aplicados; o registro padrão é criado quando ainda não existe.
func (r *KVSettingsRepository) Update(ctx context.Context, headquartersID string, fields settings.UpdateFields) (*settings.Settings, error) {
	r.locks.Lock(keyBranchSettings)
	defer r.locks.Unlock(keyBranchSettings)

	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	s, ok := all[headquartersID]
	if !ok {
		s = settings.NewSettings(headquartersID)
		all[headquartersID] = s
	}

	s.Apply(fields)
	if err := setJSON(ctx, r.kv, keyBranchSettings, all); err != nil {
		return nil, err
	}
	return s, nil
}
