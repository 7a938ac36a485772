package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// KVStoreDirectoryRepository implementa a interface store.Repository sobre o
// armazenamento de documentos, usando a chave store_directory
type KVStoreDirectoryRepository struct {
	kv    kvstore.Store
	locks *keylock.KeyLock
}

// NewKVStoreDirectoryRepository cria uma nova instância de KVStoreDirectoryRepository
func NewKVStoreDirectoryRepository(kv kvstore.Store, locks *keylock.KeyLock) *KVStoreDirectoryRepository {
	return &KVStoreDirectoryRepository{
		kv:    kv,
		locks: locks,
	}
}

// loadDirectory lê o diretório completo de lojas
func (r *KVStoreDirectoryRepository) loadDirectory(ctx context.Context) ([]*store.Store, error) {
	var stores []*store.Store
	if _, err := getJSON(ctx, r.kv, keyStoreDirectory, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// Create implementa store.Repository.Create. O nível da loja é derivado da
// loja pai no momento da gravação.
func (r *KVStoreDirectoryRepository) Create(ctx context.Context, s *store.Store) error {
	if s.ID == "" {
		return store.ErrEmptyID
	}
	if s.Name == "" {
		return store.ErrEmptyName
	}

	r.locks.Lock(keyStoreDirectory)
	defer r.locks.Unlock(keyStoreDirectory)

	stores, err := r.loadDirectory(ctx)
	if err != nil {
		return err
	}

	if s.ParentID == "" {
		s.Level = 0
	} else {
		parent := findStore(stores, s.ParentID)
		if parent == nil {
			return store.ErrParentNotFound
		}
		s.Level = parent.Level + 1
	}

	stores = append(stores, s)
	return setJSON(ctx, r.kv, keyStoreDirectory, stores)
}

// FindByID implementa store.Repository.FindByID
func (r *KVStoreDirectoryRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	stores, err := r.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	s := findStore(stores, id)
	if s == nil {
		return nil, store.ErrStoreNotFound
	}
	return s, nil
}

// FindAll implementa store.Repository.FindAll
func (r *KVStoreDirectoryRepository) FindAll(ctx context.Context) ([]*store.Store, error) {
	return r.loadDirectory(ctx)
}

// FindChildren implementa store.Repository.FindChildren. Retorna apenas as
// filiais diretas, nunca a subárvore completa.
func (r *KVStoreDirectoryRepository) FindChildren(ctx context.Context, parentID string) ([]*store.Store, error) {
	stores, err := r.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	var children []*store.Store
	for _, s := range stores {
		if s.ParentID == parentID {
			children = append(children, s)
		}
	}
	return children, nil
}

// FindHierarchy implementa store.Repository.FindHierarchy. O caminho é
// montado subindo pela cadeia de pais; a raiz fica em primeiro e a loja
// informada em último.
func (r *KVStoreDirectoryRepository) FindHierarchy(ctx context.Context, id string) ([]*store.Store, error) {
	stores, err := r.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	current := findStore(stores, id)
	if current == nil {
		return nil, store.ErrStoreNotFound
	}

	path := []*store.Store{current}
	// O limite pelo total de lojas evita laço infinito em diretórios
	// corrompidos com ciclo de parent_id
	for i := 0; current.ParentID != "" && i < len(stores); i++ {
		parent := findStore(stores, current.ParentID)
		if parent == nil {
			return nil, fmt.Errorf("loja %s referencia matriz inexistente %s: %w", current.ID, current.ParentID, store.ErrParentNotFound)
		}
		path = append([]*store.Store{parent}, path...)
		current = parent
	}

	return path, nil
}

// Delete implementa store.Repository.Delete. Lojas com filiais diretas não
// podem ser removidas; as filiais precisam ser removidas ou reatribuídas
// antes. As configurações de sincronização e o documento de dados da loja
// são removidos junto com ela.
func (r *KVStoreDirectoryRepository) Delete(ctx context.Context, id string) error {
	r.locks.Lock(keyStoreDirectory)
	defer r.locks.Unlock(keyStoreDirectory)

	stores, err := r.loadDirectory(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, s := range stores {
		if s.ID == id {
			index = i
		}
		if s.ParentID == id {
			return store.ErrHasChildren
		}
	}

	if index < 0 {
		return store.ErrStoreNotFound
	}

	stores = append(stores[:index], stores[index+1:]...)
	if err := setJSON(ctx, r.kv, keyStoreDirectory, stores); err != nil {
		return err
	}

	if err := r.deleteSettings(ctx, id); err != nil {
		return err
	}
	return r.deleteDocument(ctx, id)
}

// deleteSettings remove o registro de configurações da loja excluída
func (r *KVStoreDirectoryRepository) deleteSettings(ctx context.Context, id string) error {
	r.locks.Lock(keyBranchSettings)
	defer r.locks.Unlock(keyBranchSettings)

	all := make(map[string]*settings.Settings)
	found, err := getJSON(ctx, r.kv, keyBranchSettings, &all)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if _, ok := all[id]; !ok {
		return nil
	}

	delete(all, id)
	return setJSON(ctx, r.kv, keyBranchSettings, all)
}

// deleteDocument remove o documento de dados da loja excluída
func (r *KVStoreDirectoryRepository) deleteDocument(ctx context.Context, id string) error {
	key := documentKey(id)

	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	if err := r.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("falha ao excluir documento da loja %s: %w", id, err)
	}
	return nil
}

// findStore busca uma loja pelo ID na lista carregada
func findStore(stores []*store.Store, id string) *store.Store {
	for _, s := range stores {
		if s.ID == id {
			return s
		}
	}
	return nil
}
