package service

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

// SyncResult resume o resultado de uma sincronização de categoria
type SyncResult struct {
	Category       string `json:"category"`
	Enabled        bool   `json:"enabled"`
	TotalBranches  int    `json:"total_branches"`
	SyncedBranches int    `json:"synced_branches"`
	FailedBranches int    `json:"failed_branches"`
}

// SyncService é o motor de sincronização da matriz para as filiais diretas.
// A sincronização substitui a coleção inteira da filial pela coleção da
// matriz (não há diff ou merge de registros); edições locais da filial em
// registros sincronizados são sobrescritas na próxima sincronização.
type SyncService struct {
	stores    store.Repository
	settings  settings.Repository
	documents document.Repository
	logger    logger.Logger
	workers   int
}

// NewSyncService cria uma nova instância de SyncService. O número de
// workers limita o paralelismo do fan-out para as filiais.
func NewSyncService(stores store.Repository, cfg settings.Repository, docs document.Repository, log logger.Logger, workers int) *SyncService {
	if workers <= 0 {
		workers = 4
	}
	return &SyncService{
		stores:    stores,
		settings:  cfg,
		documents: docs,
		logger:    log,
		workers:   workers,
	}
}

// SyncProducts sincroniza o catálogo de produtos da matriz para as filiais
// diretas. Com o flag sync_products desabilitado, a operação é um no-op.
func (s *SyncService) SyncProducts(ctx context.Context, headquartersID string) (*SyncResult, error) {
	return s.syncCategory(ctx, headquartersID, "products",
		func(cfg *settings.Settings) bool { return cfg.SyncProducts },
		func(doc *document.StoreDocument) bool { return len(doc.Products) == 0 },
		func(src, dst *document.StoreDocument, now time.Time) {
			products := make([]document.Product, len(src.Products))
			copy(products, src.Products)
			for i := range products {
				products[i].UpdatedAt = now
			}
			dst.Products = products
		},
	)
}

// SyncMembers sincroniza os clientes fidelizados da matriz para as filiais
// diretas. Com o flag sync_members desabilitado, a operação é um no-op.
func (s *SyncService) SyncMembers(ctx context.Context, headquartersID string) (*SyncResult, error) {
	return s.syncCategory(ctx, headquartersID, "members",
		func(cfg *settings.Settings) bool { return cfg.SyncMembers },
		func(doc *document.StoreDocument) bool { return len(doc.Members) == 0 },
		func(src, dst *document.StoreDocument, now time.Time) {
			members := make([]document.Member, len(src.Members))
			copy(members, src.Members)
			for i := range members {
				members[i].UpdatedAt = now
			}
			dst.Members = members
		},
	)
}

// SyncSuppliers sincroniza os fornecedores da matriz para as filiais
// diretas. Com o flag sync_suppliers desabilitado, a operação é um no-op.
func (s *SyncService) SyncSuppliers(ctx context.Context, headquartersID string) (*SyncResult, error) {
	return s.syncCategory(ctx, headquartersID, "suppliers",
		func(cfg *settings.Settings) bool { return cfg.SyncSuppliers },
		func(doc *document.StoreDocument) bool { return len(doc.Suppliers) == 0 },
		func(src, dst *document.StoreDocument, now time.Time) {
			suppliers := make([]document.Supplier, len(src.Suppliers))
			copy(suppliers, src.Suppliers)
			for i := range suppliers {
				suppliers[i].UpdatedAt = now
			}
			dst.Suppliers = suppliers
		},
	)
}

// syncCategory executa o algoritmo comum às três categorias: carrega as
// configurações da matriz, o documento da matriz e as filiais diretas, e
// sobrescreve a coleção de cada filial. Apenas filiais diretas participam;
// níveis mais profundos dependem da filial intermediária executar a própria
// sincronização.
func (s *SyncService) syncCategory(
	ctx context.Context,
	headquartersID string,
	category string,
	enabled func(*settings.Settings) bool,
	empty func(*document.StoreDocument) bool,
	overwrite func(src, dst *document.StoreDocument, now time.Time),
) (*SyncResult, error) {
	result := &SyncResult{Category: category}

	if _, err := s.stores.FindByID(ctx, headquartersID); err != nil {
		return nil, err
	}

	cfg, err := s.settings.FindByHeadquarters(ctx, headquartersID)
	if err != nil {
		return nil, err
	}
	if !enabled(cfg) {
		return result, nil
	}
	result.Enabled = true

	hqDoc, err := s.documents.Find(ctx, headquartersID)
	if err != nil {
		return nil, err
	}
	if empty(hqDoc) {
		return result, nil
	}

	branches, err := s.stores.FindChildren(ctx, headquartersID)
	if err != nil {
		return nil, err
	}
	result.TotalBranches = len(branches)
	if len(branches) == 0 {
		return result, nil
	}

	// Fan-out com paralelismo limitado. Cada gravação de filial é
	// independente: a falha em uma filial é registrada e não impede as
	// demais.
	now := time.Now()
	jobs := make(chan *store.Store)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for branch := range jobs {
				err := s.documents.Update(ctx, branch.ID, func(doc *document.StoreDocument) error {
					overwrite(hqDoc, doc, now)
					return nil
				})

				mu.Lock()
				if err != nil {
					result.FailedBranches++
					s.logger.Error("falha ao sincronizar filial", "category", category, "branch", branch.ID, "error", err)
				} else {
					result.SyncedBranches++
					s.logger.Debug("filial sincronizada", "category", category, "branch", branch.ID)
				}
				mu.Unlock()
			}
		}()
	}

	for _, branch := range branches {
		jobs <- branch
	}
	close(jobs)
	wg.Wait()

	s.logger.Info("sincronização concluída",
		"category", category,
		"headquarters", headquartersID,
		"synced", result.SyncedBranches,
		"failed", result.FailedBranches,
	)
	return result, nil
}
