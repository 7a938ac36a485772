package service

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/sharing"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

// unknownResourceName é usado quando o recurso não é localizado no
// documento da loja de origem (não é fatal)
const unknownResourceName = "recurso desconhecido"

// SharingService é o motor de compartilhamento de recursos entre lojas.
// Independe da hierarquia; o diretório de lojas é consultado apenas para
// resolver nomes de exibição.
type SharingService struct {
	sharing   sharing.Repository
	stores    store.Repository
	documents document.Repository
	logger    logger.Logger
}

// NewSharingService cria uma nova instância de SharingService
func NewSharingService(repo sharing.Repository, stores store.Repository, docs document.Repository, log logger.Logger) *SharingService {
	return &SharingService{
		sharing:   repo,
		stores:    stores,
		documents: docs,
		logger:    log,
	}
}

// ShareResource expõe um recurso da loja de origem para as lojas de
// destino. A operação é idempotente: a chave do registro é determinística
// por (tipo, recurso, origem) e destinos repetidos não geram duplicatas.
// Destinos que não resolvem para uma loja existente são ignorados.
func (s *SharingService) ShareResource(ctx context.Context, resourceID string, resourceType sharing.ResourceType, sourceStoreID string, targetStoreIDs []string) (*sharing.SharedResource, error) {
	if !resourceType.Valid() {
		return nil, sharing.ErrInvalidResourceType
	}

	source, err := s.stores.FindByID(ctx, sourceStoreID)
	if err != nil {
		return nil, err
	}

	id := sharing.ResourceID(resourceType, resourceID, sourceStoreID)

	created := false
	res, err := s.sharing.FindResourceByID(ctx, id)
	if err != nil {
		if !errors.Is(err, sharing.ErrResourceNotFound) {
			return nil, err
		}
		created = true
		now := time.Now()
		res = &sharing.SharedResource{
			ID:              id,
			Name:            s.resolveResourceName(ctx, resourceType, resourceID, sourceStoreID),
			Type:            resourceType,
			SourceStoreID:   source.ID,
			SourceStoreName: source.Name,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	for _, targetID := range targetStoreIDs {
		if targetID == sourceStoreID {
			continue
		}
		target, err := s.stores.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, store.ErrStoreNotFound) {
				s.logger.Warn("loja de destino não encontrada, ignorando", "target", targetID)
				continue
			}
			return nil, err
		}
		res.AddTarget(target.ID, target.Name)
	}

	// Registros novos em que todos os destinos foram ignorados não são
	// persistidos; nunca existem registros com shared_with vazio
	if created && len(res.SharedWith) == 0 {
		return res, nil
	}

	if err := s.sharing.SaveResource(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// StopSharingResource remove a visibilidade de uma loja sobre um recurso.
// Quando a última loja é removida, o registro inteiro é excluído; nunca
// persistem registros com shared_with vazio.
func (s *SharingService) StopSharingResource(ctx context.Context, fullResourceID, sourceStoreID, targetStoreID string) error {
	res, err := s.sharing.FindResourceByID(ctx, fullResourceID)
	if err != nil {
		return err
	}
	if res.SourceStoreID != sourceStoreID {
		return sharing.ErrResourceNotFound
	}

	if err := res.RemoveTarget(targetStoreID); err != nil {
		return err
	}

	if len(res.SharedWith) == 0 {
		return s.sharing.DeleteResource(ctx, res.ID)
	}
	return s.sharing.SaveResource(ctx, res)
}

// AllSharedResources retorna todos os registros de compartilhamento
func (s *SharingService) AllSharedResources(ctx context.Context) ([]*sharing.SharedResource, error) {
	return s.sharing.FindAllResources(ctx)
}

// SharedResourcesForStore retorna os recursos visíveis para a loja
func (s *SharingService) SharedResourcesForStore(ctx context.Context, storeID string) ([]*sharing.SharedResource, error) {
	return s.sharing.FindResourcesForStore(ctx, storeID)
}

// CreateShareRequest registra o pedido de uma loja para que outra
// compartilhe um recurso. Pedidos pendentes duplicados para a mesma tripla
// são permitidos.
func (s *SharingService) CreateShareRequest(ctx context.Context, resourceID string, resourceType sharing.ResourceType, resourceName, requestingStoreID, targetStoreID string) (*sharing.ShareRequest, error) {
	requester, err := s.stores.FindByID(ctx, requestingStoreID)
	if err != nil {
		return nil, err
	}
	if _, err := s.stores.FindByID(ctx, targetStoreID); err != nil {
		return nil, err
	}

	req, err := sharing.NewShareRequest(resourceID, resourceType, resourceName, requester.ID, requester.Name, targetStoreID)
	if err != nil {
		return nil, err
	}

	if err := s.sharing.SaveRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ProcessShareRequest resolve uma solicitação pendente. A aprovação faz a
// loja alvo compartilhar o recurso de volta com a solicitante; a rejeição
// apenas muda o status. A mudança de status só é persistida se o efeito
// colateral da aprovação for aplicado com sucesso.
func (s *SharingService) ProcessShareRequest(ctx context.Context, requestID string, decision sharing.RequestStatus) (*sharing.ShareRequest, error) {
	req, err := s.sharing.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := req.Resolve(decision); err != nil {
		return nil, err
	}

	if decision == sharing.RequestApproved {
		if _, err := s.ShareResource(ctx, req.ResourceID, req.ResourceType, req.TargetStoreID, []string{req.RequestingStoreID}); err != nil {
			return nil, err
		}
	}

	if err := s.sharing.SaveRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AllShareRequests retorna todas as solicitações de compartilhamento
func (s *SharingService) AllShareRequests(ctx context.Context) ([]*sharing.ShareRequest, error) {
	return s.sharing.FindAllRequests(ctx)
}

// ShareRequestsForStore retorna as solicitações em que a loja participa
// como solicitante ou alvo
func (s *SharingService) ShareRequestsForStore(ctx context.Context, storeID string) ([]*sharing.ShareRequest, error) {
	return s.sharing.FindRequestsForStore(ctx, storeID)
}

// resolveResourceName busca o nome de exibição do recurso no documento da
// loja de origem
func (s *SharingService) resolveResourceName(ctx context.Context, resourceType sharing.ResourceType, resourceID, sourceStoreID string) string {
	doc, err := s.documents.Find(ctx, sourceStoreID)
	if err != nil {
		s.logger.Warn("falha ao carregar documento da loja de origem", "store", sourceStoreID, "error", err)
		return unknownResourceName
	}

	switch resourceType {
	case sharing.TypeProduct:
		for _, p := range doc.Products {
			if p.ID == resourceID {
				return p.Name
			}
		}
	case sharing.TypeMember:
		for _, m := range doc.Members {
			if m.ID == resourceID {
				return m.Name
			}
		}
	case sharing.TypeSupplier:
		for _, sp := range doc.Suppliers {
			if sp.ID == resourceID {
				return sp.Name
			}
		}
	}
	return unknownResourceName
}
