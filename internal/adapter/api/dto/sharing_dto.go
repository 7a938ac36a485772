package dto

import (
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/sharing"
)

// ShareResourceRequest representa a estrutura de dados para compartilhar
// um recurso com outras lojas
type ShareResourceRequest struct {
	ResourceID     string   `json:"resource_id" binding:"required"`
	ResourceType   string   `json:"resource_type" binding:"required"`
	SourceStoreID  string   `json:"source_store_id" binding:"required"`
	TargetStoreIDs []string `json:"target_store_ids" binding:"required"`
}

// SharedTargetResponse representa uma loja com visibilidade sobre o recurso
type SharedTargetResponse struct {
	StoreID   string    `json:"store_id"`
	StoreName string    `json:"store_name"`
	SharedAt  time.Time `json:"shared_at"`
}

// SharedResourceResponse representa a estrutura de resposta para recurso
// compartilhado
type SharedResourceResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Type            string                 `json:"type"`
	SourceStoreID   string                 `json:"source_store_id"`
	SourceStoreName string                 `json:"source_store_name"`
	SharedWith      []SharedTargetResponse `json:"shared_with"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// SharedResourceListResponse representa a resposta de listagem de recursos
// compartilhados
type SharedResourceListResponse struct {
	Resources  []SharedResourceResponse `json:"resources"`
	TotalCount int                      `json:"total_count"`
}

// ToSharedResourceResponse converte um modelo de domínio em uma resposta DTO
func ToSharedResourceResponse(r *sharing.SharedResource) SharedResourceResponse {
	targets := make([]SharedTargetResponse, 0, len(r.SharedWith))
	for _, t := range r.SharedWith {
		targets = append(targets, SharedTargetResponse{
			StoreID:   t.StoreID,
			StoreName: t.StoreName,
			SharedAt:  t.SharedAt,
		})
	}
	return SharedResourceResponse{
		ID:              r.ID,
		Name:            r.Name,
		Type:            string(r.Type),
		SourceStoreID:   r.SourceStoreID,
		SourceStoreName: r.SourceStoreName,
		SharedWith:      targets,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToSharedResourceListResponse converte uma lista de recursos em uma
// resposta DTO
func ToSharedResourceListResponse(resources []*sharing.SharedResource) SharedResourceListResponse {
	responses := make([]SharedResourceResponse, 0, len(resources))
	for _, r := range resources {
		responses = append(responses, ToSharedResourceResponse(r))
	}
	return SharedResourceListResponse{
		Resources:  responses,
		TotalCount: len(responses),
	}
}

// ShareRequestRequest representa a estrutura de dados para solicitar o
// compartilhamento de um recurso de outra loja
type ShareRequestRequest struct {
	ResourceID        string `json:"resource_id" binding:"required"`
	ResourceType      string `json:"resource_type" binding:"required"`
	ResourceName      string `json:"resource_name" binding:"required"`
	RequestingStoreID string `json:"requesting_store_id" binding:"required"`
	TargetStoreID     string `json:"target_store_id" binding:"required"`
}

// ProcessShareRequestRequest representa a decisão sobre uma solicitação
type ProcessShareRequestRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// ShareRequestResponse representa a estrutura de resposta para solicitação
// de compartilhamento
type ShareRequestResponse struct {
	ID                  string    `json:"id"`
	ResourceID          string    `json:"resource_id"`
	ResourceName        string    `json:"resource_name"`
	ResourceType        string    `json:"resource_type"`
	RequestingStoreID   string    `json:"requesting_store_id"`
	RequestingStoreName string    `json:"requesting_store_name"`
	TargetStoreID       string    `json:"target_store_id"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ShareRequestListResponse representa a resposta de listagem de solicitações
type ShareRequestListResponse struct {
	Requests   []ShareRequestResponse `json:"requests"`
	TotalCount int                    `json:"total_count"`
}

// ToShareRequestResponse converte um modelo de domínio em uma resposta DTO
func ToShareRequestResponse(r *sharing.ShareRequest) ShareRequestResponse {
	return ShareRequestResponse{
		ID:                  r.ID,
		ResourceID:          r.ResourceID,
		ResourceName:        r.ResourceName,
		ResourceType:        string(r.ResourceType),
		RequestingStoreID:   r.RequestingStoreID,
		RequestingStoreName: r.RequestingStoreName,
		TargetStoreID:       r.TargetStoreID,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ToShareRequestListResponse converte uma lista de solicitações em uma
// resposta DTO
func ToShareRequestListResponse(requests []*sharing.ShareRequest) ShareRequestListResponse {
	responses := make([]ShareRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToShareRequestResponse(r))
	}
	return ShareRequestListResponse{
		Requests:   responses,
		TotalCount: len(responses),
	}
}
