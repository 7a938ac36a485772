package sharing

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound       = errors.New("recurso compartilhado não encontrado")
	ErrRequestNotFound        = errors.New("solicitação de compartilhamento não encontrada")
	ErrRequestAlreadyResolved = errors.New("solicitação de compartilhamento já foi resolvida")
	ErrInvalidResourceType    = errors.New("tipo de recurso inválido")
	ErrInvalidDecision        = errors.New("decisão inválida para a solicitação")
	ErrTargetNotShared        = errors.New("loja informada não consta no compartilhamento")
)

// ResourceType representa o tipo de recurso compartilhável
type ResourceType string

const (
	TypeProduct  ResourceType = "product"
	TypeMember   ResourceType = "member"
	TypeSupplier ResourceType = "supplier"
)

// Valid verifica se o tipo de recurso é conhecido
func (t ResourceType) Valid() bool {
	switch t {
	case TypeProduct, TypeMember, TypeSupplier:
		return true
	}
	return false
}

// ResourceID monta a chave determinística de um compartilhamento. Garante
// no máximo um registro por (tipo, recurso, loja de origem).
func ResourceID(resourceType ResourceType, resourceID, sourceStoreID string) string {
	return fmt.Sprintf("%s_%s_%s", resourceType, resourceID, sourceStoreID)
}

// SharedTarget representa uma loja com visibilidade sobre o recurso
type SharedTarget struct {
	StoreID   string    `json:"store_id"`
	StoreName string    `json:"store_name"`
	SharedAt  time.Time `json:"shared_at"`
}

// SharedResource representa um recurso que uma loja expôs para outras.
// O campo shared_with tem semântica de conjunto, chaveado por store_id, e
// nunca contém a própria loja de origem.
type SharedResource struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            ResourceType   `json:"type"`
	SourceStoreID   string         `json:"source_store_id"`
	SourceStoreName string         `json:"source_store_name"`
	SharedWith      []SharedTarget `json:"shared_with"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// HasTarget verifica se a loja já consta no compartilhamento
func (r *SharedResource) HasTarget(storeID string) bool {
	for _, t := range r.SharedWith {
		if t.StoreID == storeID {
			return true
		}
	}
	return false
}

// AddTarget inclui a loja no compartilhamento. Lojas já presentes são
// ignoradas, preservando o shared_at original.
func (r *SharedResource) AddTarget(storeID, storeName string) {
	if storeID == r.SourceStoreID || r.HasTarget(storeID) {
		return
	}
	r.SharedWith = append(r.SharedWith, SharedTarget{
		StoreID:   storeID,
		StoreName: storeName,
		SharedAt:  time.Now(),
	})
	r.UpdatedAt = time.Now()
}

// RemoveTarget exclui a loja do compartilhamento. Retorna ErrTargetNotShared
// quando a loja não consta no registro.
func (r *SharedResource) RemoveTarget(storeID string) error {
	for i, t := range r.SharedWith {
		if t.StoreID == storeID {
			r.SharedWith = append(r.SharedWith[:i], r.SharedWith[i+1:]...)
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrTargetNotShared
}

// RequestStatus representa o estado de uma solicitação de compartilhamento
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// ShareRequest representa o pedido de uma loja para que outra compartilhe
// um recurso. Nasce pendente e transita exatamente uma vez para approved
// ou rejected.
type ShareRequest struct {
	ID                  string        `json:"id"`
	ResourceID          string        `json:"resource_id"`
	ResourceName        string        `json:"resource_name"`
	ResourceType        ResourceType  `json:"resource_type"`
	RequestingStoreID   string        `json:"requesting_store_id"`
	RequestingStoreName string        `json:"requesting_store_name"`
	TargetStoreID       string        `json:"target_store_id"`
	Status              RequestStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// NewShareRequest cria uma nova solicitação pendente
func NewShareRequest(resourceID string, resourceType ResourceType, resourceName, requestingStoreID, requestingStoreName, targetStoreID string) (*ShareRequest, error) {
	if !resourceType.Valid() {
		return nil, ErrInvalidResourceType
	}

	now := time.Now()
	return &ShareRequest{
		ID:                  uuid.New().String(),
		ResourceID:          resourceID,
		ResourceName:        resourceName,
		ResourceType:        resourceType,
		RequestingStoreID:   requestingStoreID,
		RequestingStoreName: requestingStoreName,
		TargetStoreID:       targetStoreID,
		Status:              RequestPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// Resolve aplica a decisão sobre a solicitação. Solicitações já resolvidas
// não podem ser reprocessadas.
func (r *ShareRequest) Resolve(status RequestStatus) error {
	if status != RequestApproved && status != RequestRejected {
		return ErrInvalidDecision
	}
	if r.Status != RequestPending {
		return ErrRequestAlreadyResolved
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}
