package dto

import (
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
)

// StoreRequest representa a estrutura de dados para criação de loja
type StoreRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Manager  string `json:"manager"`
	ParentID string `json:"parent_id"`
}

// StoreResponse representa a estrutura de resposta para loja
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Manager   string    `json:"manager"`
	Level     int       `json:"level"`
	ParentID  string    `json:"parent_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse representa a resposta de listagem de lojas
type StoreListResponse struct {
	Stores     []StoreResponse `json:"stores"`
	TotalCount int             `json:"total_count"`
}

// ToStoreResponse converte um modelo de domínio em uma resposta DTO
func ToStoreResponse(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		Address:   s.Address,
		Phone:     s.Phone,
		Manager:   s.Manager,
		Level:     s.Level,
		ParentID:  s.ParentID,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStoreListResponse converte uma lista de lojas em uma resposta DTO
func ToStoreListResponse(stores []*store.Store) StoreListResponse {
	responses := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		responses = append(responses, ToStoreResponse(s))
	}
	return StoreListResponse{
		Stores:     responses,
		TotalCount: len(responses),
	}
}
