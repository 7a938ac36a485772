package dto

import (
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
)

// SettingsUpdateRequest representa uma atualização parcial das
// configurações de sincronização. Campos omitidos não são alterados.
type SettingsUpdateRequest struct {
	SyncProducts          *bool `json:"sync_products"`
	SyncMembers           *bool `json:"sync_members"`
	SyncSuppliers         *bool `json:"sync_suppliers"`
	SyncPricing           *bool `json:"sync_pricing"`
	SyncInventory         *bool `json:"sync_inventory"`
	AllowCrossStoreOrders *bool `json:"allow_cross_store_orders"`
}

// ToUpdateFields converte o DTO em campos de atualização do domínio
func (r SettingsUpdateRequest) ToUpdateFields() settings.UpdateFields {
	return settings.UpdateFields{
		SyncProducts:          r.SyncProducts,
		SyncMembers:           r.SyncMembers,
		SyncSuppliers:         r.SyncSuppliers,
		SyncPricing:           r.SyncPricing,
		SyncInventory:         r.SyncInventory,
		AllowCrossStoreOrders: r.AllowCrossStoreOrders,
	}
}

// SettingsResponse representa a estrutura de resposta para configurações
// de sincronização
type SettingsResponse struct {
	ID                    string    `json:"id"`
	HeadquartersID        string    `json:"headquarters_id"`
	SyncProducts          bool      `json:"sync_products"`
	SyncMembers           bool      `json:"sync_members"`
	SyncSuppliers         bool      `json:"sync_suppliers"`
	SyncPricing           bool      `json:"sync_pricing"`
	SyncInventory         bool      `json:"sync_inventory"`
	AllowCrossStoreOrders bool      `json:"allow_cross_store_orders"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToSettingsResponse converte um modelo de domínio em uma resposta DTO
func ToSettingsResponse(s *settings.Settings) SettingsResponse {
	return SettingsResponse{
		ID:                    s.ID,
		HeadquartersID:        s.HeadquartersID,
		SyncProducts:          s.SyncProducts,
		SyncMembers:           s.SyncMembers,
		SyncSuppliers:         s.SyncSuppliers,
		SyncPricing:           s.SyncPricing,
		SyncInventory:         s.SyncInventory,
		AllowCrossStoreOrders: s.AllowCrossStoreOrders,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
