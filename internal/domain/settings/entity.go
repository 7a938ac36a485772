package settings

import (
	"time"

	"github.com/google/uuid"
)

// Settings representa a configuração de sincronização de uma matriz.
// Existe no máximo um registro por matriz; quando nenhum registro foi
// gravado ainda, a leitura devolve um registro com todos os flags em false.
type Settings struct {
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

// NewSettings cria o registro padrão de uma matriz, com todos os flags
// desabilitados
func NewSettings(headquartersID string) *Settings {
	now := time.Now()
	return &Settings{
		ID:             uuid.New().String(),
		HeadquartersID: headquartersID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateFields representa uma atualização parcial. Campos nil são
// preservados; apenas os campos informados são aplicados.
type UpdateFields struct {
	SyncProducts          *bool `json:"sync_products,omitempty"`
	SyncMembers           *bool `json:"sync_members,omitempty"`
	SyncSuppliers         *bool `json:"sync_suppliers,omitempty"`
	SyncPricing           *bool `json:"sync_pricing,omitempty"`
	SyncInventory         *bool `json:"sync_inventory,omitempty"`
	AllowCrossStoreOrders *bool `json:"allow_cross_store_orders,omitempty"`
}

// Apply aplica a atualização parcial sobre o registro. O ID e a matriz do
// registro nunca mudam; o updated_at é sempre recalculado.
func (s *Settings) Apply(fields UpdateFields) {
	if fields.SyncProducts != nil {
		s.SyncProducts = *fields.SyncProducts
	}
	if fields.SyncMembers != nil {
		s.SyncMembers = *fields.SyncMembers
	}
	if fields.SyncSuppliers != nil {
		s.SyncSuppliers = *fields.SyncSuppliers
	}
	if fields.SyncPricing != nil {
		s.SyncPricing = *fields.SyncPricing
	}
	if fields.SyncInventory != nil {
		s.SyncInventory = *fields.SyncInventory
	}
	if fields.AllowCrossStoreOrders != nil {
		s.AllowCrossStoreOrders = *fields.AllowCrossStoreOrders
	}
	s.UpdatedAt = time.Now()
}
