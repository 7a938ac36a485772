package order

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound          = errors.New("pedido entre lojas não encontrado")
	ErrInvalidTransition = errors.New("transição de status inválida")
	ErrInvalidStatus     = errors.New("status de pedido inválido")
)

// Status representa o estado de um pedido entre lojas
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid verifica se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions define a máquina de estados dos pedidos entre lojas:
// pending → processing → completed, ou pending → cancelled.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted},
}

// CanTransitionTo verifica se a transição de status é permitida
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CrossStoreOrder vincula uma venda existente a um atendimento entre duas
// lojas, rastreado de forma independente do registro da venda
type CrossStoreOrder struct {
	ID            string    `json:"id"`
	SourceStoreID string    `json:"source_store_id"`
	TargetStoreID string    `json:"target_store_id"`
	OrderID       string    `json:"order_id"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCrossStoreOrder cria um novo pedido entre lojas no estado pendente
func NewCrossStoreOrder(sourceStoreID, targetStoreID, orderID string) *CrossStoreOrder {
	now := time.Now()
	return &CrossStoreOrder{
		ID:            fmt.Sprintf("cso_%d", now.UnixMilli()),
		SourceStoreID: sourceStoreID,
		TargetStoreID: targetStoreID,
		OrderID:       orderID,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateStatus aplica a transição de status, rejeitando transições fora da
// máquina de estados
func (o *CrossStoreOrder) UpdateStatus(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if !o.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}
