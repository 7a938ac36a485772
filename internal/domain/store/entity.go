package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID        = errors.New("id não pode ser vazio")
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrStoreNotFound  = errors.New("loja não encontrada")
	ErrParentNotFound = errors.New("loja matriz informada não existe")
	ErrHasChildren    = errors.New("loja possui filiais vinculadas")
)

// Store representa uma loja da rede. O nível 0 indica a matriz; níveis
// maiores que zero indicam a profundidade da filial na hierarquia.
type Store struct {
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

// NewStore cria uma nova loja. O nível é derivado da loja pai no momento
// da persistência; aqui a loja nasce ativa e com identificador próprio.
func NewStore(name, code, address, phone, manager, parentID string) (*Store, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Store{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      code,
		Address:   address,
		Phone:     phone,
		Manager:   manager,
		ParentID:  parentID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsHeadquarters verifica se a loja é a matriz de uma subárvore
func (s *Store) IsHeadquarters() bool {
	return s.Level == 0
}
