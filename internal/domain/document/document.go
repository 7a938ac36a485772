package document

import (
	"time"
)

// Product representa um produto do catálogo de uma loja
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	MinStockLevel int       `json:"min_stock_level"`
	MaxStockLevel int       `json:"max_stock_level"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Member representa um cliente fidelizado de uma loja
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Points    int       `json:"points"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Supplier representa um fornecedor cadastrado em uma loja
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem representa um item de uma venda
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order representa uma venda registrada em uma loja
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

// StoreDocument é o documento de dados de uma loja, com as coleções de
// domínio que a loja mantém localmente
type StoreDocument struct {
	Products  []Product  `json:"products"`
	Members   []Member   `json:"members"`
	Suppliers []Supplier `json:"suppliers"`
	Orders    []Order    `json:"orders"`
}
