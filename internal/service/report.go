package service

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/document"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
)

// dateLayout é o formato dos buckets diários dos relatórios
const dateLayout = "2006-01-02"

// DailySales representa as vendas de uma loja em um dia
type DailySales struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	ItemsSold int     `json:"items_sold"`
}

// StoreSalesReport representa o relatório de vendas de uma loja no período
type StoreSalesReport struct {
	StoreID     string       `json:"store_id"`
	StoreName   string       `json:"store_name"`
	Daily       []DailySales `json:"daily"`
	TotalSales  float64      `json:"total_sales"`
	TotalOrders int          `json:"total_orders"`
	TotalItems  int          `json:"total_items"`
}

// InventoryStatus classifica o nível de estoque de um produto
type InventoryStatus string

const (
	InventoryOut    InventoryStatus = "out"
	InventoryLow    InventoryStatus = "low"
	InventoryOver   InventoryStatus = "over"
	InventoryNormal InventoryStatus = "normal"
)

// InventoryItem representa a situação de estoque de um produto
type InventoryItem struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Stock         int             `json:"stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	Status        InventoryStatus `json:"status"`
}

// StoreInventoryReport representa o relatório de estoque de uma loja
type StoreInventoryReport struct {
	StoreID   string          `json:"store_id"`
	StoreName string          `json:"store_name"`
	Items     []InventoryItem `json:"items"`
	OutCount  int             `json:"out_count"`
	LowCount  int             `json:"low_count"`
	OverCount int             `json:"over_count"`
}

// StoreSalesBreakdown representa a contribuição de uma loja em um dia do
// relatório agregado
type StoreSalesBreakdown struct {
	StoreID   string  `json:"store_id"`
	StoreName string  `json:"store_name"`
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	ItemsSold int     `json:"items_sold"`
}

// AggregatedSalesReport representa as vendas consolidadas da rede em um
// dia. Os totais são sempre a soma das contribuições por loja.
type AggregatedSalesReport struct {
	Date           string                `json:"date"`
	TotalSales     float64               `json:"total_sales"`
	TotalOrders    int                   `json:"total_orders"`
	TotalItemsSold int                   `json:"total_items_sold"`
	StoreBreakdown []StoreSalesBreakdown `json:"store_breakdown"`
}

// ProductRanking representa a posição de um produto no ranking de vendas
// consolidado da rede
type ProductRanking struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// ReportService é o motor de relatórios entre lojas. As leituras são
// snapshots sem lock: o documento de uma loja pode mudar entre a leitura
// de uma loja e a da seguinte (consistência eventual, aceitável porque a
// agregação é informativa).
type ReportService struct {
	stores    store.Repository
	documents document.Repository
}

// NewReportService cria uma nova instância de ReportService
func NewReportService(stores store.Repository, docs document.Repository) *ReportService {
	return &ReportService{
		stores:    stores,
		documents: docs,
	}
}

// AllStoreSalesData calcula o relatório de vendas por loja no período
// [start, end], inclusivo nas duas pontas, com bucket por dia civil
func (s *ReportService) AllStoreSalesData(ctx context.Context, start, end time.Time) ([]*StoreSalesReport, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var reports []*StoreSalesReport
	for _, st := range stores {
		doc, err := s.documents.Find(ctx, st.ID)
		if err != nil {
			return nil, err
		}

		report := &StoreSalesReport{StoreID: st.ID, StoreName: st.Name}
		daily := make(map[string]*DailySales)

		for _, o := range doc.Orders {
			if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
				continue
			}

			date := o.CreatedAt.Format(dateLayout)
			bucket, ok := daily[date]
			if !ok {
				bucket = &DailySales{Date: date}
				daily[date] = bucket
			}

			items := 0
			for _, item := range o.Items {
				items += item.Quantity
			}

			bucket.Sales += o.Total
			bucket.Orders++
			bucket.ItemsSold += items

			report.TotalSales += o.Total
			report.TotalOrders++
			report.TotalItems += items
		}

		for _, bucket := range daily {
			report.Daily = append(report.Daily, *bucket)
		}
		sort.Slice(report.Daily, func(i, j int) bool {
			return report.Daily[i].Date < report.Daily[j].Date
		})

		reports = append(reports, report)
	}

	return reports, nil
}

// AllStoreInventoryData classifica o estoque de cada produto de cada loja:
// out quando zerado, low quando no nível mínimo ou abaixo, over quando
// acima do máximo, normal nos demais casos
func (s *ReportService) AllStoreInventoryData(ctx context.Context) ([]*StoreInventoryReport, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var reports []*StoreInventoryReport
	for _, st := range stores {
		doc, err := s.documents.Find(ctx, st.ID)
		if err != nil {
			return nil, err
		}

		report := &StoreInventoryReport{StoreID: st.ID, StoreName: st.Name}
		for _, p := range doc.Products {
			status := InventoryNormal
			switch {
			case p.Stock == 0:
				status = InventoryOut
				report.OutCount++
			case p.Stock <= p.MinStockLevel:
				status = InventoryLow
				report.LowCount++
			case p.Stock > p.MaxStockLevel:
				status = InventoryOver
				report.OverCount++
			}

			report.Items = append(report.Items, InventoryItem{
				ProductID:     p.ID,
				ProductName:   p.Name,
				Stock:         p.Stock,
				MinStockLevel: p.MinStockLevel,
				MaxStockLevel: p.MaxStockLevel,
				Status:        status,
			})
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// AggregatedSalesReport consolida as vendas da rede por dia. Dias sem
// movimento em uma loja simplesmente não aparecem na contribuição daquela
// loja (não há entradas zeradas).
func (s *ReportService) AggregatedSalesReport(ctx context.Context, start, end time.Time) ([]*AggregatedSalesReport, error) {
	perStore, err := s.AllStoreSalesData(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*AggregatedSalesReport)
	var dates []string

	for _, report := range perStore {
		for _, day := range report.Daily {
			agg, ok := byDate[day.Date]
			if !ok {
				agg = &AggregatedSalesReport{Date: day.Date}
				byDate[day.Date] = agg
				dates = append(dates, day.Date)
			}

			agg.TotalSales += day.Sales
			agg.TotalOrders += day.Orders
			agg.TotalItemsSold += day.ItemsSold
			agg.StoreBreakdown = append(agg.StoreBreakdown, StoreSalesBreakdown{
				StoreID:   report.StoreID,
				StoreName: report.StoreName,
				Sales:     day.Sales,
				Orders:    day.Orders,
				ItemsSold: day.ItemsSold,
			})
		}
	}

	sort.Strings(dates)
	reports := make([]*AggregatedSalesReport, 0, len(dates))
	for _, date := range dates {
		reports = append(reports, byDate[date])
	}
	return reports, nil
}

// CrossStoreProductRanking consolida o ranking de produtos da rede,
// somando quantidade e receita por produto entre as lojas. A ordenação é
// estável: empates preservam a ordem de iteração das lojas.
func (s *ReportService) CrossStoreProductRanking(ctx context.Context) ([]*ProductRanking, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*ProductRanking)
	var ranking []*ProductRanking

	for _, st := range stores {
		doc, err := s.documents.Find(ctx, st.ID)
		if err != nil {
			return nil, err
		}

		for _, o := range doc.Orders {
			for _, item := range o.Items {
				entry, ok := byProduct[item.ProductID]
				if !ok {
					entry = &ProductRanking{
						ProductID:   item.ProductID,
						ProductName: item.ProductName,
					}
					byProduct[item.ProductID] = entry
					ranking = append(ranking, entry)
				}
				entry.QuantitySold += item.Quantity
				entry.TotalRevenue += float64(item.Quantity) * item.Price
			}
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})
	return ranking, nil
}
