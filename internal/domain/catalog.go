package domain

import "github.com/shopspring/decimal"

// ServiceCatalogEntry услуга каталога
type ServiceCatalogEntry struct {
	Name  string
	Price decimal.Decimal
}

// PriceSnapshot соответствие "название услуги -> цена" на момент чтения каталога
type PriceSnapshot map[string]decimal.Decimal

// NewPriceSnapshot строит снимок цен из записей каталога
func NewPriceSnapshot(entries []ServiceCatalogEntry) PriceSnapshot {
	snapshot := make(PriceSnapshot, len(entries))
	for _, e := range entries {
		snapshot[e.Name] = e.Price
	}
	return snapshot
}

// Price возвращает цену услуги. Неизвестная услуга стоит 0: переименованная
// или удаленная из каталога позиция не ломает расчет, а обнуляет свой вклад.
func (p PriceSnapshot) Price(serviceName string) decimal.Decimal {
	price, ok := p[serviceName]
	if !ok {
		return decimal.Zero
	}
	return price
}

// Has returns true if the service is present in the snapshot
func (p PriceSnapshot) Has(serviceName string) bool {
	_, ok := p[serviceName]
	return ok
}
