package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func prices(kv map[string]string) PriceSnapshot {
	entries := make([]ServiceCatalogEntry, 0, len(kv))
	for name, price := range kv {
		entries = append(entries, ServiceCatalogEntry{Name: name, Price: decimal.RequireFromString(price)})
	}
	return NewPriceSnapshot(entries)
}

func TestAggregate_WashAndWax(t *testing.T) {
	reservations := []*Reservation{
		{ID: 1, Status: StatusAccepted, LineItems: []LineItem{{ServiceName: "Wash", Quantity: 2}}},
		{ID: 2, Status: StatusDone, LineItems: []LineItem{{ServiceName: "Wax", Quantity: 1}}},
	}

	got := Aggregate(reservations, prices(map[string]string{"Wash": "20", "Wax": "15"}))

	assert.Equal(t, 2, got.Count)
	assert.True(t, decimal.NewFromInt(55).Equal(got.Revenue), "revenue=%s", got.Revenue)
}

func TestAggregate_CountsReservationsNotLineItems(t *testing.T) {
	reservations := []*Reservation{
		{LineItems: []LineItem{{ServiceName: "Wash", Quantity: 1}, {ServiceName: "Wax", Quantity: 1}, {ServiceName: "Polish", Quantity: 1}}},
	}

	got := Aggregate(reservations, prices(map[string]string{"Wash": "20", "Wax": "15", "Polish": "5.5"}))

	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "40.5", got.Revenue.String())
}

func TestAggregate_UnknownServiceContributesZero(t *testing.T) {
	reservations := []*Reservation{
		{LineItems: []LineItem{{ServiceName: "Wash", Quantity: 1}, {ServiceName: "Renamed Service", Quantity: 4}}},
	}

	got := Aggregate(reservations, prices(map[string]string{"Wash": "20"}))

	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "20", got.Revenue.String())
}

func TestAggregate_DefaultQuantity(t *testing.T) {
	reservations := []*Reservation{
		{LineItems: []LineItem{{ServiceName: "Wash"}, {ServiceName: "Wax", Quantity: -1}}},
	}

	got := Aggregate(reservations, prices(map[string]string{"Wash": "20", "Wax": "15"}))

	assert.Equal(t, "35", got.Revenue.String())
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil, PriceSnapshot{})

	assert.Equal(t, 0, got.Count)
	assert.True(t, got.Revenue.IsZero())
}

func TestAggregate_OrderIndependent(t *testing.T) {
	snapshot := prices(map[string]string{"Wash": "19.99", "Wax": "0.1", "Polish": "7.333"})

	reservations := make([]*Reservation, 0, 50)
	names := []string{"Wash", "Wax", "Polish", "Unknown"}
	for i := 0; i < 50; i++ {
		reservations = append(reservations, &Reservation{
			ID: int64(i),
			LineItems: []LineItem{
				{ServiceName: names[i%len(names)], Quantity: i % 4},
				{ServiceName: names[(i+1)%len(names)], Quantity: 1},
			},
		})
	}

	want := Aggregate(reservations, snapshot)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]*Reservation(nil), reservations...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled, snapshot)
		assert.Equal(t, want.Count, got.Count)
		assert.Truef(t, want.Revenue.Equal(got.Revenue), "permutation %d: %s != %s", i, got.Revenue, want.Revenue)
	}
}
