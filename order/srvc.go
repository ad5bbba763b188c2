// Package order implements the orders service. Orders are always scoped
// by the email claim of a verified bearer token; the service never
// resolves accounts itself, so a token's claims stay authoritative for
// its whole lifetime even if the issuing account changes.
package order

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const StatusPending = "pending"

type Order struct {
	ID        int64
	UserEmail string
	ProductID int64
	Quantity  int
	Price     float64
	Currency  string
	Status    string
	CreatedAt time.Time
}

type OrderSrvc struct {
	pg *pgxpool.Pool
}

func NewOrderSrvc(pg *pgxpool.Pool) *OrderSrvc {
	return &OrderSrvc{pg: pg}
}
