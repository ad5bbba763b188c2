package order

import (
	"context"
)

type CreateOrderParams struct {
	ProductID int64
	Quantity  int
	Price     float64
	Currency  string
}

// Create records a new pending order for userEmail. The email always
// comes from the caller's verified claims, never from the request body.
func (s *OrderSrvc) Create(ctx context.Context, userEmail string, p CreateOrderParams) (*Order, error) {
	if p.ProductID <= 0 {
		return nil, newErrOrderFieldInvalid("product_id")
	}
	if p.Quantity <= 0 {
		return nil, newErrOrderFieldInvalid("quantity")
	}
	if p.Price <= 0 {
		return nil, newErrOrderFieldInvalid("price")
	}
	if p.Currency == "" {
		return nil, newErrOrderFieldInvalid("currency")
	}

	row := &Order{
		UserEmail: userEmail,
		ProductID: p.ProductID,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Currency:  p.Currency,
		Status:    StatusPending,
	}

	err := s.pg.QueryRow(ctx, `
		INSERT INTO orders (user_email, product_id, quantity, price, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		row.UserEmail,
		row.ProductID,
		row.Quantity,
		row.Price,
		row.Currency,
		row.Status,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return row, nil
}
