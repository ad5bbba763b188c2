package order

import (
	"context"
)

// ListByUser returns the caller's orders, newest first. No orders is an
// empty slice, not an error.
func (s *OrderSrvc) ListByUser(ctx context.Context, userEmail string) ([]Order, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, user_email, product_id, quantity, price, currency, status, created_at
		FROM orders
		WHERE user_email = $1
		ORDER BY created_at DESC, id DESC
	`, userEmail)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID,
			&o.UserEmail,
			&o.ProductID,
			&o.Quantity,
			&o.Price,
			&o.Currency,
			&o.Status,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return orders, nil
}
