// repository/order_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/ashwinpura/hoteldesk-backend/models"
)

// OrderRepository handles database operations for charge orders
type OrderRepository struct {
	DB *sql.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		DB: GetDB(),
	}
}

// StoreOrder saves a charge order and its line items
func (r *OrderRepository) StoreOrder(order *models.ChargeOrder) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO charge_orders
         (id, creation_time, stay_id, category, non_chargeable, notes)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.CreationTime, order.StayID, order.Category,
		order.NonChargeable, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert charge order: %v", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(
			`INSERT INTO charge_order_items
             (order_id, name, quantity, unit_price, non_chargeable, is_free, status)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			order.ID, item.Name, float64(item.Quantity), item.ResolvedUnitPrice(),
			item.ResolvedNonChargeable(), item.IsFree, item.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %v", err)
		}
	}

	return tx.Commit()
}

// GetOrders retrieves all orders of one category for a stay
func (r *OrderRepository) GetOrders(stayID, category string) ([]models.ChargeOrder, error) {
	rows, err := r.DB.Query(
		`SELECT id, creation_time, stay_id, category, non_chargeable, notes
         FROM charge_orders WHERE stay_id = $1 AND category = $2
         ORDER BY creation_time ASC`,
		stayID, category,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %v", err)
	}
	defer rows.Close()

	var orders []models.ChargeOrder
	for rows.Next() {
		var order models.ChargeOrder
		var notes sql.NullString
		err = rows.Scan(&order.ID, &order.CreationTime, &order.StayID, &order.Category,
			&order.NonChargeable, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %v", err)
		}
		order.Notes = notes.String
		orders = append(orders, order)
	}

	for i := range orders {
		if err := r.loadItems(&orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// VoidOrder marks an entire order non-chargeable
func (r *OrderRepository) VoidOrder(orderID string) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE charge_orders SET non_chargeable = TRUE WHERE id = $1`,
		orderID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to void order: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check voided rows: %v", err)
	}
	return affected > 0, nil
}

// VoidOrderItem marks one line of an order non-chargeable, addressed by its
// position in insertion order
func (r *OrderRepository) VoidOrderItem(orderID string, itemIndex int) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE charge_order_items SET non_chargeable = TRUE
         WHERE id = (SELECT id FROM charge_order_items WHERE order_id = $1
                     ORDER BY id ASC OFFSET $2 LIMIT 1)`,
		orderID, itemIndex,
	)
	if err != nil {
		return false, fmt.Errorf("failed to void order item: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check voided items: %v", err)
	}
	return affected > 0, nil
}

func (r *OrderRepository) loadItems(order *models.ChargeOrder) error {
	rows, err := r.DB.Query(
		`SELECT name, quantity, unit_price, non_chargeable, is_free, status
         FROM charge_order_items WHERE order_id = $1 ORDER BY id ASC`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get order items: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var quantity, unitPrice float64
		var status sql.NullString
		err = rows.Scan(&item.Name, &quantity, &unitPrice,
			&item.NonChargeable, &item.IsFree, &status)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %v", err)
		}
		item.Quantity = models.FlexNumber(quantity)
		price := models.FlexNumber(unitPrice)
		item.UnitPrice = &price
		item.Status = status.String
		order.Items = append(order.Items, item)
	}
	return nil
}
