// services/order_service.go
package services

import (
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/repository"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// OrderService handles charge orders across the three categories
type OrderService struct {
	orderRepo *repository.OrderRepository
	stayRepo  *repository.StayRepository
}

// NewOrderService creates a new order service
func NewOrderService() *OrderService {
	return &OrderService{
		orderRepo: repository.NewOrderRepository(),
		stayRepo:  repository.NewStayRepository(),
	}
}

// CreateOrder validates and stores a charge order against a stay
func (s *OrderService) CreateOrder(request *models.CreateOrderRequest) (*models.ChargeOrder, error) {
	if err := utils.ValidateCategory(request.Category); err != nil {
		return nil, err
	}
	if err := utils.ValidateNotEmpty(request.Items, "items"); err != nil {
		return nil, err
	}
	for _, item := range request.Items {
		if err := utils.ValidateRequired(item.Name, "item name"); err != nil {
			return nil, err
		}
		if err := utils.ValidateNonNegative(float64(item.Quantity), "item quantity"); err != nil {
			return nil, err
		}
		if err := utils.ValidateNonNegative(item.ResolvedUnitPrice(), "item price"); err != nil {
			return nil, err
		}
	}

	stay, err := s.stayRepo.GetStay(request.StayID)
	if err != nil {
		utils.LogError(err, "Failed to retrieve stay for order")
		return nil, utils.NewInternalError("Failed to retrieve stay")
	}
	if stay == nil {
		return nil, utils.NewNotFoundError("Stay")
	}

	order := &models.ChargeOrder{
		ID:           utils.GenerateID(),
		CreationTime: time.Now().UnixMilli(),
		StayID:       request.StayID,
		Category:     request.Category,
		Notes:        request.Notes,
		Items:        request.Items,
	}
	if err := s.orderRepo.StoreOrder(order); err != nil {
		utils.LogError(err, "Failed to store charge order")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return order, nil
}

// ListOrders retrieves a stay's orders, optionally narrowed to one category
func (s *OrderService) ListOrders(stayID, category string) ([]models.ChargeOrder, error) {
	if category != "" {
		if err := utils.ValidateCategory(category); err != nil {
			return nil, err
		}
		return s.getOrders(stayID, category)
	}

	var all []models.ChargeOrder
	for _, cat := range []string{utils.CategoryRoomService, utils.CategoryRestaurant, utils.CategoryLaundry} {
		orders, err := s.getOrders(stayID, cat)
		if err != nil {
			return nil, err
		}
		all = append(all, orders...)
	}
	return all, nil
}

// VoidOrder marks an entire order non-chargeable. The order stays on record
// for inventory and audit; it simply contributes zero to the folio.
func (s *OrderService) VoidOrder(orderID string) error {
	voided, err := s.orderRepo.VoidOrder(orderID)
	if err != nil {
		utils.LogError(err, "Failed to void order")
		return utils.NewInternalError("Failed to void order")
	}
	if !voided {
		return utils.NewNotFoundError("Order")
	}
	return nil
}

// VoidOrderLine marks one line of an order non-chargeable, leaving the rest
// of the order billable.
func (s *OrderService) VoidOrderLine(request *models.VoidOrderLineRequest) error {
	if request.ItemIndex < 0 {
		return utils.NewValidationError("item index cannot be negative")
	}
	voided, err := s.orderRepo.VoidOrderItem(request.OrderID, request.ItemIndex)
	if err != nil {
		utils.LogError(err, "Failed to void order line")
		return utils.NewInternalError("Failed to void order line")
	}
	if !voided {
		return utils.NewNotFoundError("Order line")
	}
	return nil
}

func (s *OrderService) getOrders(stayID, category string) ([]models.ChargeOrder, error) {
	orders, err := s.orderRepo.GetOrders(stayID, category)
	if err != nil {
		utils.LogError(err, "Failed to retrieve orders")
		return nil, utils.NewInternalError("Failed to retrieve orders")
	}
	return orders, nil
}
