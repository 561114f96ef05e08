package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type OrderService struct{}

func NewOrderService() *OrderService { return &OrderService{} }

type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type OrderInput struct {
	TableLabel string           `json:"table_label"`
	Notes      string           `json:"notes"`
	Items      []OrderLineInput `json:"items" binding:"required"`
}

// Create snapshots item names and prices at order time and totals the ticket.
func (s *OrderService) Create(restaurantID uint, in OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("order has no items")
	}

	order := models.Order{
		RestaurantID: restaurantID,
		Status:       models.OrderStatusOpen,
		TableLabel:   in.TableLabel,
		Notes:        in.Notes,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	var total float64
	for _, l := range in.Items {
		qty := l.Quantity
		if qty <= 0 {
			qty = 1
		}
		var item models.MenuItem
		if err := config.DB.First(&item, l.MenuItemID).Error; err != nil {
			return nil, err
		}
		oi := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   qty,
		}
		if err := config.DB.Create(&oi).Error; err != nil {
			return nil, err
		}
		total += item.Price * float64(qty)
	}

	order.Total = utils.RoundCurrency(total)
	if err := config.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	var populated models.Order
	if err := config.DB.Preload("Items").First(&populated, order.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *OrderService) List(restaurantID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	q := config.DB.
		Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(restaurantID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := config.DB.
		Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) UpdateStatus(restaurantID, orderID uint, status string) (*models.Order, error) {
	if status != models.OrderStatusOpen &&
		status != models.OrderStatusPaid &&
		status != models.OrderStatusCancelled {
		return nil, errors.New("invalid order status")
	}
	order, err := s.Get(restaurantID, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := config.DB.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
