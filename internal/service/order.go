package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sipwell/hydrokit-backend/internal/models"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrBadStatusChange  = errors.New("invalid status transition")
	ErrUnknownOrderKind = errors.New("unknown kit name")
)

// OrderService tracks kit orders and their fulfillment status. The
// workflow itself (picking, packing) lives with the staff; the backend
// only records and exposes status.
type OrderService struct {
	db   *gorm.DB
	kits IKitService
}

var _ IOrderService = (*OrderService)(nil)

func NewOrderService(db *gorm.DB, kits IKitService) *OrderService {
	return &OrderService{db: db, kits: kits}
}

// CreateOrder places an order for a catalog kit.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *types.CreateOrderRequest) (*models.KitOrder, error) {
	if _, err := s.kits.GetKit(ctx, req.KitName); err != nil {
		if errors.Is(err, ErrKitNotFound) {
			return nil, ErrUnknownOrderKind
		}
		return nil, err
	}

	order := models.KitOrder{
		ID:        uuid.New(),
		UserID:    userID,
		KitName:   req.KitName,
		Archetype: req.Archetype,
		Status:    models.OrderPending,
		Note:      req.Note,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns a user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.KitOrder, error) {
	var orders []models.KitOrder
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders is the staff view, optionally filtered by status.
func (s *OrderService) ListAllOrders(ctx context.Context, status string) ([]models.KitOrder, error) {
	query := s.db.WithContext(ctx).Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.KitOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// statusRank orders the fulfillment states; transitions only move forward.
var statusRank = map[string]int{
	models.OrderPending:    0,
	models.OrderInProgress: 1,
	models.OrderCompleted:  2,
}

// UpdateStatus advances an order's fulfillment status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*models.KitOrder, error) {
	var order models.KitOrder
	if err := s.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	newRank, ok := statusRank[status]
	if !ok || newRank < statusRank[order.Status] {
		return nil, ErrBadStatusChange
	}

	order.Status = status
	if err := s.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
