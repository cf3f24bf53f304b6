package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
)

// LineInput is one requested order line.
type LineInput struct {
	ItemID   string
	Quantity int
}

// CreateInput represents the input parameters for placing an order.
type CreateInput struct {
	UserID string
	Lines  []LineInput
}

// UpdateInput represents the input parameters for updating an order.
// Only the status can change after creation.
type UpdateInput struct {
	ID     string
	Status *string
}

// Service provides order management use cases.
type Service struct {
	Repo  repository.OrderRepository
	Items repository.ItemRepository
}

// PaginatedResult holds one page of orders and the total count.
type PaginatedResult struct {
	Data  []*entity.Order
	Total int64
}

// Create places an order. Every line must reference an existing item;
// the total is computed from the current catalog prices, which are also
// captured on each line.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Order, error) {
	if in.UserID == "" {
		return nil, entity.ErrMissingUserID
	}
	if len(in.Lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range in.Lines {
		if line.ItemID == "" {
			return nil, entity.ErrMissingItemID
		}
		if err := entity.ValidateQuantity(line.Quantity); err != nil {
			return nil, err
		}
	}

	ids := make([]string, 0, len(in.Lines))
	for _, line := range in.Lines {
		ids = append(ids, line.ItemID)
	}
	items, err := s.Items.GetBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var total float64
	for _, line := range in.Lines {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, line.ItemID)
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			ItemID:   item.ID,
			Quantity: line.Quantity,
			Price:    item.Price,
		})
		total += item.Price * float64(line.Quantity)
	}
	order.TotalAmount = math.Round(total*100) / 100

	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// Get retrieves a single order with its lines.
func (s *Service) Get(ctx context.Context, id string) (*entity.Order, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	order, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListPaginated retrieves one page of all orders.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	orders, err := s.Repo.ListPaginated(ctx, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &PaginatedResult{Data: orders, Total: total}, nil
}

// ListByUserPaginated retrieves one page of a single user's orders.
func (s *Service) ListByUserPaginated(ctx context.Context, userID string, params pagination.Params) (*PaginatedResult, error) {
	if userID == "" {
		return nil, entity.ErrMissingUserID
	}
	total, err := s.Repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	orders, err := s.Repo.ListByUserPaginated(ctx, userID, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &PaginatedResult{Data: orders, Total: total}, nil
}

// Update changes the order status, enforcing the pipeline: pending,
// processing, shipped, delivered. Cancellation is allowed from any state
// before delivery; delivered and cancelled are terminal.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Order, error) {
	order, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Status == nil || *in.Status == order.Status {
		return order, nil
	}

	next := *in.Status
	if !entity.ValidOrderStatus(next) {
		return nil, entity.ErrInvalidOrderStatus
	}
	if !transitionAllowed(order.Status, next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, order.Status, next)
	}

	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func transitionAllowed(from, to string) bool {
	switch from {
	case entity.OrderStatusDelivered, entity.OrderStatusCancelled:
		return false
	}
	if to == entity.OrderStatusCancelled {
		return true
	}
	order := map[string]int{
		entity.OrderStatusPending:    0,
		entity.OrderStatusProcessing: 1,
		entity.OrderStatusShipped:    2,
		entity.OrderStatusDelivered:  3,
	}
	return order[to] == order[from]+1
}

// Delete removes the order and its lines.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
