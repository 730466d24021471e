package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"autoshop/internal/domain"
)

type PaymentInput struct {
	CardNumber string `form:"card_number"`
	Expiry     string `form:"expiry"`
	CVV        string `form:"cvv"`
}

// OrderService 订单生命周期：创建(未支付) -> 支付
type OrderService struct {
	orders    domain.OrderRepository
	workTypes domain.WorkTypeRepository
	log       *zap.Logger
}

func NewOrderService(orders domain.OrderRepository, workTypes domain.WorkTypeRepository, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, workTypes: workTypes, log: log}
}

func (s *OrderService) Create(ctx context.Context, actor *domain.User, workTypeID uint) (*domain.Order, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	wt, err := s.workTypes.FindByID(ctx, workTypeID)
	if err != nil {
		return nil, Internal("Could not load work type", err)
	}
	if wt == nil {
		return nil, NotFound("Work type not found")
	}
	o := &domain.Order{UserID: actor.ID, WorkTypeID: wt.ID}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, persistErr("Could not create order", err)
	}
	o.WorkType = wt
	ordersCreated.Inc()
	s.log.Info("order created", zap.Uint("order_id", o.ID), zap.Uint("user_id", actor.ID), zap.Uint("work_type_id", wt.ID))
	return o, nil
}

// Get 只允许订单所有者查看
func (s *OrderService) Get(ctx context.Context, actor *domain.User, id uint) (*domain.Order, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Could not load order", err)
	}
	if o == nil {
		return nil, NotFound("Order not found")
	}
	if o.UserID != actor.ID {
		return nil, ErrPermissionDenied
	}
	return o, nil
}

// Pay 只做格式校验，不对接真实支付；已支付的订单再次支付不报错
func (s *OrderService) Pay(ctx context.Context, actor *domain.User, id uint, in PaymentInput) (*domain.Order, error) {
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	if err := s.orders.MarkPaid(ctx, o.ID); err != nil {
		return nil, persistErr("Payment failed", err)
	}
	o.IsPaid = true
	ordersPaid.Inc()
	s.log.Info("order paid", zap.Uint("order_id", o.ID), zap.Uint("user_id", actor.ID))
	return o, nil
}

func (in *PaymentInput) check() error {
	in.CardNumber = strings.TrimSpace(in.CardNumber)
	in.Expiry = strings.TrimSpace(in.Expiry)
	in.CVV = strings.TrimSpace(in.CVV)
	if !digits(in.CardNumber, 16) {
		paymentsRejected.WithLabelValues("card_number").Inc()
		return Validation("Card number must contain exactly 16 digits")
	}
	if _, err := time.Parse(expiryLayout, in.Expiry); err != nil {
		paymentsRejected.WithLabelValues("expiry").Inc()
		return Validation("Expiry date must be in MM/YY format")
	}
	if !digits(in.CVV, 3) {
		paymentsRejected.WithLabelValues("cvv").Inc()
		return Validation("CVV must contain exactly 3 digits")
	}
	return nil
}

func (s *OrderService) ListForUser(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	out, err := s.orders.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, Internal("Could not load orders", err)
	}
	return out, nil
}
