// Copyright 2024 dabaoclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/dabaoclub/dabao/internal/order/internal/event"
	"github.com/dabaoclub/dabao/internal/order/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("订单不存在")
	// ErrInvalidTransition 状态表不允许该流转, 或状态已被并发修改
	ErrInvalidTransition = errors.New("订单状态不允许该变更")
	ErrInvalidOrder      = errors.New("订单数据非法")
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dabao",
		Subsystem: "order",
		Name:      "created_total",
		Help:      "创建成功的订单总数",
	})
	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dabao",
		Subsystem: "order",
		Name:      "status_transitions_total",
		Help:      "订单状态流转总数",
	}, []string{"target"})
)

// BulkResult 批量状态变更的部分成功汇总
type BulkResult struct {
	SuccessCount int64
	TotalCount   int64
	Failures     []BulkFailure
}

type BulkFailure struct {
	OrderSN string
	Reason  string
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateOrder 金额一律在服务端重算, 不信任调用方给的总价
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (domain.Order, error)
	// TrackOrder 订单号和手机号必须同时匹配, 不泄露订单号是否存在
	TrackOrder(ctx context.Context, sn string, phone string) (domain.Order, error)
	ListByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	// ListByPhone 顾客侧订单历史, 只凭手机号查询
	ListByPhone(ctx context.Context, phone string, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, merchantID int64, sn string, target domain.OrderStatus, actor int64) (domain.Order, error)
	// BulkUpdateStatus 单个订单失败不影响其他订单, 返回部分成功汇总
	BulkUpdateStatus(ctx context.Context, merchantID int64, sns []string, target domain.OrderStatus, actor int64) (BulkResult, error)
	MarkItemPrepared(ctx context.Context, merchantID int64, sn string, itemID int64, prepared bool) error
	FindEvents(ctx context.Context, merchantID int64, sn string) ([]domain.OrderEvent, error)
	// CancelExpiredPending 取消超过支付截止时间仍未支付的订单, 返回取消数量
	CancelExpiredPending(ctx context.Context, limit int) (int64, error)
}

func NewService(repo repository.OrderRepository, producer event.OrderEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		l:        elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.OrderRepository
	producer event.OrderEventProducer
	l        *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: 无订单项", ErrInvalidOrder)
	}
	var subtotal int64
	for i := range order.Items {
		item := &order.Items[i]
		if item.Price < 0 || item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("%w: 单价或数量非法", ErrInvalidOrder)
		}
		item.LineTotal = item.Price * item.Quantity
		subtotal += item.LineTotal
	}
	order.Subtotal = subtotal
	if order.Discount < 0 {
		order.Discount = 0
	}
	if order.Tax < 0 {
		order.Tax = 0
	}
	if order.DeliveryFee < 0 {
		return domain.Order{}, fmt.Errorf("%w: 配送费非法", ErrInvalidOrder)
	}
	total := order.Subtotal + order.DeliveryFee + order.Tax - order.Discount
	if total < 0 {
		total = 0
	}
	order.Total = total
	order.Status = domain.StatusPending
	order.PaymentStatus = domain.PaymentStatusPending

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	ordersCreated.Inc()
	s.produce(ctx, created, "order_created")
	return created, nil
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	return order, err
}

func (s *service) FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (domain.Order, error) {
	order, err := s.repo.FindBySNAndMerchantID(ctx, sn, merchantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	return order, err
}

func (s *service) TrackOrder(ctx context.Context, sn string, phone string) (domain.Order, error) {
	order, err := s.repo.FindBySNAndPhone(ctx, sn, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 订单号存在与否和手机号不匹配返回同一个错误
		return domain.Order{}, ErrOrderNotFound
	}
	return order, err
}

func (s *service) ListByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByMerchantID(ctx, merchantID, status, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByMerchantID(ctx, merchantID, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListByPhone(ctx context.Context, phone string, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByPhone(ctx, phone, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByPhone(ctx, phone)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, merchantID int64, sn string, target domain.OrderStatus, actor int64) (domain.Order, error) {
	order, err := s.FindBySNAndMerchantID(ctx, sn, merchantID)
	if err != nil {
		return domain.Order{}, err
	}
	return s.applyTransition(ctx, order, target, actor)
}

// applyTransition 先查状态表再做条件更新, 条件更新零行生效视为并发冲突
func (s *service) applyTransition(ctx context.Context, order domain.Order, target domain.OrderStatus, actor int64) (domain.Order, error) {
	if !domain.CanTransition(order.Status, target, order.DeliveryMethod.IsPickup()) {
		return domain.Order{}, fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, order.Status, target)
	}
	affected, err := s.repo.UpdateStatus(ctx, order.ID, order.Status, target, actor)
	if err != nil {
		return domain.Order{}, err
	}
	if affected == 0 {
		return domain.Order{}, fmt.Errorf("%w: 状态已被并发修改", ErrInvalidTransition)
	}
	err = s.repo.AppendEvent(ctx, order.ID, "status_changed", map[string]any{
		"from":  order.Status.ToUint8(),
		"to":    target.ToUint8(),
		"actor": actor,
	})
	if err != nil {
		s.l.Error("追加订单事件失败",
			elog.String("orderSN", order.SN),
			elog.FieldErr(err))
	}
	statusTransitions.WithLabelValues(fmt.Sprintf("%d", target.ToUint8())).Inc()

	order.Status = target
	now := time.Now().UnixMilli()
	switch target {
	case domain.StatusConfirmed:
		order.ConfirmedAt, order.ConfirmedBy = now, actor
	case domain.StatusPreparing:
		order.PreparingAt = now
	case domain.StatusReady:
		order.ReadyAt = now
	case domain.StatusDelivered:
		order.DeliveredAt = now
	case domain.StatusCompleted:
		order.CompletedAt = now
	case domain.StatusCancelled:
		order.CancelledAt = now
	case domain.StatusRefunded:
		order.RefundedAt = now
	}
	s.produce(ctx, order, "status_changed")
	return order, nil
}

func (s *service) BulkUpdateStatus(ctx context.Context, merchantID int64, sns []string, target domain.OrderStatus, actor int64) (BulkResult, error) {
	res := BulkResult{TotalCount: int64(len(sns))}
	for _, sn := range sns {
		_, err := s.UpdateStatus(ctx, merchantID, sn, target, actor)
		if err != nil {
			res.Failures = append(res.Failures, BulkFailure{OrderSN: sn, Reason: err.Error()})
			continue
		}
		res.SuccessCount++
	}
	return res, nil
}

func (s *service) MarkItemPrepared(ctx context.Context, merchantID int64, sn string, itemID int64, prepared bool) error {
	order, err := s.FindBySNAndMerchantID(ctx, sn, merchantID)
	if err != nil {
		return err
	}
	return s.repo.UpdateItemPrepared(ctx, order.ID, itemID, prepared)
}

func (s *service) FindEvents(ctx context.Context, merchantID int64, sn string) ([]domain.OrderEvent, error) {
	order, err := s.FindBySNAndMerchantID(ctx, sn, merchantID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindEventsByOrderID(ctx, order.ID)
}

func (s *service) CancelExpiredPending(ctx context.Context, limit int) (int64, error) {
	now := time.Now().UnixMilli()
	expired, err := s.repo.ListExpiredPending(ctx, now, 0, limit)
	if err != nil {
		return 0, err
	}
	var cancelled int64
	for _, order := range expired {
		_, err = s.applyTransition(ctx, order, domain.StatusCancelled, 0)
		if err != nil {
			// 单个失败不影响其余订单
			s.l.Warn("取消超时订单失败",
				elog.String("orderSN", order.SN),
				elog.FieldErr(err))
			continue
		}
		er := s.repo.AppendEvent(ctx, order.ID, "payment_timeout", map[string]any{
			"deadline": order.PaymentDeadline,
		})
		if er != nil {
			s.l.Warn("追加超时事件失败",
				elog.String("orderSN", order.SN),
				elog.FieldErr(er))
		}
		cancelled++
	}
	return cancelled, nil
}

func (s *service) produce(ctx context.Context, order domain.Order, kind string) {
	evt := event.OrderEvent{
		OrderSN:        order.SN,
		MerchantID:     order.MerchantID,
		Status:         order.Status.ToUint8(),
		PaymentStatus:  order.PaymentStatus.ToUint8(),
		DeliveryMethod: order.DeliveryMethod.ToUint8(),
		Kind:           kind,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		// 消息发送失败只记录, 不影响主流程
		s.l.Warn("发送订单事件失败",
			elog.String("orderSN", order.SN),
			elog.FieldErr(err))
	}
}
