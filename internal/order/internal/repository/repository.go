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

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/dabaoclub/dabao/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (domain.Order, error)
	FindBySNAndPhone(ctx context.Context, sn string, phone string) (domain.Order, error)
	ListByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	CountByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus) (int64, error)
	ListByPhone(ctx context.Context, phone string, offset, limit int) ([]domain.Order, error)
	CountByPhone(ctx context.Context, phone string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, current, target domain.OrderStatus, actor int64) (int64, error)
	UpdateItemPrepared(ctx context.Context, orderID, itemID int64, prepared bool) error
	AppendEvent(ctx context.Context, orderID int64, kind string, payload any) error
	FindEventsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderEvent, error)
	ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]domain.Order, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toEntity(order), o.toItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.fill(ctx, order)
}

func (o *orderRepository) FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndMerchantID(ctx, sn, merchantID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.fill(ctx, order)
}

func (o *orderRepository) FindBySNAndPhone(ctx context.Context, sn string, phone string) (domain.Order, error) {
	order, err := o.d.FindBySNAndPhone(ctx, sn, phone)
	if err != nil {
		return domain.Order{}, err
	}
	return o.fill(ctx, order)
}

func (o *orderRepository) fill(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) ListByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListByMerchantID(ctx, merchantID, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		order, er := o.fill(ctx, src)
		if er != nil {
			return nil, er
		}
		res = append(res, order)
	}
	return res, nil
}

func (o *orderRepository) CountByMerchantID(ctx context.Context, merchantID int64, status domain.OrderStatus) (int64, error) {
	return o.d.CountByMerchantID(ctx, merchantID, status.ToUint8())
}

// ListByPhone 顾客侧订单历史, 不回填订单项, 列表页用不上
func (o *orderRepository) ListByPhone(ctx context.Context, phone string, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListByPhone(ctx, phone, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) CountByPhone(ctx context.Context, phone string) (int64, error) {
	return o.d.CountByPhone(ctx, phone)
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, current, target domain.OrderStatus, actor int64) (int64, error) {
	return o.d.UpdateStatus(ctx, id, current.ToUint8(), target.ToUint8(), domain.TimestampColumn(target), actor)
}

func (o *orderRepository) UpdateItemPrepared(ctx context.Context, orderID, itemID int64, prepared bool) error {
	return o.d.UpdateItemPrepared(ctx, orderID, itemID, prepared)
}

func (o *orderRepository) AppendEvent(ctx context.Context, orderID int64, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化事件内容失败: %w", err)
	}
	return o.d.AppendEvent(ctx, dao.OrderEvent{
		OrderId: orderID,
		Kind:    kind,
		Payload: string(data),
	})
}

func (o *orderRepository) FindEventsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderEvent, error) {
	evts, err := o.d.FindEventsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(evts, func(idx int, src dao.OrderEvent) domain.OrderEvent {
		return domain.OrderEvent{
			ID:      src.Id,
			OrderID: src.OrderId,
			Kind:    src.Kind,
			Payload: src.Payload,
			Ctime:   src.Ctime,
		}
	}), nil
}

func (o *orderRepository) ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListExpiredPending(ctx, deadline, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                order.ID,
		SN:                order.SN,
		MerchantId:        order.MerchantID,
		CustomerId:        order.CustomerID,
		Status:            order.Status.ToUint8(),
		DeliveryMethod:    order.DeliveryMethod.ToUint8(),
		PaymentStatus:     order.PaymentStatus.ToUint8(),
		Subtotal:          order.Subtotal,
		DeliveryFee:       order.DeliveryFee,
		Discount:          order.Discount,
		Tax:               order.Tax,
		Total:             order.Total,
		ContactName:       order.ContactName,
		ContactPhone:      order.ContactPhone,
		ContactEmail:      order.ContactEmail,
		DeliveryAddressId: order.DeliveryAddressID,
		Notes:             order.Notes,
		ReferenceToken:    order.ReferenceToken,
		PaymentDeadline:   order.PaymentDeadline,
	}
}

func (o *orderRepository) toItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			Name:      src.Name,
			Price:     src.Price,
			Quantity:  src.Quantity,
			LineTotal: src.LineTotal,
			Variant:   sqlx.JsonColumn[map[string]string]{Val: src.Variant, Valid: len(src.Variant) > 0},
			Note:      src.Note,
			Prepared:  src.Prepared,
		}
	})
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:                order.Id,
		SN:                order.SN,
		MerchantID:        order.MerchantId,
		CustomerID:        order.CustomerId,
		Status:            domain.OrderStatus(order.Status),
		DeliveryMethod:    domain.DeliveryMethod(order.DeliveryMethod),
		PaymentStatus:     domain.PaymentStatus(order.PaymentStatus),
		Subtotal:          order.Subtotal,
		DeliveryFee:       order.DeliveryFee,
		Discount:          order.Discount,
		Tax:               order.Tax,
		Total:             order.Total,
		ContactName:       order.ContactName,
		ContactPhone:      order.ContactPhone,
		ContactEmail:      order.ContactEmail,
		DeliveryAddressID: order.DeliveryAddressId,
		Notes:             order.Notes,
		ReferenceToken:    order.ReferenceToken,
		PaymentDeadline:   order.PaymentDeadline,
		ConfirmedAt:       order.ConfirmedAt,
		PreparingAt:       order.PreparingAt,
		ReadyAt:           order.ReadyAt,
		DeliveredAt:       order.DeliveredAt,
		CompletedAt:       order.CompletedAt,
		CancelledAt:       order.CancelledAt,
		RefundedAt:        order.RefundedAt,
		ConfirmedBy:       order.ConfirmedBy,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ID:        src.Id,
				OrderID:   src.OrderId,
				ProductID: src.ProductId,
				Name:      src.Name,
				Price:     src.Price,
				Quantity:  src.Quantity,
				LineTotal: src.LineTotal,
				Variant:   src.Variant.Val,
				Note:      src.Note,
				Prepared:  src.Prepared,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
