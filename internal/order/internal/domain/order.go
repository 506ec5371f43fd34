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

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending        OrderStatus = 1
	StatusConfirmed      OrderStatus = 2
	StatusPreparing      OrderStatus = 3
	StatusReady          OrderStatus = 4
	StatusOutForDelivery OrderStatus = 5
	StatusDelivered      OrderStatus = 6
	StatusCompleted      OrderStatus = 7
	StatusCancelled      OrderStatus = 8
	StatusRefunded       OrderStatus = 9
)

type DeliveryMethod uint8

func (m DeliveryMethod) ToUint8() uint8 {
	return uint8(m)
}

// IsPickup 自取和堂食都不经过配送环节
func (m DeliveryMethod) IsPickup() bool {
	return m != MethodDelivery
}

const (
	MethodDelivery DeliveryMethod = 1
	MethodPickup   DeliveryMethod = 2
	MethodDineIn   DeliveryMethod = 3
)

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending    PaymentStatus = 1
	PaymentStatusProcessing PaymentStatus = 2
	PaymentStatusCompleted  PaymentStatus = 3
	PaymentStatusFailed     PaymentStatus = 4
)

type Order struct {
	ID         int64
	SN         string
	MerchantID int64
	CustomerID int64

	Status         OrderStatus
	DeliveryMethod DeliveryMethod
	PaymentStatus  PaymentStatus

	// 金额字段单位均为分, Total = Subtotal + DeliveryFee + Tax - Discount
	Subtotal    int64
	DeliveryFee int64
	Discount    int64
	Tax         int64
	Total       int64

	// 下单时的联系人快照, 与顾客档案解耦
	ContactName  string
	ContactPhone string
	ContactEmail string
	// DeliveryAddressID 为 0 表示自取/堂食
	DeliveryAddressID int64
	Notes             string

	// ReferenceToken 付款参考号, 会出现在 PayNow 二维码里
	ReferenceToken string
	// PaymentDeadline 超过该时间仍未核销付款的订单会被定时任务取消
	PaymentDeadline int64

	ConfirmedAt int64
	PreparingAt int64
	ReadyAt     int64
	DeliveredAt int64
	CompletedAt int64
	CancelledAt int64
	RefundedAt  int64
	// ConfirmedBy 核销付款的操作者ID
	ConfirmedBy int64

	Items []OrderItem
	Ctime int64
	Utime int64
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	// 下单时的菜品快照, 菜品改价不影响历史订单
	Name  string
	Price int64
	// LineTotal = Price * Quantity
	Quantity  int64
	LineTotal int64
	// Variant 规格选择, 例如 辣度=中辣
	Variant  map[string]string
	Note     string
	Prepared bool
}

// OrderEvent 订单审计事件, 只追加不修改
type OrderEvent struct {
	ID      int64
	OrderID int64
	Kind    string
	Payload string
	Ctime   int64
}
