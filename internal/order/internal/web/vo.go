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

package web

import (
	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

// TrackOrderReq 顾客查单, 订单号+手机号双因子
type TrackOrderReq struct {
	OrderSN string `json:"sn"`
	Phone   string `json:"phone"`
}

type TrackOrderResp struct {
	Order Order `json:"order"`
}

// ListMyOrdersReq 顾客侧订单历史, 只凭手机号
type ListMyOrdersReq struct {
	Phone  string `json:"phone"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// ListOrdersReq 商家侧分页查询, status 为 0 表示不过滤
type ListOrdersReq struct {
	Status uint8 `json:"status,omitempty"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order  Order        `json:"order"`
	Events []OrderEvent `json:"events,omitempty"`
}

// UpdateOrderStatusReq 商家推进订单状态
type UpdateOrderStatusReq struct {
	OrderSN string `json:"sn"`
	Status  uint8  `json:"status"`
}

type UpdateOrderStatusResp struct {
	Order Order `json:"order"`
}

// BulkUpdateOrderStatusReq 批量推进, 单个失败不影响其他订单
type BulkUpdateOrderStatusReq struct {
	OrderSNs []string `json:"sns"`
	Status   uint8    `json:"status"`
}

type BulkUpdateOrderStatusResp struct {
	SuccessCount int64         `json:"successCount"`
	TotalCount   int64         `json:"totalCount"`
	Failures     []BulkFailure `json:"failures,omitempty"`
}

type BulkFailure struct {
	OrderSN string `json:"sn"`
	Reason  string `json:"reason"`
}

type MarkItemPreparedReq struct {
	OrderSN  string `json:"sn"`
	ItemID   int64  `json:"itemID"`
	Prepared bool   `json:"prepared"`
}

type Order struct {
	SN              string      `json:"sn"`
	Status          uint8       `json:"status"`
	DeliveryMethod  uint8       `json:"deliveryMethod"`
	PaymentStatus   uint8       `json:"paymentStatus"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"deliveryFee"`
	Discount        int64       `json:"discount"`
	Tax             int64       `json:"tax"`
	Total           int64       `json:"total"`
	ContactName     string      `json:"contactName"`
	ContactPhone    string      `json:"contactPhone"`
	Notes           string      `json:"notes,omitempty"`
	ReferenceToken  string      `json:"referenceToken"`
	PaymentDeadline int64       `json:"paymentDeadline,omitempty"`
	ConfirmedAt     int64       `json:"confirmedAt,omitempty"`
	PreparingAt     int64       `json:"preparingAt,omitempty"`
	ReadyAt         int64       `json:"readyAt,omitempty"`
	DeliveredAt     int64       `json:"deliveredAt,omitempty"`
	CompletedAt     int64       `json:"completedAt,omitempty"`
	CancelledAt     int64       `json:"cancelledAt,omitempty"`
	RefundedAt      int64       `json:"refundedAt,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	Ctime           int64       `json:"ctime"`
}

type OrderItem struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Price     int64             `json:"price"`
	Quantity  int64             `json:"quantity"`
	LineTotal int64             `json:"lineTotal"`
	Variant   map[string]string `json:"variant,omitempty"`
	Note      string            `json:"note,omitempty"`
	Prepared  bool              `json:"prepared"`
}

type OrderEvent struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
	Ctime   int64  `json:"ctime"`
}

func toOrderVO(src domain.Order) Order {
	return Order{
		SN:              src.SN,
		Status:          src.Status.ToUint8(),
		DeliveryMethod:  src.DeliveryMethod.ToUint8(),
		PaymentStatus:   src.PaymentStatus.ToUint8(),
		Subtotal:        src.Subtotal,
		DeliveryFee:     src.DeliveryFee,
		Discount:        src.Discount,
		Tax:             src.Tax,
		Total:           src.Total,
		ContactName:     src.ContactName,
		ContactPhone:    src.ContactPhone,
		Notes:           src.Notes,
		ReferenceToken:  src.ReferenceToken,
		PaymentDeadline: src.PaymentDeadline,
		ConfirmedAt:     src.ConfirmedAt,
		PreparingAt:     src.PreparingAt,
		ReadyAt:         src.ReadyAt,
		DeliveredAt:     src.DeliveredAt,
		CompletedAt:     src.CompletedAt,
		CancelledAt:     src.CancelledAt,
		RefundedAt:      src.RefundedAt,
		Items: slice.Map(src.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ID:        src.ID,
				Name:      src.Name,
				Price:     src.Price,
				Quantity:  src.Quantity,
				LineTotal: src.LineTotal,
				Variant:   src.Variant,
				Note:      src.Note,
				Prepared:  src.Prepared,
			}
		}),
		Ctime: src.Ctime,
	}
}
