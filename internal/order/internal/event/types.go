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

package event

const orderEventName = "order_events"

// OrderEvent 订单状态变更事件, 下游通知服务据此给顾客发消息
type OrderEvent struct {
	OrderSN        string `json:"orderSN"`
	MerchantID     int64  `json:"merchantID"`
	Status         uint8  `json:"status"`
	PaymentStatus  uint8  `json:"paymentStatus"`
	DeliveryMethod uint8  `json:"deliveryMethod"`
	Kind           string `json:"kind"`
}
