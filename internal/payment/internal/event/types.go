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

const paymentEventName = "payment_events"

// PaymentEvent 支付结果事件, 下游通知服务据此给顾客和商家发消息
type PaymentEvent struct {
	PaymentSN  string `json:"paymentSN"`
	OrderSN    string `json:"orderSN"`
	MerchantID int64  `json:"merchantID"`
	Amount     int64  `json:"amount"`
	Status     uint8  `json:"status"`
	Kind       string `json:"kind"`
}
