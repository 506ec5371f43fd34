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

type SessionStatus uint8

func (s SessionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SessionStatusPending   SessionStatus = 1
	SessionStatusCompleted SessionStatus = 2
)

// ItemDraft 顾客提交的购物车行, 尚未定价
type ItemDraft struct {
	ProductID int64             `json:"productID"`
	Quantity  int64             `json:"quantity"`
	Variant   map[string]string `json:"variant,omitempty"`
	Note      string            `json:"note,omitempty"`
}

// PricedItem 会话创建时按当时菜单冻结的快照,
// 之后商家改价不影响已开始的结账流程
type PricedItem struct {
	ProductID int64             `json:"productID"`
	Name      string            `json:"name"`
	UnitPrice int64             `json:"unitPrice"`
	Quantity  int64             `json:"quantity"`
	LineTotal int64             `json:"lineTotal"`
	Variant   map[string]string `json:"variant,omitempty"`
	Note      string            `json:"note,omitempty"`
}

// Session 结账会话, 只存在于共享缓存里, 到期自动蒸发.
// ExpiresAt 是业务口径的过期时间, 缓存键的TTL略长于它,
// 这样过期后的读取还能区分"过期"和"不存在".
type Session struct {
	ID             string        `json:"id"`
	MerchantID     int64         `json:"merchantID"`
	Items          []PricedItem  `json:"items"`
	Subtotal       int64         `json:"subtotal"`
	ReferenceToken string        `json:"referenceToken"`
	Status         SessionStatus `json:"status"`
	Ctime          int64         `json:"ctime"`
	ExpiresAt      int64         `json:"expiresAt"`
}

func (s Session) Expired(now int64) bool {
	return now >= s.ExpiresAt
}
