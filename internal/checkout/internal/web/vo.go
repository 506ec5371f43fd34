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
	"github.com/dabaoclub/dabao/internal/checkout/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type CreateSessionReq struct {
	MerchantID int64  `json:"merchantID"`
	Items      []Item `json:"items"`
}

type Item struct {
	ProductID int64             `json:"productID"`
	Quantity  int64             `json:"quantity"`
	Variant   map[string]string `json:"variant,omitempty"`
	Note      string            `json:"note,omitempty"`
}

type SessionResp struct {
	Session Session `json:"session"`
}

type RetrieveSessionReq struct {
	SessionID string `json:"sessionID"`
}

// CompleteSessionReq 提交结账. Address 缺省表示自取/堂食.
type CompleteSessionReq struct {
	SessionID string   `json:"sessionID"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

type Address struct {
	Line1      string  `json:"line1"`
	Line2      string  `json:"line2,omitempty"`
	PostalCode string  `json:"postalCode"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type CompleteSessionResp struct {
	OrderSN         string `json:"orderSN"`
	ReferenceToken  string `json:"referenceToken"`
	QRCode          string `json:"qrCode"`
	Total           int64  `json:"total"`
	PaymentDeadline int64  `json:"paymentDeadline"`
}

type Session struct {
	ID             string       `json:"id"`
	MerchantID     int64        `json:"merchantID"`
	Items          []PricedItem `json:"items"`
	Subtotal       int64        `json:"subtotal"`
	ReferenceToken string       `json:"referenceToken"`
	ExpiresAt      int64        `json:"expiresAt"`
}

type PricedItem struct {
	ProductID int64             `json:"productID"`
	Name      string            `json:"name"`
	UnitPrice int64             `json:"unitPrice"`
	Quantity  int64             `json:"quantity"`
	LineTotal int64             `json:"lineTotal"`
	Variant   map[string]string `json:"variant,omitempty"`
	Note      string            `json:"note,omitempty"`
}

func toSessionVO(src domain.Session) Session {
	return Session{
		ID:             src.ID,
		MerchantID:     src.MerchantID,
		Items: slice.Map(src.Items, func(idx int, src domain.PricedItem) PricedItem {
			return PricedItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
				LineTotal: src.LineTotal,
				Variant:   src.Variant,
				Note:      src.Note,
			}
		}),
		Subtotal:       src.Subtotal,
		ReferenceToken: src.ReferenceToken,
		ExpiresAt:      src.ExpiresAt,
	}
}
