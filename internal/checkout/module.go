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

package checkout

import (
	"github.com/dabaoclub/dabao/internal/checkout/internal/domain"
	"github.com/dabaoclub/dabao/internal/checkout/internal/service"
	"github.com/dabaoclub/dabao/internal/checkout/internal/web"
)

type (
	Session        = domain.Session
	ItemDraft      = domain.ItemDraft
	PricedItem     = domain.PricedItem
	Contact        = service.Contact
	AddressInput   = service.AddressInput
	CompleteResult = service.CompleteResult
	Service        = service.Service
	Handler        = web.Handler
)

var (
	ErrSessionNotFound      = service.ErrSessionNotFound
	ErrSessionExpired       = service.ErrSessionExpired
	ErrSessionCompleted     = service.ErrSessionCompleted
	ErrMerchantNotAvailable = service.ErrMerchantNotAvailable
	ErrMinimumOrderNotMet   = service.ErrMinimumOrderNotMet
	ErrMethodNotAvailable   = service.ErrMethodNotAvailable
	ErrOutsideDeliveryArea  = service.ErrOutsideDeliveryArea
)

type Module struct {
	Svc Service
	Hdl *Handler
}
