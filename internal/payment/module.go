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

package payment

import (
	"github.com/dabaoclub/dabao/internal/payment/internal/domain"
	"github.com/dabaoclub/dabao/internal/payment/internal/service"
	"github.com/dabaoclub/dabao/internal/payment/internal/web"
)

type (
	Payment        = domain.Payment
	PaymentStatus  = domain.PaymentStatus
	PaymentChannel = domain.PaymentChannel
	Service        = service.Service
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
)

const (
	StatusPending    = domain.PaymentStatusPending
	StatusProcessing = domain.PaymentStatusProcessing
	StatusCompleted  = domain.PaymentStatusCompleted
	StatusFailed     = domain.PaymentStatusFailed

	ChannelPayNowQR = domain.ChannelPayNowQR
	ChannelCash     = domain.ChannelCash
)

var (
	ErrPaymentNotFound    = service.ErrPaymentNotFound
	ErrTransitionConflict = service.ErrTransitionConflict
	ErrInvalidPayee       = service.ErrInvalidPayee
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
