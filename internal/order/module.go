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

package order

import (
	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/dabaoclub/dabao/internal/order/internal/job"
	"github.com/dabaoclub/dabao/internal/order/internal/service"
	"github.com/dabaoclub/dabao/internal/order/internal/web"
)

type (
	Order          = domain.Order
	OrderItem      = domain.OrderItem
	OrderEvent     = domain.OrderEvent
	OrderStatus    = domain.OrderStatus
	DeliveryMethod = domain.DeliveryMethod
	PaymentStatus  = domain.PaymentStatus
	Service        = service.Service
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler

	CancelExpiredOrdersJob = job.CancelExpiredOrdersJob
)

const (
	StatusPending        = domain.StatusPending
	StatusConfirmed      = domain.StatusConfirmed
	StatusPreparing      = domain.StatusPreparing
	StatusReady          = domain.StatusReady
	StatusOutForDelivery = domain.StatusOutForDelivery
	StatusDelivered      = domain.StatusDelivered
	StatusCompleted      = domain.StatusCompleted
	StatusCancelled      = domain.StatusCancelled
	StatusRefunded       = domain.StatusRefunded

	MethodDelivery = domain.MethodDelivery
	MethodPickup   = domain.MethodPickup
	MethodDineIn   = domain.MethodDineIn

	PaymentStatusPending    = domain.PaymentStatusPending
	PaymentStatusProcessing = domain.PaymentStatusProcessing
	PaymentStatusCompleted  = domain.PaymentStatusCompleted
	PaymentStatusFailed     = domain.PaymentStatusFailed
)

var (
	ErrOrderNotFound     = service.ErrOrderNotFound
	ErrInvalidTransition = service.ErrInvalidTransition
	ErrInvalidOrder      = service.ErrInvalidOrder

	NewCancelExpiredOrdersJob = job.NewCancelExpiredOrdersJob
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
