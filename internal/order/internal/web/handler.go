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
	"errors"

	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/dabaoclub/dabao/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 顾客侧接口, 无需登录, 订单号+手机号查单
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/track", ginx.B[TrackOrderReq](h.TrackOrder))
	g.POST("/list", ginx.B[ListMyOrdersReq](h.List))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// TrackOrder 订单号和手机号必须同时匹配, 不匹配时不暴露订单号是否存在
func (h *Handler) TrackOrder(ctx *ginx.Context, req TrackOrderReq) (ginx.Result, error) {
	order, err := h.svc.TrackOrder(ctx.Request.Context(), req.OrderSN, req.Phone)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TrackOrderResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListMyOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListByPhone(ctx.Request.Context(), req.Phone, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}
