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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 商家侧接口, 会话里的 Uid 即商家ID
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/merchant/order")
	g.POST("/list", ginx.BS[ListOrdersReq](h.List))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.Detail))
	g.POST("/status", ginx.BS[UpdateOrderStatusReq](h.UpdateStatus))
	g.POST("/status/bulk", ginx.BS[BulkUpdateOrderStatusReq](h.BulkUpdateStatus))
	g.POST("/item/prepared", ginx.BS[MarkItemPreparedReq](h.MarkItemPrepared))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByMerchantID(ctx.Request.Context(), sess.Claims().Uid,
		domain.OrderStatus(req.Status), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	merchantID := sess.Claims().Uid
	order, err := h.svc.FindBySNAndMerchantID(ctx.Request.Context(), req.OrderSN, merchantID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	events, err := h.svc.FindEvents(ctx.Request.Context(), merchantID, req.OrderSN)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: toOrderVO(order),
			Events: slice.Map(events, func(idx int, src domain.OrderEvent) OrderEvent {
				return OrderEvent{
					Kind:    src.Kind,
					Payload: src.Payload,
					Ctime:   src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid,
		req.OrderSN, domain.OrderStatus(req.Status), sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if errors.Is(err, service.ErrInvalidTransition) {
		return invalidTransitionResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UpdateOrderStatusResp{Order: toOrderVO(order)},
	}, nil
}

func (h *AdminHandler) BulkUpdateStatus(ctx *ginx.Context, req BulkUpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.BulkUpdateStatus(ctx.Request.Context(), sess.Claims().Uid,
		req.OrderSNs, domain.OrderStatus(req.Status), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BulkUpdateOrderStatusResp{
			SuccessCount: res.SuccessCount,
			TotalCount:   res.TotalCount,
			Failures: slice.Map(res.Failures, func(idx int, src service.BulkFailure) BulkFailure {
				return BulkFailure{OrderSN: src.OrderSN, Reason: src.Reason}
			}),
		},
	}, nil
}

func (h *AdminHandler) MarkItemPrepared(ctx *ginx.Context, req MarkItemPreparedReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkItemPrepared(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN, req.ItemID, req.Prepared)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
