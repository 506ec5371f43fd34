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

	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 顾客侧接口, 取收款码用订单号+手机号双因子,
// 不泄露订单号是否存在
type Handler struct {
	svc      service.Service
	orderSvc order.Service
}

func NewHandler(svc service.Service, orderSvc order.Service) *Handler {
	return &Handler{svc: svc, orderSvc: orderSvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/qr", ginx.B[RetrieveQRReq](h.RetrieveQR))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) RetrieveQR(ctx *ginx.Context, req RetrieveQRReq) (ginx.Result, error) {
	// 先过订单号+手机号校验, 再取支付记录
	_, err := h.orderSvc.TrackOrder(ctx.Request.Context(), req.OrderSN, req.Phone)
	if errors.Is(err, order.ErrOrderNotFound) {
		return paymentNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	pmt, err := h.svc.FindByOrderSN(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return paymentNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveQRResp{
			QRCode:    pmt.QRCode,
			Reference: pmt.Reference,
			Amount:    pmt.Amount,
		},
	}, nil
}
