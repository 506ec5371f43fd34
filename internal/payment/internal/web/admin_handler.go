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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 商家侧核销/拒绝接口, 会话里的 Uid 即商家ID
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/merchant/payment")
	g.POST("/detail", ginx.BS[RetrievePaymentDetailReq](h.Detail))
	g.POST("/verify", ginx.BS[VerifyPaymentReq](h.Verify))
	g.POST("/reject", ginx.BS[RejectPaymentReq](h.Reject))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrievePaymentDetailReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.FindByOrderSN(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return paymentNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if pmt.MerchantID != sess.Claims().Uid {
		return paymentNotFoundResult, nil
	}
	return ginx.Result{Data: toPaymentVO(pmt)}, nil
}

func (h *AdminHandler) Verify(ctx *ginx.Context, req VerifyPaymentReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.Verify(ctx.Request.Context(), sess.Claims().Uid,
		req.OrderSN, req.Amount, req.TxnID, sess.Claims().Uid)
	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, nil
	case errors.Is(err, service.ErrTransitionConflict):
		return transitionConflictResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toPaymentVO(pmt)}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req RejectPaymentReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.Reject(ctx.Request.Context(), sess.Claims().Uid,
		req.OrderSN, req.Reason, sess.Claims().Uid)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return paymentNotFoundResult, nil
	case errors.Is(err, service.ErrTransitionConflict):
		return transitionConflictResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toPaymentVO(pmt)}, nil
}
