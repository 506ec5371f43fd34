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
	"fmt"

	"github.com/dabaoclub/dabao/internal/checkout/internal/domain"
	"github.com/dabaoclub/dabao/internal/checkout/internal/errs"
	"github.com/dabaoclub/dabao/internal/checkout/internal/service"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 顾客结账接口, 不要求登录, 靠会话ID串起整个流程
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/checkout")
	g.POST("/create", ginx.B[CreateSessionReq](h.Create))
	g.POST("/detail", ginx.B[RetrieveSessionReq](h.Detail))
	g.POST("/complete", ginx.B[CompleteSessionReq](h.Complete))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateSessionReq) (ginx.Result, error) {
	sess, err := h.svc.Create(ctx.Request.Context(), req.MerchantID,
		slice.Map(req.Items, func(idx int, src Item) domain.ItemDraft {
			return domain.ItemDraft{
				ProductID: src.ProductID,
				Quantity:  src.Quantity,
				Variant:   src.Variant,
				Note:      src.Note,
			}
		}))
	switch {
	case errors.Is(err, service.ErrMerchantNotAvailable):
		return merchantNotAvailableResult, nil
	case errors.Is(err, product.ErrProductNotFound):
		return productNotFoundResult, nil
	case errors.Is(err, service.ErrMinimumOrderNotMet):
		// 把具体未达标金额带给前端展示
		return ginx.Result{
			Code: errs.MinimumOrderNotMet.Code,
			Msg:  fmt.Sprintf("%s: %s", errs.MinimumOrderNotMet.Msg, err.Error()),
		}, nil
	case errors.Is(err, service.ErrInvalidItems):
		return ginx.Result{
			Code: errs.ProductNotFound.Code,
			Msg:  err.Error(),
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SessionResp{Session: toSessionVO(sess)}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req RetrieveSessionReq) (ginx.Result, error) {
	sess, err := h.svc.Get(ctx.Request.Context(), req.SessionID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	case errors.Is(err, service.ErrSessionExpired):
		return sessionExpiredResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SessionResp{Session: toSessionVO(sess)}}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req CompleteSessionReq) (ginx.Result, error) {
	var addr *service.AddressInput
	if req.Address != nil {
		addr = &service.AddressInput{
			Line1:      req.Address.Line1,
			Line2:      req.Address.Line2,
			PostalCode: req.Address.PostalCode,
			Lat:        req.Address.Lat,
			Lng:        req.Address.Lng,
		}
	}
	res, err := h.svc.Complete(ctx.Request.Context(), req.SessionID, service.Contact{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}, addr)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, nil
	case errors.Is(err, service.ErrSessionExpired):
		return sessionExpiredResult, nil
	case errors.Is(err, service.ErrSessionCompleted):
		return sessionCompletedResult, nil
	case errors.Is(err, service.ErrMethodNotAvailable):
		return methodNotAvailableResult, nil
	case errors.Is(err, service.ErrOutsideDeliveryArea):
		return outsideDeliveryAreaResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CompleteSessionResp{
			OrderSN:         res.OrderSN,
			ReferenceToken:  res.ReferenceToken,
			QRCode:          res.QRCode,
			Total:           res.Total,
			PaymentDeadline: res.PaymentDeadline,
		},
	}, nil
}
