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
	"github.com/dabaoclub/dabao/internal/product/internal/domain"
	"github.com/dabaoclub/dabao/internal/product/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 商家菜单管理, 会话里的 Uid 即商家ID
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/merchant/product")
	g.POST("/create", ginx.BS[CreateProductReq](h.Create))
	g.POST("/status", ginx.BS[UpdateProductStatusReq](h.UpdateStatus))
	g.POST("/list", ginx.BS[ListProductsReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateProductReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Product{
		MerchantID:  sess.Claims().Uid,
		SN:          shortuuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      domain.StatusOnShelf,
		Variants: slice.Map(req.Variants, func(idx int, src VariantGroup) domain.VariantGroup {
			return domain.VariantGroup{Name: src.Name, Options: src.Options}
		}),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateProductResp{ID: id}}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateProductStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid,
		req.ID, domain.ProductStatus(req.Status))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq, sess session.Session) (ginx.Result, error) {
	products, err := h.svc.ListByMerchantID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}
