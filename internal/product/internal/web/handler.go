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
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 门店页菜单, 无需登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/menu", ginx.B[MenuReq](h.Menu))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Menu(ctx *ginx.Context, req MenuReq) (ginx.Result, error) {
	products, err := h.svc.Menu(ctx.Request.Context(), req.MerchantID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: MenuResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}
