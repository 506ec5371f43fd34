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

package ioc

import (
	"net/http"
	"strings"

	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/middleware"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 商家后台, 全部接口要求登录, 会话里的 uid 即商家ID
func InitAdminServer(
	metrics *middleware.MetricsBuilder,
	orderAdminHdl *order.AdminHandler,
	paymentAdminHdl *payment.AdminHandler,
	productAdminHdl *product.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(metrics.Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "dabao.sg")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	orderAdminHdl.PrivateRoutes(res.Engine)
	paymentAdminHdl.PrivateRoutes(res.Engine)
	productAdminHdl.PrivateRoutes(res.Engine)
	return res
}
