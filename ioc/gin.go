package ioc

import (
	"net/http"
	"strings"

	"github.com/dabaoclub/dabao/internal/checkout"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/middleware"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

// initGinxServer 顾客侧门店接口, 全部公开, 靠订单号+手机号双因子保护查单
func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	checkoutHdl *checkout.Handler,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	productHdl *product.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(metrics.Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
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
	productHdl.PublicRoutes(res.Engine)
	checkoutHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)
	paymentHdl.PublicRoutes(res.Engine)
	return res
}
