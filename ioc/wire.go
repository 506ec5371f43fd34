//go:build wireinject

package ioc

import (
	"github.com/dabaoclub/dabao/internal/checkout"
	"github.com/dabaoclub/dabao/internal/customer"
	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/middleware"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		InitSNGenerator,
		middleware.NewMetricsBuilder,
		merchant.InitModule,
		wire.FieldsOf(new(*merchant.Module), "Svc"),
		customer.InitModule,
		wire.FieldsOf(new(*customer.Module), "Svc"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Svc", "Hdl", "AdminHdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Svc", "Hdl", "AdminHdl"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Svc", "Hdl", "AdminHdl"),
		checkout.InitModule,
		wire.FieldsOf(new(*checkout.Module), "Hdl"),
		initCancelExpiredOrdersJob,
		initCronJobs,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
