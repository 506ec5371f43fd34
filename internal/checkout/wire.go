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

//go:build wireinject

package checkout

import (
	"github.com/dabaoclub/dabao/internal/checkout/internal/repository"
	"github.com/dabaoclub/dabao/internal/checkout/internal/service"
	"github.com/dabaoclub/dabao/internal/checkout/internal/web"
	"github.com/dabaoclub/dabao/internal/customer"
	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/sequencenumber"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

var ModuleSet = wire.NewSet(
	repository.NewSessionRepository,
	sequencenumber.NewGenerator,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"))

func InitModule(cmd redis.Cmdable,
	merchantSvc merchant.Service,
	productSvc product.Service,
	customerSvc customer.Service,
	orderSvc order.Service,
	paymentSvc payment.Service) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}
