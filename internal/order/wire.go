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

package order

import (
	"sync"

	"github.com/dabaoclub/dabao/internal/order/internal/event"
	"github.com/dabaoclub/dabao/internal/order/internal/repository"
	"github.com/dabaoclub/dabao/internal/order/internal/repository/dao"
	"github.com/dabaoclub/dabao/internal/order/internal/service"
	"github.com/dabaoclub/dabao/internal/order/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	event.NewOrderEventProducer,
	repository.NewRepository,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
