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

package product

import (
	"sync"

	"github.com/dabaoclub/dabao/internal/product/internal/repository"
	"github.com/dabaoclub/dabao/internal/product/internal/repository/cache"
	"github.com/dabaoclub/dabao/internal/product/internal/repository/dao"
	"github.com/dabaoclub/dabao/internal/product/internal/service"
	"github.com/dabaoclub/dabao/internal/product/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	cache.NewMenuCache,
	repository.NewRepository,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
