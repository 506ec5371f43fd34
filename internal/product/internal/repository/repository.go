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

package repository

import (
	"context"
	"errors"

	"github.com/dabaoclub/dabao/internal/product/internal/domain"
	"github.com/dabaoclub/dabao/internal/product/internal/repository/cache"
	"github.com/dabaoclub/dabao/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]domain.Product, error)
	// Menu 全量在售菜单, 走缓存, 上下架时失效
	Menu(ctx context.Context, merchantID int64) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, merchantID, id int64, status domain.ProductStatus) error
}

func NewRepository(d dao.ProductDAO, c cache.MenuCache) ProductRepository {
	return &productRepository{d: d, c: c, l: elog.DefaultLogger}
}

type productRepository struct {
	d dao.ProductDAO
	c cache.MenuCache
	l *elog.Component
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

func (p *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	res, err := p.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]domain.Product, error) {
	res, err := p.d.ListByMerchantID(ctx, merchantID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Menu(ctx context.Context, merchantID int64) ([]domain.Product, error) {
	cached, err := p.c.GetMenu(ctx, merchantID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMenuNotCached) {
		// 缓存故障退化为直查数据库
		p.l.Warn("读菜单缓存失败",
			elog.Int64("merchantID", merchantID),
			elog.FieldErr(err))
	}
	res, err := p.d.FindOnShelfByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	menu := slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	})
	if er := p.c.SetMenu(ctx, merchantID, menu); er != nil {
		p.l.Warn("写菜单缓存失败",
			elog.Int64("merchantID", merchantID),
			elog.FieldErr(er))
	}
	return menu, nil
}

func (p *productRepository) Create(ctx context.Context, pd domain.Product) (int64, error) {
	id, err := p.d.Create(ctx, p.toEntity(pd))
	if err != nil {
		return 0, err
	}
	p.evictMenu(ctx, pd.MerchantID)
	return id, nil
}

func (p *productRepository) UpdateStatus(ctx context.Context, merchantID, id int64, status domain.ProductStatus) error {
	err := p.d.UpdateStatus(ctx, merchantID, id, status.ToUint8())
	if err != nil {
		return err
	}
	p.evictMenu(ctx, merchantID)
	return nil
}

func (p *productRepository) evictMenu(ctx context.Context, merchantID int64) {
	if err := p.c.DelMenu(ctx, merchantID); err != nil {
		p.l.Warn("失效菜单缓存失败",
			elog.Int64("merchantID", merchantID),
			elog.FieldErr(err))
	}
}

func (p *productRepository) toDomain(e dao.Product) domain.Product {
	return domain.Product{
		ID:          e.Id,
		MerchantID:  e.MerchantId,
		SN:          e.SN,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Status:      domain.ProductStatus(e.Status),
		Variants:    e.Variants.Val,
		Ctime:       e.Ctime,
		Utime:       e.Utime,
	}
}

func (p *productRepository) toEntity(pd domain.Product) dao.Product {
	return dao.Product{
		Id:          pd.ID,
		SN:          pd.SN,
		MerchantId:  pd.MerchantID,
		Name:        pd.Name,
		Description: pd.Description,
		Price:       pd.Price,
		Status:      pd.Status.ToUint8(),
		Variants:    sqlx.JsonColumn[[]domain.VariantGroup]{Val: pd.Variants, Valid: len(pd.Variants) > 0},
	}
}
