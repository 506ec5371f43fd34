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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dabaoclub/dabao/internal/product/internal/domain"
	"github.com/dabaoclub/dabao/internal/product/internal/repository"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("菜品不存在或已下架")

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	// FindByIDs 返回指定商家名下在售的菜品, 任一ID缺失或不属于该商家即报错
	FindByIDs(ctx context.Context, merchantID int64, ids []int64) ([]domain.Product, error)
	ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]domain.Product, error)
	// Menu 门店页的全量在售菜单, 走缓存
	Menu(ctx context.Context, merchantID int64) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, merchantID, id int64, status domain.ProductStatus) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

func (s *service) FindByIDs(ctx context.Context, merchantID int64, ids []int64) ([]domain.Product, error) {
	ps, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := make(map[int64]domain.Product, len(ps))
	for _, p := range ps {
		found[p.ID] = p
	}
	res := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := found[id]
		if !ok || p.MerchantID != merchantID {
			return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
		}
		res = append(res, p)
	}
	return res, nil
}

func (s *service) ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]domain.Product, error) {
	return s.repo.ListByMerchantID(ctx, merchantID, offset, limit)
}

func (s *service) Menu(ctx context.Context, merchantID int64) ([]domain.Product, error) {
	return s.repo.Menu(ctx, merchantID)
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Create(ctx, p)
}

func (s *service) UpdateStatus(ctx context.Context, merchantID, id int64, status domain.ProductStatus) error {
	return s.repo.UpdateStatus(ctx, merchantID, id, status)
}
