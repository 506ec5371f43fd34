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

	"github.com/dabaoclub/dabao/internal/merchant/internal/domain"
	"github.com/dabaoclub/dabao/internal/merchant/internal/repository"
	"gorm.io/gorm"
)

var ErrMerchantNotFound = errors.New("商家不存在")

//go:generate mockgen -source=./service.go -package=merchantmocks -destination=../../mocks/merchant.mock.go -typed Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Merchant, error)
	FindBySN(ctx context.Context, sn string) (domain.Merchant, error)
	Create(ctx context.Context, m domain.Merchant) (int64, error)
	UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error
	UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error
}

func NewService(repo repository.MerchantRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.MerchantRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Merchant, error) {
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Merchant{}, fmt.Errorf("%w: id=%d", ErrMerchantNotFound, id)
	}
	return m, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Merchant, error) {
	m, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Merchant{}, fmt.Errorf("%w: sn=%s", ErrMerchantNotFound, sn)
	}
	return m, err
}

func (s *service) Create(ctx context.Context, m domain.Merchant) (int64, error) {
	return s.repo.Create(ctx, m)
}

func (s *service) UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error {
	return s.repo.UpdateDeliveryConfig(ctx, id, cfg)
}

func (s *service) UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error {
	return s.repo.UpdateAcceptingOrders(ctx, id, accepting)
}
