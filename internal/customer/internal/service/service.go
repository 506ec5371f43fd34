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

	"github.com/dabaoclub/dabao/internal/customer/internal/domain"
	"github.com/dabaoclub/dabao/internal/customer/internal/repository"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("地址不存在")

//go:generate mockgen -source=./service.go -package=customermocks -destination=../../mocks/customer.mock.go -typed Service
type Service interface {
	// ResolveByContact 按手机号找回顾客, 不存在则创建, 存在则刷新联系人快照
	ResolveByContact(ctx context.Context, name, phone, email string) (domain.Customer, error)
	CreateAddress(ctx context.Context, a domain.Address) (int64, error)
	FindAddressByID(ctx context.Context, id int64) (domain.Address, error)
}

func NewService(repo repository.CustomerRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CustomerRepository
}

func (s *service) ResolveByContact(ctx context.Context, name, phone, email string) (domain.Customer, error) {
	id, err := s.repo.Upsert(ctx, domain.Customer{Name: name, Phone: phone, Email: email})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("顾客落库失败: %w", err)
	}
	return domain.Customer{ID: id, Name: name, Phone: phone, Email: email}, nil
}

func (s *service) CreateAddress(ctx context.Context, a domain.Address) (int64, error) {
	return s.repo.CreateAddress(ctx, a)
}

func (s *service) FindAddressByID(ctx context.Context, id int64) (domain.Address, error) {
	a, err := s.repo.FindAddressByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Address{}, fmt.Errorf("%w: id=%d", ErrAddressNotFound, id)
	}
	return a, err
}
