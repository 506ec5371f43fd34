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

	"github.com/dabaoclub/dabao/internal/customer/internal/domain"
	"github.com/dabaoclub/dabao/internal/customer/internal/repository/dao"
)

type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (domain.Customer, error)
	Upsert(ctx context.Context, c domain.Customer) (int64, error)
	CreateAddress(ctx context.Context, a domain.Address) (int64, error)
	FindAddressByID(ctx context.Context, id int64) (domain.Address, error)
}

func NewRepository(d dao.CustomerDAO) CustomerRepository {
	return &customerRepository{d: d}
}

type customerRepository struct {
	d dao.CustomerDAO
}

func (c *customerRepository) FindByPhone(ctx context.Context, phone string) (domain.Customer, error) {
	res, err := c.d.FindByPhone(ctx, phone)
	if err != nil {
		return domain.Customer{}, err
	}
	return c.toDomain(res), nil
}

func (c *customerRepository) Upsert(ctx context.Context, cu domain.Customer) (int64, error) {
	return c.d.Upsert(ctx, dao.Customer{
		Id:    cu.ID,
		Name:  cu.Name,
		Phone: cu.Phone,
		Email: cu.Email,
	})
}

func (c *customerRepository) CreateAddress(ctx context.Context, a domain.Address) (int64, error) {
	return c.d.CreateAddress(ctx, dao.Address{
		Id:         a.ID,
		CustomerId: a.CustomerID,
		Line1:      a.Line1,
		Line2:      a.Line2,
		PostalCode: a.PostalCode,
		Lat:        a.Lat,
		Lng:        a.Lng,
	})
}

func (c *customerRepository) FindAddressByID(ctx context.Context, id int64) (domain.Address, error) {
	res, err := c.d.FindAddressByID(ctx, id)
	if err != nil {
		return domain.Address{}, err
	}
	return domain.Address{
		ID:         res.Id,
		CustomerID: res.CustomerId,
		Line1:      res.Line1,
		Line2:      res.Line2,
		PostalCode: res.PostalCode,
		Lat:        res.Lat,
		Lng:        res.Lng,
		Ctime:      res.Ctime,
		Utime:      res.Utime,
	}, nil
}

func (c *customerRepository) toDomain(e dao.Customer) domain.Customer {
	return domain.Customer{
		ID:    e.Id,
		Name:  e.Name,
		Phone: e.Phone,
		Email: e.Email,
		Ctime: e.Ctime,
		Utime: e.Utime,
	}
}
