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

	"github.com/dabaoclub/dabao/internal/merchant/internal/domain"
	"github.com/dabaoclub/dabao/internal/merchant/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
)

func toJSONColumn(cfg domain.DeliveryConfig) sqlx.JsonColumn[domain.DeliveryConfig] {
	return sqlx.JsonColumn[domain.DeliveryConfig]{Val: cfg, Valid: true}
}

type MerchantRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Merchant, error)
	FindBySN(ctx context.Context, sn string) (domain.Merchant, error)
	Create(ctx context.Context, m domain.Merchant) (int64, error)
	UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error
	UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error
}

func NewRepository(d dao.MerchantDAO) MerchantRepository {
	return &merchantRepository{d: d}
}

type merchantRepository struct {
	d dao.MerchantDAO
}

func (m *merchantRepository) FindByID(ctx context.Context, id int64) (domain.Merchant, error) {
	res, err := m.d.FindByID(ctx, id)
	if err != nil {
		return domain.Merchant{}, err
	}
	return m.toDomain(res), nil
}

func (m *merchantRepository) FindBySN(ctx context.Context, sn string) (domain.Merchant, error) {
	res, err := m.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Merchant{}, err
	}
	return m.toDomain(res), nil
}

func (m *merchantRepository) Create(ctx context.Context, mc domain.Merchant) (int64, error) {
	return m.d.Create(ctx, m.toEntity(mc))
}

func (m *merchantRepository) UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error {
	return m.d.UpdateDeliveryConfig(ctx, id, cfg)
}

func (m *merchantRepository) UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error {
	return m.d.UpdateAcceptingOrders(ctx, id, accepting)
}

func (m *merchantRepository) toDomain(e dao.Merchant) domain.Merchant {
	return domain.Merchant{
		ID:                e.Id,
		SN:                e.SN,
		Name:              e.Name,
		PayNowMobile:      e.PayNowMobile,
		PayNowUEN:         e.PayNowUEN,
		Status:            domain.MerchantStatus(e.Status),
		AcceptingOrders:   e.AcceptingOrders,
		MinimumOrderCents: e.MinimumOrder,
		Delivery:          e.DeliveryConfig.Val,
		Ctime:             e.Ctime,
		Utime:             e.Utime,
	}
}

func (m *merchantRepository) toEntity(mc domain.Merchant) dao.Merchant {
	return dao.Merchant{
		Id:              mc.ID,
		SN:              mc.SN,
		Name:            mc.Name,
		PayNowMobile:    mc.PayNowMobile,
		PayNowUEN:       mc.PayNowUEN,
		Status:          mc.Status.ToUint8(),
		AcceptingOrders: mc.AcceptingOrders,
		MinimumOrder:    mc.MinimumOrderCents,
		DeliveryConfig:  toJSONColumn(mc.Delivery),
	}
}
