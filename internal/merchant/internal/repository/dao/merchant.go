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

package dao

import (
	"context"
	"time"

	"github.com/dabaoclub/dabao/internal/merchant/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type MerchantDAO interface {
	FindByID(ctx context.Context, id int64) (Merchant, error)
	FindBySN(ctx context.Context, sn string) (Merchant, error)
	Create(ctx context.Context, m Merchant) (int64, error)
	UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error
	UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error
}

type MerchantGORMDAO struct {
	db *egorm.Component
}

func NewMerchantGORMDAO(db *egorm.Component) MerchantDAO {
	return &MerchantGORMDAO{db: db}
}

func (d *MerchantGORMDAO) FindByID(ctx context.Context, id int64) (Merchant, error) {
	var res Merchant
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *MerchantGORMDAO) FindBySN(ctx context.Context, sn string) (Merchant, error) {
	var res Merchant
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *MerchantGORMDAO) Create(ctx context.Context, m Merchant) (int64, error) {
	now := time.Now().UnixMilli()
	m.Ctime, m.Utime = now, now
	err := d.db.WithContext(ctx).Create(&m).Error
	return m.Id, err
}

func (d *MerchantGORMDAO) UpdateDeliveryConfig(ctx context.Context, id int64, cfg domain.DeliveryConfig) error {
	return d.db.WithContext(ctx).Model(&Merchant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"delivery_config": sqlx.JsonColumn[domain.DeliveryConfig]{Val: cfg, Valid: true},
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *MerchantGORMDAO) UpdateAcceptingOrders(ctx context.Context, id int64, accepting bool) error {
	return d.db.WithContext(ctx).Model(&Merchant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"accepting_orders": accepting,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Merchant{})
}

type Merchant struct {
	Id              int64                                  `gorm:"primaryKey;autoIncrement;comment:商家自增ID"`
	SN              string                                 `gorm:"type:varchar(255);not null;uniqueIndex:uniq_merchant_sn;comment:商家序列号"`
	Name            string                                 `gorm:"type:varchar(255);not null;comment:商家名称"`
	PayNowMobile    string                                 `gorm:"type:varchar(15);comment:PayNow收款手机号"`
	PayNowUEN       string                                 `gorm:"type:varchar(15);comment:PayNow收款UEN"`
	Status          uint8                                  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=停业 2=营业"`
	AcceptingOrders bool                                   `gorm:"not null;default:true;comment:是否接单"`
	MinimumOrder    int64                                  `gorm:"not null;default:0;comment:起送金额, 单位为分, 999表示9.99元"`
	DeliveryConfig  sqlx.JsonColumn[domain.DeliveryConfig] `gorm:"type:varchar(4096);comment:配送配置"`
	Ctime           int64
	Utime           int64
}
