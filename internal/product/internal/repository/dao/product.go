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

	"github.com/dabaoclub/dabao/internal/product/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]Product, error)
	// FindOnShelfByMerchantID 全量在售菜单, 给门店页用, 不分页
	FindOnShelfByMerchantID(ctx context.Context, merchantID int64) ([]Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	UpdateStatus(ctx context.Context, merchantID, id int64, status uint8) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, domain.StatusOnShelf.ToUint8()).
		Find(&res).Error
	return res, err
}

// ListByMerchantID 商家管理自己的菜单, 下架的也要列出来
func (d *ProductGORMDAO) ListByMerchantID(ctx context.Context, merchantID int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindOnShelfByMerchantID(ctx context.Context, merchantID int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("merchant_id = ? AND status = ?", merchantID, domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, merchantID, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Product{})
}

type Product struct {
	Id          int64                                   `gorm:"primaryKey;autoIncrement;comment:菜品自增ID"`
	SN          string                                  `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:菜品序列号"`
	MerchantId  int64                                   `gorm:"not null;index:idx_merchant_id;comment:商家自增ID"`
	Name        string                                  `gorm:"type:varchar(255);not null;comment:菜品名称"`
	Description string                                  `gorm:"not null;comment:菜品描述"`
	Price       int64                                   `gorm:"not null;comment:菜品单价, 单位为分, 999表示9.99元"`
	Status      uint8                                   `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Variants    sqlx.JsonColumn[[]domain.VariantGroup]  `gorm:"type:varchar(2048);comment:规格组"`
	Ctime       int64
	Utime       int64
}
