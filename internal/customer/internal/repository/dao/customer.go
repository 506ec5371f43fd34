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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerDAO interface {
	FindByPhone(ctx context.Context, phone string) (Customer, error)
	Upsert(ctx context.Context, c Customer) (int64, error)
	CreateAddress(ctx context.Context, a Address) (int64, error)
	FindAddressByID(ctx context.Context, id int64) (Address, error)
}

type CustomerGORMDAO struct {
	db *egorm.Component
}

func NewCustomerGORMDAO(db *egorm.Component) CustomerDAO {
	return &CustomerGORMDAO{db: db}
}

func (d *CustomerGORMDAO) FindByPhone(ctx context.Context, phone string) (Customer, error) {
	var res Customer
	err := d.db.WithContext(ctx).Where("phone = ?", phone).First(&res).Error
	return res, err
}

// Upsert 以手机号为唯一键, 已存在则刷新姓名和邮箱快照
func (d *CustomerGORMDAO) Upsert(ctx context.Context, c Customer) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":  c.Name,
			"email": c.Email,
			"utime": now,
		}),
	}).Create(&c).Error
	if err != nil {
		return 0, err
	}
	if c.Id != 0 {
		return c.Id, nil
	}
	// MySQL 的 upsert 命中更新分支时不回填自增ID
	existing, err := d.FindByPhone(ctx, c.Phone)
	return existing.Id, err
}

func (d *CustomerGORMDAO) CreateAddress(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := d.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (d *CustomerGORMDAO) FindAddressByID(ctx context.Context, id int64) (Address, error) {
	var res Address
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Customer{}, &Address{})
}

type Customer struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:顾客自增ID"`
	Name  string `gorm:"type:varchar(255);not null;comment:顾客姓名"`
	Phone string `gorm:"type:varchar(15);not null;uniqueIndex:uniq_customer_phone;comment:顾客手机号"`
	Email string `gorm:"type:varchar(255);comment:顾客邮箱"`
	Ctime int64
	Utime int64
}

type Address struct {
	Id         int64   `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	CustomerId int64   `gorm:"not null;index:idx_address_customer_id;comment:顾客自增ID"`
	Line1      string  `gorm:"type:varchar(255);not null;comment:地址第一行"`
	Line2      string  `gorm:"type:varchar(255);comment:地址第二行"`
	PostalCode string  `gorm:"type:varchar(6);not null;comment:邮编"`
	Lat        float64 `gorm:"comment:纬度"`
	Lng        float64 `gorm:"comment:经度"`
	Ctime      int64
	Utime      int64
}
