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
	"errors"
	"time"

	"github.com/dabaoclub/dabao/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateSN 订单序列号撞了唯一索引
var ErrDuplicateSN = errors.New("订单序列号重复")

type OrderDAO interface {
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (Order, error)
	FindBySNAndPhone(ctx context.Context, sn string, phone string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByMerchantID(ctx context.Context, merchantID int64, status uint8, offset, limit int) ([]Order, error)
	CountByMerchantID(ctx context.Context, merchantID int64, status uint8) (int64, error)
	ListByPhone(ctx context.Context, phone string, offset, limit int) ([]Order, error)
	CountByPhone(ctx context.Context, phone string) (int64, error)
	// UpdateStatus 乐观并发控制: 仅当当前状态仍为 currentStatus 时更新,
	// 返回受影响行数, 0 行说明状态已被并发修改
	UpdateStatus(ctx context.Context, id int64, currentStatus, targetStatus uint8, timestampColumn string, actor int64) (int64, error)
	UpdateItemPrepared(ctx context.Context, orderID, itemID int64, prepared bool) error
	AppendEvent(ctx context.Context, evt OrderEvent) error
	FindEventsByOrderID(ctx context.Context, orderID int64) ([]OrderEvent, error)
	ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]Order, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

// CreateOrder 订单主记录+订单项+建单事件在同一事务内落库
func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Create(&OrderEvent{
			OrderId: o.Id,
			Kind:    "order_created",
			Payload: "{}",
			Ctime:   now,
		}).Error
	})
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateSN
		}
	}
	return o.Id, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndMerchantID(ctx context.Context, sn string, merchantID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND merchant_id = ?", sn, merchantID).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndPhone(ctx context.Context, sn string, phone string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND contact_phone = ?", sn, phone).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByMerchantID(ctx context.Context, merchantID int64, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	query := d.db.WithContext(ctx).Where("merchant_id = ?", merchantID)
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByMerchantID(ctx context.Context, merchantID int64, status uint8) (int64, error) {
	var res int64
	query := d.db.WithContext(ctx).Model(&Order{}).Where("merchant_id = ?", merchantID)
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByPhone(ctx context.Context, phone string, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("contact_phone = ?", phone).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByPhone(ctx context.Context, phone string) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("contact_phone = ?", phone).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, currentStatus, targetStatus uint8, timestampColumn string, actor int64) (int64, error) {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status": targetStatus,
		"utime":  now,
	}
	if timestampColumn != "" {
		updates[timestampColumn] = now
	}
	// confirmed_by 只记录确认订单的操作者, 其他状态变更不动它
	if actor != 0 && targetStatus == domain.StatusConfirmed.ToUint8() {
		updates["confirmed_by"] = actor
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, currentStatus).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (d *OrderGORMDAO) UpdateItemPrepared(ctx context.Context, orderID, itemID int64, prepared bool) error {
	return d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Updates(map[string]any{
			"prepared": prepared,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) AppendEvent(ctx context.Context, evt OrderEvent) error {
	evt.Ctime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Create(&evt).Error
}

func (d *OrderGORMDAO) FindEventsByOrderID(ctx context.Context, orderID int64) ([]OrderEvent, error) {
	var res []OrderEvent
	err := d.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND payment_deadline > 0 AND payment_deadline < ?", domain.StatusPending.ToUint8(), deadline).
		Order("ctime ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Order{}, &OrderItem{}, &OrderEvent{})
}

type Order struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	MerchantId int64  `gorm:"not null;index:idx_order_merchant_id;comment:商家自增ID"`
	CustomerId int64  `gorm:"not null;index:idx_order_customer_id;comment:顾客自增ID"`

	Status         uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待支付 2=已确认 3=制作中 4=待取 5=配送中 6=已送达 7=已完成 8=已取消 9=已退款"`
	DeliveryMethod uint8 `gorm:"type:tinyint unsigned;not null;comment:履约方式 1=外送 2=自取 3=堂食"`
	PaymentStatus  uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=处理中 3=已完成 4=已失败"`

	Subtotal    int64 `gorm:"not null;comment:商品小计, 单位为分, 999表示9.99元"`
	DeliveryFee int64 `gorm:"not null;default:0;comment:配送费, 单位为分"`
	Discount    int64 `gorm:"not null;default:0;comment:优惠金额, 单位为分"`
	Tax         int64 `gorm:"not null;default:0;comment:税费, 单位为分"`
	Total       int64 `gorm:"not null;comment:应付总额, 单位为分"`

	ContactName       string `gorm:"type:varchar(255);not null;comment:联系人姓名快照"`
	ContactPhone      string `gorm:"type:varchar(15);not null;index:idx_order_contact_phone;comment:联系人手机号快照"`
	ContactEmail      string `gorm:"type:varchar(255);comment:联系人邮箱快照"`
	DeliveryAddressId int64  `gorm:"not null;default:0;comment:配送地址ID, 0表示自取/堂食"`
	Notes             string `gorm:"type:varchar(1024);comment:订单备注"`

	ReferenceToken  string `gorm:"type:varchar(25);not null;comment:付款参考号"`
	PaymentDeadline int64  `gorm:"not null;default:0;comment:支付截止时间"`

	ConfirmedAt int64 `gorm:"not null;default:0;comment:确认时间"`
	PreparingAt int64 `gorm:"not null;default:0;comment:开始制作时间"`
	ReadyAt     int64 `gorm:"not null;default:0;comment:出餐时间"`
	DeliveredAt int64 `gorm:"not null;default:0;comment:送达时间"`
	CompletedAt int64 `gorm:"not null;default:0;comment:完成时间"`
	CancelledAt int64 `gorm:"not null;default:0;comment:取消时间"`
	RefundedAt  int64 `gorm:"not null;default:0;comment:退款时间"`
	ConfirmedBy int64 `gorm:"not null;default:0;comment:核销操作者ID"`

	Ctime int64
	Utime int64
}

type OrderItem struct {
	Id        int64                              `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64                              `gorm:"not null;index:idx_order_item_order_id;comment:订单自增ID"`
	ProductId int64                              `gorm:"not null;comment:菜品自增ID"`
	Name      string                             `gorm:"type:varchar(255);not null;comment:菜品名称快照"`
	Price     int64                              `gorm:"not null;comment:菜品单价快照, 单位为分"`
	Quantity  int64                              `gorm:"not null;comment:购买数量"`
	LineTotal int64                              `gorm:"not null;comment:行小计, 单位为分"`
	Variant   sqlx.JsonColumn[map[string]string] `gorm:"type:varchar(1024);comment:规格选择"`
	Note      string                             `gorm:"type:varchar(512);comment:单品备注"`
	Prepared  bool                               `gorm:"not null;default:false;comment:后厨是否已备餐"`
	Ctime     int64
	Utime     int64
}

// OrderEvent 只追加的订单审计表
type OrderEvent struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:事件自增ID"`
	OrderId int64  `gorm:"not null;index:idx_order_event_order_id;comment:订单自增ID"`
	Kind    string `gorm:"type:varchar(64);not null;comment:事件类型"`
	Payload string `gorm:"type:varchar(2048);not null;default:'{}';comment:事件内容"`
	Ctime   int64
}
