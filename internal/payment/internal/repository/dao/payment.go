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
	"encoding/json"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrTransitionConflict 订单不在待支付状态, 核销/拒绝没有生效
var ErrTransitionConflict = errors.New("订单状态冲突")

// 订单表的状态值, 必须和订单模块保持一致
const (
	orderStatusPending   uint8 = 1
	orderStatusConfirmed uint8 = 2
	orderStatusCancelled uint8 = 8

	orderPaymentCompleted uint8 = 3
	orderPaymentFailed    uint8 = 4
)

type PaymentDAO interface {
	Create(ctx context.Context, pmt Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	// Verify 核销: 支付记录置为已完成, 订单从待支付推进到已确认,
	// 外加一条审计事件, 三张表在同一事务内落库
	Verify(ctx context.Context, pmt Payment, amount int64, txnID string, actor int64) error
	// Reject 拒绝: 支付记录置为失败(允许缺失), 订单取消, 外加审计事件
	Reject(ctx context.Context, pmt Payment, reason string, actor int64) error
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (d *PaymentGORMDAO) Create(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := d.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (d *PaymentGORMDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) Verify(ctx context.Context, pmt Payment, amount int64, txnID string, actor int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 条件更新兜底并发: 只有仍处于待支付的订单才会被确认
		res := tx.Table("orders").
			Where("id = ? AND status = ?", pmt.OrderId, orderStatusPending).
			Updates(map[string]any{
				"status":         orderStatusConfirmed,
				"payment_status": orderPaymentCompleted,
				"confirmed_at":   now,
				"confirmed_by":   actor,
				"utime":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransitionConflict
		}
		err := tx.Model(&Payment{}).
			Where("id = ?", pmt.Id).
			Updates(map[string]any{
				"status":      PaymentStatusCompleted,
				"amount":      amount,
				"txn_id":      txnID,
				"paid_at":     now,
				"verified_by": actor,
				"utime":       now,
			}).Error
		if err != nil {
			return err
		}
		return d.appendOrderEvent(tx, pmt.OrderId, "payment_verified", map[string]any{
			"paymentID": pmt.Id,
			"txnID":     txnID,
			"amount":    amount,
			"actor":     actor,
		}, now)
	})
}

func (d *PaymentGORMDAO) Reject(ctx context.Context, pmt Payment, reason string, actor int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Table("orders").
			Where("id = ? AND status = ?", pmt.OrderId, orderStatusPending).
			Updates(map[string]any{
				"status":         orderStatusCancelled,
				"payment_status": orderPaymentFailed,
				"cancelled_at":   now,
				"utime":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransitionConflict
		}
		if pmt.Id != 0 {
			err := tx.Model(&Payment{}).
				Where("id = ?", pmt.Id).
				Updates(map[string]any{
					"status":         PaymentStatusFailed,
					"failure_reason": reason,
					"utime":          now,
				}).Error
			if err != nil {
				return err
			}
		}
		return d.appendOrderEvent(tx, pmt.OrderId, "payment_rejected", map[string]any{
			"paymentID": pmt.Id,
			"reason":    reason,
			"actor":     actor,
		}, now)
	})
}

func (d *PaymentGORMDAO) appendOrderEvent(tx *gorm.DB, orderID int64, kind string, payload map[string]any, now int64) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Table("order_events").Create(map[string]any{
		"order_id": orderID,
		"kind":     kind,
		"payload":  string(data),
		"ctime":    now,
	}).Error
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Payment{})
}

// 支付记录自身的状态值
const (
	PaymentStatusPending   uint8 = 1
	PaymentStatusCompleted uint8 = 3
	PaymentStatusFailed    uint8 = 4
)

type Payment struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderId    int64  `gorm:"not null;index:idx_payment_order_id;comment:订单自增ID"`
	OrderSN    string `gorm:"type:varchar(255);not null;index:idx_payment_order_sn;comment:订单序列号"`
	MerchantId int64  `gorm:"not null;index:idx_payment_merchant_id;comment:商家自增ID"`

	Amount  int64 `gorm:"not null;comment:应收金额, 单位为分, 999表示9.99元"`
	Channel uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:支付渠道 1=PayNow扫码 2=现金"`
	Status  uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=处理中 3=已完成 4=已失败"`

	TxnId         string `gorm:"type:varchar(255);comment:银行流水参考号"`
	Reference     string `gorm:"type:varchar(25);not null;comment:转账备注"`
	QRCode        string `gorm:"type:varchar(512);not null;comment:收款码内容"`
	FailureReason string `gorm:"type:varchar(512);comment:拒绝原因"`

	PaidAt     int64 `gorm:"not null;default:0;comment:到账确认时间"`
	VerifiedBy int64 `gorm:"not null;default:0;comment:核销操作者ID"`

	Ctime int64
	Utime int64
}
