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

	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment/internal/domain"
	"github.com/dabaoclub/dabao/internal/payment/internal/event"
	"github.com/dabaoclub/dabao/internal/payment/internal/repository"
	"github.com/dabaoclub/dabao/internal/payment/internal/repository/dao"
	"github.com/dabaoclub/dabao/internal/payment/internal/service/paynow"
	"github.com/dabaoclub/dabao/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound    = errors.New("支付记录不存在")
	ErrTransitionConflict = errors.New("订单状态冲突")
	ErrInvalidPayee       = paynow.ErrInvalidProxy
)

const snPrefix = "PMT"

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CreatePayment 为订单生成一条待支付记录和对应的收款码.
	// 收款账号取自商家配置, 手机号和UEN都没配时报错.
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// Verify 商家核对到账后核销, 支付和订单在同一事务内更新.
	// 重复核销会撞上订单状态冲突, 不保证幂等.
	Verify(ctx context.Context, merchantID int64, orderSN string, amount int64, txnID string, actor int64) (domain.Payment, error)
	// Reject 商家拒绝支付凭证, 订单取消, 支付记录缺失时容忍
	Reject(ctx context.Context, merchantID int64, orderSN string, reason string, actor int64) (domain.Payment, error)
}

func NewService(repo repository.PaymentRepository,
	merchantSvc merchant.Service,
	orderSvc order.Service,
	producer event.PaymentEventProducer,
	snGenerator *snowflake.Generator) Service {
	return &service{
		repo:        repo,
		merchantSvc: merchantSvc,
		orderSvc:    orderSvc,
		producer:    producer,
		snGenerator: snGenerator,
		l:           elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.PaymentRepository
	merchantSvc merchant.Service
	orderSvc    order.Service
	producer    event.PaymentEventProducer
	snGenerator *snowflake.Generator
	l           *elog.Component
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if pmt.Channel == 0 {
		pmt.Channel = domain.ChannelPayNowQR
	}
	// 现金单不生成收款码, 商家收到钱后照常走核销
	if pmt.Channel == domain.ChannelPayNowQR {
		m, err := s.merchantSvc.FindByID(ctx, pmt.MerchantID)
		if err != nil {
			return domain.Payment{}, fmt.Errorf("查找商家失败: %w", err)
		}
		qr, err := paynow.Encode(paynow.Request{
			Mobile:    m.PayNowMobile,
			UEN:       m.PayNowUEN,
			Amount:    pmt.Amount,
			Reference: pmt.Reference,
			Name:      m.Name,
		})
		if err != nil {
			return domain.Payment{}, fmt.Errorf("生成收款码失败: %w", err)
		}
		pmt.QRCode = qr
	}
	pmt.SN = s.snGenerator.Generate(snPrefix)
	pmt.Status = domain.PaymentStatusPending
	return s.repo.Create(ctx, pmt)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: sn=%s", ErrPaymentNotFound, sn)
	}
	return pmt, err
}

func (s *service) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := s.repo.FindByOrderSN(ctx, orderSN)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: orderSN=%s", ErrPaymentNotFound, orderSN)
	}
	return pmt, err
}

func (s *service) Verify(ctx context.Context, merchantID int64, orderSN string, amount int64, txnID string, actor int64) (domain.Payment, error) {
	// 订单必须属于操作的商家
	o, err := s.orderSvc.FindBySNAndMerchantID(ctx, orderSN, merchantID)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt, err := s.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.OrderID = o.ID
	err = s.repo.Verify(ctx, pmt, amount, txnID, actor)
	if errors.Is(err, dao.ErrTransitionConflict) {
		return domain.Payment{}, fmt.Errorf("%w: 订单已不在待支付状态", ErrTransitionConflict)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.Status = domain.PaymentStatusCompleted
	pmt.Amount = amount
	pmt.TxnID = txnID
	pmt.VerifiedBy = actor
	s.produce(ctx, pmt, "payment_verified")
	return pmt, nil
}

func (s *service) Reject(ctx context.Context, merchantID int64, orderSN string, reason string, actor int64) (domain.Payment, error) {
	o, err := s.orderSvc.FindBySNAndMerchantID(ctx, orderSN, merchantID)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt, err := s.FindByOrderSN(ctx, orderSN)
	if errors.Is(err, ErrPaymentNotFound) {
		// 顾客没走到生成支付那一步也允许商家直接拒单
		pmt = domain.Payment{OrderSN: orderSN, MerchantID: merchantID}
	} else if err != nil {
		return domain.Payment{}, err
	}
	pmt.OrderID = o.ID
	err = s.repo.Reject(ctx, pmt, reason, actor)
	if errors.Is(err, dao.ErrTransitionConflict) {
		return domain.Payment{}, fmt.Errorf("%w: 订单已不在待支付状态", ErrTransitionConflict)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.Status = domain.PaymentStatusFailed
	pmt.FailureReason = reason
	s.produce(ctx, pmt, "payment_rejected")
	return pmt, nil
}

func (s *service) produce(ctx context.Context, pmt domain.Payment, kind string) {
	evt := event.PaymentEvent{
		PaymentSN:  pmt.SN,
		OrderSN:    pmt.OrderSN,
		MerchantID: pmt.MerchantID,
		Amount:     pmt.Amount,
		Status:     pmt.Status.ToUint8(),
		Kind:       kind,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		// 消息发送失败只记录, 不影响主流程
		s.l.Warn("发送支付事件失败",
			elog.String("orderSN", pmt.OrderSN),
			elog.FieldErr(err))
	}
}
