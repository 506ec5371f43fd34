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

	"github.com/dabaoclub/dabao/internal/payment/internal/domain"
	"github.com/dabaoclub/dabao/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	Verify(ctx context.Context, pmt domain.Payment, amount int64, txnID string, actor int64) error
	Reject(ctx context.Context, pmt domain.Payment, reason string, actor int64) error
}

func NewRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{d: d}
}

type paymentRepository struct {
	d dao.PaymentDAO
}

func (p *paymentRepository) Create(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	id, err := p.d.Create(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (p *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := p.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := p.d.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) Verify(ctx context.Context, pmt domain.Payment, amount int64, txnID string, actor int64) error {
	return p.d.Verify(ctx, p.toEntity(pmt), amount, txnID, actor)
}

func (p *paymentRepository) Reject(ctx context.Context, pmt domain.Payment, reason string, actor int64) error {
	return p.d.Reject(ctx, p.toEntity(pmt), reason, actor)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:            pmt.ID,
		SN:            pmt.SN,
		OrderId:       pmt.OrderID,
		OrderSN:       pmt.OrderSN,
		MerchantId:    pmt.MerchantID,
		Amount:        pmt.Amount,
		Channel:       pmt.Channel.ToUint8(),
		Status:        pmt.Status.ToUint8(),
		TxnId:         pmt.TxnID,
		Reference:     pmt.Reference,
		QRCode:        pmt.QRCode,
		FailureReason: pmt.FailureReason,
		PaidAt:        pmt.PaidAt,
		VerifiedBy:    pmt.VerifiedBy,
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:            pmt.Id,
		SN:            pmt.SN,
		OrderID:       pmt.OrderId,
		OrderSN:       pmt.OrderSN,
		MerchantID:    pmt.MerchantId,
		Amount:        pmt.Amount,
		Channel:       domain.PaymentChannel(pmt.Channel),
		Status:        domain.PaymentStatus(pmt.Status),
		TxnID:         pmt.TxnId,
		Reference:     pmt.Reference,
		QRCode:        pmt.QRCode,
		FailureReason: pmt.FailureReason,
		PaidAt:        pmt.PaidAt,
		VerifiedBy:    pmt.VerifiedBy,
		Ctime:         pmt.Ctime,
		Utime:         pmt.Utime,
	}
}
