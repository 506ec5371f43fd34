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

package web

import "github.com/dabaoclub/dabao/internal/payment/internal/domain"

// RetrieveQRReq 顾客取收款码, 订单号+手机号双因子
type RetrieveQRReq struct {
	OrderSN string `json:"sn"`
	Phone   string `json:"phone"`
}

type RetrieveQRResp struct {
	QRCode    string `json:"qrCode"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

// VerifyPaymentReq 商家核销
type VerifyPaymentReq struct {
	OrderSN string `json:"sn"`
	Amount  int64  `json:"amount"`
	TxnID   string `json:"txnID"`
}

// RejectPaymentReq 商家拒绝
type RejectPaymentReq struct {
	OrderSN string `json:"sn"`
	Reason  string `json:"reason"`
}

type RetrievePaymentDetailReq struct {
	OrderSN string `json:"sn"`
}

type Payment struct {
	SN            string `json:"sn"`
	OrderSN       string `json:"orderSN"`
	Amount        int64  `json:"amount"`
	Channel       uint8  `json:"channel"`
	Status        uint8  `json:"status"`
	TxnID         string `json:"txnID,omitempty"`
	Reference     string `json:"reference"`
	QRCode        string `json:"qrCode,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
	PaidAt        int64  `json:"paidAt,omitempty"`
	Ctime         int64  `json:"ctime"`
}

func toPaymentVO(src domain.Payment) Payment {
	return Payment{
		SN:            src.SN,
		OrderSN:       src.OrderSN,
		Amount:        src.Amount,
		Channel:       src.Channel.ToUint8(),
		Status:        src.Status.ToUint8(),
		TxnID:         src.TxnID,
		Reference:     src.Reference,
		QRCode:        src.QRCode,
		FailureReason: src.FailureReason,
		PaidAt:        src.PaidAt,
		Ctime:         src.Ctime,
	}
}
