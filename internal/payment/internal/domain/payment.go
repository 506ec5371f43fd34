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

package domain

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending    PaymentStatus = 1
	PaymentStatusProcessing PaymentStatus = 2
	PaymentStatusCompleted  PaymentStatus = 3
	PaymentStatusFailed     PaymentStatus = 4
)

type PaymentChannel uint8

func (c PaymentChannel) ToUint8() uint8 {
	return uint8(c)
}

const (
	// ChannelPayNowQR 扫码转账, 商家人工核对到账
	ChannelPayNowQR PaymentChannel = 1
	// ChannelCash 到店现金, 不生成收款码
	ChannelCash PaymentChannel = 2
)

// Payment 一笔 PayNow 收款记录, 和订单一对一
type Payment struct {
	ID         int64
	SN         string
	OrderID    int64
	OrderSN    string
	MerchantID int64
	// Amount 应收金额, 单位为分
	Amount  int64
	Channel PaymentChannel
	Status  PaymentStatus
	// TxnID 商家核对银行流水后填入的交易参考号
	TxnID string
	// Reference 给付款人看的转账备注, 嵌入二维码
	Reference string
	// QRCode EMVCo 格式的收款码内容, 前端负责渲染成图片
	QRCode string
	// FailureReason 商家拒绝时的人读原因
	FailureReason string
	PaidAt        int64
	VerifiedBy    int64
	Ctime         int64
	Utime         int64
}
