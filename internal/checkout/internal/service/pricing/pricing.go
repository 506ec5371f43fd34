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

// Package pricing 订单金额的唯一计算口径. 纯函数, 无IO,
// 会话创建和订单落库时各算一次, 同样的入参必须得到同样的结果.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/pkg/geo"
)

var (
	ErrInvalidLine      = errors.New("订单行非法")
	ErrUnknownFeePolicy = errors.New("未知的配送费策略")
)

type Line struct {
	// UnitPrice 单位为分
	UnitPrice int64
	Quantity  int64
}

type Quote struct {
	Subtotal    int64
	DeliveryFee int64
	Discount    int64
	Tax         int64
	Total       int64
}

// Subtotal 各行小计之和. 优惠在订单层面算, 不摊到行上.
func Subtotal(lines []Line) (int64, error) {
	var subtotal int64
	for _, line := range lines {
		if line.UnitPrice < 0 || line.Quantity < 1 {
			return 0, fmt.Errorf("%w: 单价%d 数量%d", ErrInvalidLine, line.UnitPrice, line.Quantity)
		}
		subtotal += line.UnitPrice * line.Quantity
	}
	return subtotal, nil
}

// FeeInput 配送费计算入参. 自取/堂食传 Pickup=true, 其余字段忽略.
type FeeInput struct {
	Pickup bool
	Config merchant.DeliveryConfig
	// DistanceKM 商家到收货地址的大圆距离, Distance 策略用
	DistanceKM float64
	// CustomerPostal 收货地址邮编, Zone 策略用
	CustomerPostal string
}

// DeliveryFee 解析配送费: 自取为0, 满免配送费阈值为0,
// 其余按商家配置的策略计算
func DeliveryFee(subtotal int64, in FeeInput) (int64, error) {
	if in.Pickup {
		return 0, nil
	}
	cfg := in.Config
	if cfg.FreeThresholdCents > 0 && subtotal >= cfg.FreeThresholdCents {
		return 0, nil
	}
	switch cfg.Policy {
	case merchant.FeePolicyFree:
		return 0, nil
	case merchant.FeePolicyFlat:
		return cfg.FlatFeeCents, nil
	case merchant.FeePolicyZone:
		return zoneFee(cfg, in.CustomerPostal)
	case merchant.FeePolicyDistance:
		return distanceFee(cfg, in.DistanceKM), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFeePolicy, cfg.Policy)
	}
}

// zoneFee 邮区档位: 特殊邮区 > 同区 > 邻区 > 跨区, 互斥取一档
func zoneFee(cfg merchant.DeliveryConfig, customerPostal string) (int64, error) {
	if len(customerPostal) >= 2 {
		sector := customerPostal[:2]
		for _, special := range cfg.SpecialSectors {
			if sector == special {
				return cfg.Zone.SpecialCents, nil
			}
		}
	}
	d, err := geo.SectorDistance(cfg.PostalCode, customerPostal)
	if err != nil {
		return 0, err
	}
	switch {
	case d == 0:
		return cfg.Zone.SameCents, nil
	case d <= 3:
		return cfg.Zone.AdjacentCents, nil
	default:
		return cfg.Zone.CrossCents, nil
	}
}

// distanceFee 基础费+按公里计费, 距离每越过一个阶梯阈值就叠加该档附加费.
// 阶梯是累加的, 不是取最高匹配档.
func distanceFee(cfg merchant.DeliveryConfig, distanceKM float64) int64 {
	fee := cfg.BaseFeeCents + cfg.PerKMCents*int64(math.Ceil(distanceKM))
	tiers := make([]merchant.DistanceTier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].ThresholdKM < tiers[j].ThresholdKM
	})
	for _, tier := range tiers {
		if distanceKM > tier.ThresholdKM {
			fee += tier.SurchargeCents
		}
	}
	return fee
}

// NewQuote 汇总: 负优惠和负税置0, 总额下限0
func NewQuote(subtotal, deliveryFee, discount, tax int64) Quote {
	if discount < 0 {
		discount = 0
	}
	if tax < 0 {
		tax = 0
	}
	total := subtotal + deliveryFee + tax - discount
	if total < 0 {
		total = 0
	}
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Tax:         tax,
		Total:       total,
	}
}
