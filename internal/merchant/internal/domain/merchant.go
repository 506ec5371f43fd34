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

type MerchantStatus uint8

func (s MerchantStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	MerchantStatusSuspended MerchantStatus = 1
	MerchantStatusActive    MerchantStatus = 2
)

type FeePolicy uint8

func (p FeePolicy) ToUint8() uint8 {
	return uint8(p)
}

const (
	FeePolicyFlat     FeePolicy = 1
	FeePolicyZone     FeePolicy = 2
	FeePolicyDistance FeePolicy = 3
	FeePolicyFree     FeePolicy = 4
)

// ZoneRates 邮区档位费率, 单位为分
type ZoneRates struct {
	SameCents     int64 `json:"sameCents"`
	AdjacentCents int64 `json:"adjacentCents"`
	CrossCents    int64 `json:"crossCents"`
	SpecialCents  int64 `json:"specialCents"`
}

// DistanceTier 距离阶梯, 超过阈值即叠加附加费
type DistanceTier struct {
	ThresholdKM    float64 `json:"thresholdKM"`
	SurchargeCents int64   `json:"surchargeCents"`
}

// DeliveryConfig 商家配送配置
type DeliveryConfig struct {
	EnableDelivery bool `json:"enableDelivery"`
	EnablePickup   bool `json:"enablePickup"`
	EnableDineIn   bool `json:"enableDineIn"`

	Policy       FeePolicy `json:"policy"`
	FlatFeeCents int64     `json:"flatFeeCents"`
	// Zone 策略
	Zone ZoneRates `json:"zone"`
	// SpecialSectors 按特殊档计费的邮区编号, 例如离岛
	SpecialSectors []string `json:"specialSectors"`
	// Distance 策略: 基础费覆盖首个阈值以内, 各阶梯附加费按序叠加
	BaseFeeCents int64          `json:"baseFeeCents"`
	PerKMCents   int64          `json:"perKMCents"`
	Tiers        []DistanceTier `json:"tiers"`
	// FreeThresholdCents 满额免配送费, 0 表示未配置
	FreeThresholdCents int64 `json:"freeThresholdCents"`

	RadiusKM   float64 `json:"radiusKM"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	PostalCode string  `json:"postalCode"`
}

type Merchant struct {
	ID   int64
	SN   string
	Name string
	// PayNow 收款标识, 手机号和UEN至少其一
	PayNowMobile string
	PayNowUEN    string

	Status          MerchantStatus
	AcceptingOrders bool
	// MinimumOrderCents 起送金额, 单位为分
	MinimumOrderCents int64
	Delivery          DeliveryConfig

	Ctime int64
	Utime int64
}
