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

package merchant

import (
	"github.com/dabaoclub/dabao/internal/merchant/internal/domain"
	"github.com/dabaoclub/dabao/internal/merchant/internal/service"
)

type (
	Merchant       = domain.Merchant
	DeliveryConfig = domain.DeliveryConfig
	ZoneRates      = domain.ZoneRates
	DistanceTier   = domain.DistanceTier
	FeePolicy      = domain.FeePolicy
	Service        = service.Service
)

const (
	StatusSuspended = domain.MerchantStatusSuspended
	StatusActive    = domain.MerchantStatusActive

	FeePolicyFlat     = domain.FeePolicyFlat
	FeePolicyZone     = domain.FeePolicyZone
	FeePolicyDistance = domain.FeePolicyDistance
	FeePolicyFree     = domain.FeePolicyFree
)

var ErrMerchantNotFound = service.ErrMerchantNotFound

type Module struct {
	Svc Service
}
