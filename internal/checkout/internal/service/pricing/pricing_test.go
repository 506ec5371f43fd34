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

package pricing

import (
	"testing"

	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	t.Parallel()
	t.Run("正常求和", func(t *testing.T) {
		t.Parallel()
		got, err := Subtotal([]Line{
			{UnitPrice: 450, Quantity: 2},
			{UnitPrice: 1200, Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2100), got)
	})
	t.Run("幂等", func(t *testing.T) {
		t.Parallel()
		lines := []Line{{UnitPrice: 990, Quantity: 3}, {UnitPrice: 150, Quantity: 2}}
		first, err := Subtotal(lines)
		require.NoError(t, err)
		second, err := Subtotal(lines)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
	t.Run("数量为0拒绝", func(t *testing.T) {
		t.Parallel()
		_, err := Subtotal([]Line{{UnitPrice: 100, Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidLine)
	})
	t.Run("负单价拒绝", func(t *testing.T) {
		t.Parallel()
		_, err := Subtotal([]Line{{UnitPrice: -1, Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidLine)
	})
}

func TestDeliveryFee_FreeThreshold(t *testing.T) {
	t.Parallel()
	cfg := merchant.DeliveryConfig{
		Policy:             merchant.FeePolicyFlat,
		FlatFeeCents:       350,
		FreeThresholdCents: 3000,
	}
	t.Run("刚好到阈值免费", func(t *testing.T) {
		t.Parallel()
		fee, err := DeliveryFee(3000, FeeInput{Config: cfg})
		require.NoError(t, err)
		assert.Equal(t, int64(0), fee)
	})
	t.Run("差一分钱收全额", func(t *testing.T) {
		t.Parallel()
		fee, err := DeliveryFee(2999, FeeInput{Config: cfg})
		require.NoError(t, err)
		assert.Equal(t, int64(350), fee)
	})
	t.Run("自取永远免费", func(t *testing.T) {
		t.Parallel()
		fee, err := DeliveryFee(100, FeeInput{Pickup: true, Config: cfg})
		require.NoError(t, err)
		assert.Equal(t, int64(0), fee)
	})
}

func TestDeliveryFee_Zone(t *testing.T) {
	t.Parallel()
	cfg := merchant.DeliveryConfig{
		Policy: merchant.FeePolicyZone,
		Zone: merchant.ZoneRates{
			SameCents:     200,
			AdjacentCents: 400,
			CrossCents:    800,
			SpecialCents:  1500,
		},
		SpecialSectors: []string{"09"},
		PostalCode:     "520123",
	}
	testCases := []struct {
		name    string
		postal  string
		wantFee int64
	}{
		{name: "同邮区", postal: "521456", wantFee: 200},
		{name: "邻区", postal: "550000", wantFee: 400},
		{name: "跨区", postal: "120000", wantFee: 800},
		{name: "特殊邮区优先", postal: "098765", wantFee: 1500},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fee, err := DeliveryFee(1000, FeeInput{Config: cfg, CustomerPostal: tc.postal})
			require.NoError(t, err)
			assert.Equal(t, tc.wantFee, fee)
		})
	}
	t.Run("非法邮编报错", func(t *testing.T) {
		t.Parallel()
		_, err := DeliveryFee(1000, FeeInput{Config: cfg, CustomerPostal: "abc"})
		assert.Error(t, err)
	})
}

func TestDeliveryFee_DistanceTiersAdditive(t *testing.T) {
	t.Parallel()
	cfg := merchant.DeliveryConfig{
		Policy:       merchant.FeePolicyDistance,
		BaseFeeCents: 300,
		PerKMCents:   50,
		// 故意乱序, 计算前应当按阈值排序
		Tiers: []merchant.DistanceTier{
			{ThresholdKM: 8, SurchargeCents: 400},
			{ThresholdKM: 3, SurchargeCents: 200},
		},
	}
	testCases := []struct {
		name       string
		distanceKM float64
		wantFee    int64
	}{
		{name: "首档内只收基础费和公里费", distanceKM: 2, wantFee: 300 + 50*2},
		{name: "过一档叠加一档", distanceKM: 5, wantFee: 300 + 50*5 + 200},
		{name: "过两档叠加两档", distanceKM: 10, wantFee: 300 + 50*10 + 200 + 400},
		{name: "恰好在阈值上不叠加", distanceKM: 3, wantFee: 300 + 50*3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fee, err := DeliveryFee(1000, FeeInput{Config: cfg, DistanceKM: tc.distanceKM})
			require.NoError(t, err)
			assert.Equal(t, tc.wantFee, fee)
		})
	}
}

func TestNewQuote(t *testing.T) {
	t.Parallel()
	t.Run("汇总公式", func(t *testing.T) {
		t.Parallel()
		q := NewQuote(2000, 350, 100, 50)
		assert.Equal(t, Quote{
			Subtotal:    2000,
			DeliveryFee: 350,
			Discount:    100,
			Tax:         50,
			Total:       2300,
		}, q)
	})
	t.Run("负优惠置0", func(t *testing.T) {
		t.Parallel()
		q := NewQuote(1000, 0, -500, 0)
		assert.Equal(t, int64(0), q.Discount)
		assert.Equal(t, int64(1000), q.Total)
	})
	t.Run("总额下限0", func(t *testing.T) {
		t.Parallel()
		q := NewQuote(100, 0, 500, 0)
		assert.Equal(t, int64(0), q.Total)
	})
}
