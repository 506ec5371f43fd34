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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		current  OrderStatus
		target   OrderStatus
		isPickup bool
		expected bool
	}{
		{name: "待支付到已确认", current: StatusPending, target: StatusConfirmed, expected: true},
		{name: "已确认到制作中", current: StatusConfirmed, target: StatusPreparing, expected: true},
		{name: "已确认直达待取", current: StatusConfirmed, target: StatusReady, expected: true},
		{name: "制作中到待取", current: StatusPreparing, target: StatusReady, expected: true},
		{name: "待取到配送中_外送单", current: StatusReady, target: StatusOutForDelivery, expected: true},
		{name: "待取到配送中_自取单被拒", current: StatusReady, target: StatusOutForDelivery, isPickup: true, expected: false},
		{name: "配送中到已送达", current: StatusOutForDelivery, target: StatusDelivered, expected: true},
		{name: "待取直达已送达_外送单", current: StatusReady, target: StatusDelivered, expected: true},
		{name: "待取到已送达_自取单被拒", current: StatusReady, target: StatusDelivered, isPickup: true, expected: false},
		{name: "自取单待取直达完成", current: StatusReady, target: StatusCompleted, isPickup: true, expected: true},
		{name: "已送达到完成", current: StatusDelivered, target: StatusCompleted, expected: true},
		{name: "配送中到完成", current: StatusOutForDelivery, target: StatusCompleted, expected: true},
		{name: "跳过确认直接待取被拒", current: StatusPending, target: StatusReady, expected: false},
		{name: "跳过确认直接制作被拒", current: StatusPending, target: StatusPreparing, expected: false},
		{name: "待支付可取消", current: StatusPending, target: StatusCancelled, expected: true},
		{name: "制作中可取消", current: StatusPreparing, target: StatusCancelled, expected: true},
		{name: "配送中可取消", current: StatusOutForDelivery, target: StatusCancelled, expected: true},
		{name: "已完成不可取消", current: StatusCompleted, target: StatusCancelled, expected: false},
		{name: "已取消不可再取消", current: StatusCancelled, target: StatusCancelled, expected: false},
		{name: "已送达不可取消_走退款", current: StatusDelivered, target: StatusCancelled, expected: false},
		{name: "已完成可退款", current: StatusCompleted, target: StatusRefunded, expected: true},
		{name: "已送达可退款", current: StatusDelivered, target: StatusRefunded, expected: true},
		{name: "制作中不可退款", current: StatusPreparing, target: StatusRefunded, expected: false},
		{name: "退款后不可确认", current: StatusRefunded, target: StatusConfirmed, expected: false},
		{name: "倒退到待支付被拒", current: StatusConfirmed, target: StatusPending, expected: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.current, tc.target, tc.isPickup))
		})
	}
}

// 自取订单的合法主路径不经过配送环节
func TestPickupHappyPath(t *testing.T) {
	path := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted}
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, CanTransition(path[i], path[i+1], true), "%d -> %d", path[i], path[i+1])
	}
}

// 外送订单的合法主路径
func TestDeliveryHappyPath(t *testing.T) {
	path := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered, StatusCompleted}
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, CanTransition(path[i], path[i+1], false), "%d -> %d", path[i], path[i+1])
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
}

func TestTimestampColumn(t *testing.T) {
	assert.Equal(t, "confirmed_at", TimestampColumn(StatusConfirmed))
	assert.Equal(t, "cancelled_at", TimestampColumn(StatusCancelled))
	assert.Equal(t, "", TimestampColumn(StatusPending))
}
