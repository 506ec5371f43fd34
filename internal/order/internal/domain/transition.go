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

// IsTerminal 终态订单不再参与任何状态流转
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransition 判定订单能否从 current 流转到 target
// 状态表只有一处和配送方式相关: 自取/堂食订单跳过配送环节,
// 不允许进入 OUT_FOR_DELIVERY 和 DELIVERED, 由 READY 直达 COMPLETED
func CanTransition(current, target OrderStatus, isPickup bool) bool {
	switch target {
	case StatusConfirmed:
		return current == StatusPending
	case StatusPreparing:
		return current == StatusConfirmed
	case StatusReady:
		return current == StatusConfirmed || current == StatusPreparing
	case StatusOutForDelivery:
		return !isPickup && current == StatusReady
	case StatusDelivered:
		return !isPickup && (current == StatusReady || current == StatusOutForDelivery)
	case StatusCompleted:
		if current == StatusReady {
			return true
		}
		return !isPickup && (current == StatusDelivered || current == StatusOutForDelivery)
	case StatusCancelled:
		return !current.IsTerminal() && current != StatusDelivered
	case StatusRefunded:
		return current == StatusCompleted || current == StatusDelivered
	default:
		return false
	}
}

// TimestampColumn 返回 target 状态对应的时间戳列名, 无对应列时返回空串
func TimestampColumn(target OrderStatus) string {
	switch target {
	case StatusConfirmed:
		return "confirmed_at"
	case StatusPreparing:
		return "preparing_at"
	case StatusReady:
		return "ready_at"
	case StatusDelivered:
		return "delivered_at"
	case StatusCompleted:
		return "completed_at"
	case StatusCancelled:
		return "cancelled_at"
	case StatusRefunded:
		return "refunded_at"
	default:
		return ""
	}
}
