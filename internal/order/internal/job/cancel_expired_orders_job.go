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

package job

import (
	"context"
	"fmt"
	"time"
)

type cancelExpiredService interface {
	CancelExpiredPending(ctx context.Context, limit int) (int64, error)
}

// CancelExpiredOrdersJob 定时取消超过支付截止时间仍未支付的订单
type CancelExpiredOrdersJob struct {
	svc     cancelExpiredService
	limit   int
	timeout time.Duration
}

func NewCancelExpiredOrdersJob(svc cancelExpiredService, limit int, timeout time.Duration) *CancelExpiredOrdersJob {
	return &CancelExpiredOrdersJob{svc: svc, limit: limit, timeout: timeout}
}

func (c *CancelExpiredOrdersJob) Name() string {
	return "CancelExpiredOrdersJob"
}

func (c *CancelExpiredOrdersJob) Run() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), c.timeout)
	defer cancelFunc()
	for {
		cancelled, err := c.svc.CancelExpiredPending(ctx, c.limit)
		if err != nil {
			return fmt.Errorf("取消超时订单失败: %w", err)
		}
		// 不足一批说明已经取消完了
		if cancelled < int64(c.limit) {
			break
		}
	}
	return nil
}
