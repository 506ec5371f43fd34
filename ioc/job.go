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

package ioc

import (
	"context"
	"time"

	"github.com/dabaoclub/dabao/internal/order"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCancelExpiredOrdersJob(svc order.Service) *order.CancelExpiredOrdersJob {
	type Config struct {
		Limit   int           `yaml:"limit"`
		Timeout time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("job.cancelExpiredOrders", &cfg)
	if err != nil {
		panic(err)
	}
	return order.NewCancelExpiredOrdersJob(svc, cfg.Limit, cfg.Timeout)
}

func initCronJobs(oJob *order.CancelExpiredOrdersJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.cancelExpiredOrders").Build(ecron.WithJob(funcJobWrapper(oJob))),
	}
}

type namedJob interface {
	Name() string
	Run() error
}

func funcJobWrapper(job namedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run()
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldCost(duration))
		return nil
	}
}
