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

// Package middleware gin 的公共中间件.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder HTTP 请求的耗时和次数打点.
// promauto 不允许重复注册, 整个进程只能构造一次, 两个服务共用.
type MetricsBuilder struct {
	durationVec *prometheus.SummaryVec
	requestVec  *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return &MetricsBuilder{
		durationVec: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: "dabao",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP 请求耗时",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		requestVec: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dabao",
				Name:      "http_requests_total",
				Help:      "HTTP 请求总数",
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.durationVec.WithLabelValues(method, path, statusCode).
			Observe(time.Since(start).Seconds())
		b.requestVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
