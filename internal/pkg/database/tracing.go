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

// Package database 数据库层的公共基础设施.
package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "github.com/dabaoclub/dabao/internal/pkg/database"

const spanKey = "otel:span"

// GormTracingPlugin 给每次库操作开一个 client span,
// 挂在请求的 context 上, 和 HTTP 层的链路串起来
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	register := func(op, callback string) error {
		cb := db.Callback()
		var before, after interface {
			Register(string, func(*gorm.DB)) error
		}
		switch op {
		case "SELECT":
			before, after = cb.Query().Before(callback), cb.Query().After(callback)
		case "INSERT":
			before, after = cb.Create().Before(callback), cb.Create().After(callback)
		case "UPDATE":
			before, after = cb.Update().Before(callback), cb.Update().After(callback)
		case "DELETE":
			before, after = cb.Delete().Before(callback), cb.Delete().After(callback)
		case "RAW":
			before, after = cb.Raw().Before(callback), cb.Raw().After(callback)
		}
		if err := before.Register("otel:before:"+op, p.startSpan(op)); err != nil {
			return err
		}
		return after.Register("otel:after:"+op, p.endSpan)
	}
	for op, callback := range map[string]string{
		"SELECT": "gorm:query",
		"INSERT": "gorm:create",
		"UPDATE": "gorm:update",
		"DELETE": "gorm:delete",
		"RAW":    "gorm:raw",
	} {
		if err := register(op, callback); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) startSpan(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement != nil && db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		ctx, span := p.tracer.Start(ctx,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.operation", op)))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *GormTracingPlugin) endSpan(db *gorm.DB) {
	val, ok := db.Get(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	if db.Statement.RowsAffected > 0 {
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attrs...)
	// 查不到记录是正常业务路径, 不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
