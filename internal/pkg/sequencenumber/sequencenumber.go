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

package sequencenumber

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// 订单号与支付参考号只允许大写字母和数字,
// 参考号会被嵌入 PayNow 二维码的账单号字段, 扫码后原样展示给付款人

// TimestampGenerateFunc 定义生成时间戳的函数类型
type TimestampGenerateFunc func(time.Time) int64

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

const (
	orderSNLength        = 24
	referenceTokenLength = 12
)

// Generator 包含时间和UUID生成函数
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

// NewGenerator 创建一个Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, func() string { return shortuuid.New() })
}

// Generate 使用商家ID生成订单号, 固定24位, 仅含大写字母与数字
// 时间戳的36进制编码 + 商家ID后四位 + (uuid 凑够位数)
func (s *Generator) Generate(id int64) (string, error) {
	timestamp := s.timestampGenFunc(time.Now())
	encoded := strings.ToUpper(strconv.FormatInt(timestamp, 36))
	lastFour := fmt.Sprintf("%04d", id%10000)
	uuid := strings.ToUpper(s.shortUUIDGenFunc())
	sn := encoded + lastFour + uuid
	if len(sn) < orderSNLength {
		return "", fmt.Errorf("订单号长度不足: %s", sn)
	}
	return sn[:orderSNLength], nil
}

// GenerateToken 生成支付参考号, 固定12位, 仅含大写字母与数字
func (s *Generator) GenerateToken() (string, error) {
	token := strings.ToUpper(s.shortUUIDGenFunc())
	if len(token) < referenceTokenLength {
		return "", fmt.Errorf("参考号长度不足: %s", token)
	}
	return token[:referenceTokenLength], nil
}
