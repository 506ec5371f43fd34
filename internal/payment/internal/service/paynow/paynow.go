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

// Package paynow 生成 EMVCo Merchant Presented Mode 格式的 PayNow 收款码内容.
// 输出是纯字符串, 渲染成二维码图片是前端的事.
package paynow

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidProxy     = errors.New("收款账号非法")
	ErrInvalidAmount    = errors.New("金额非法")
	ErrInvalidExpiry    = errors.New("失效日期非法")
	ErrReferenceTooLong = errors.New("转账备注超长")
)

const (
	// EMVCo 外层标签
	tagPayloadFormat     = "00"
	tagPointOfInitiation = "01"
	tagMerchantAccount   = "26"
	tagMerchantCategory  = "52"
	tagCurrency          = "53"
	tagAmount            = "54"
	tagCountry           = "58"
	tagMerchantName      = "59"
	tagMerchantCity      = "60"
	tagAdditionalData    = "62"
	tagCRC               = "63"

	// 标签26内的子标签
	subTagNetwork    = "00"
	subTagProxyType  = "01"
	subTagProxyValue = "02"
	subTagEditable   = "03"
	subTagExpiry     = "04"

	// 标签62内的子标签
	subTagBillReference = "01"

	paynowNetwork = "SG.PAYNOW"
	// ISO 4217, 702 = SGD
	currencySGD = "702"

	maxNameLen = 25
	// 两位十进制长度前缀决定了单个字段值的上限
	maxValueLen = 99
)

// mobileRegexp 新加坡本地手机号, 8或9开头8位, 可带+65前缀
var mobileRegexp = regexp.MustCompile(`^(\+65)?[89]\d{7}$`)

// uenRegexp 企业注册号, 9到12位大写字母数字, 以字母结尾
var uenRegexp = regexp.MustCompile(`^[0-9A-Z]{8,11}[A-Z]$`)

// expiryRegexp 失效日期只做格式校验, 不校验日历合法性
var expiryRegexp = regexp.MustCompile(`^\d{8}$`)

// Request 收款码生成入参. Mobile 和 UEN 二选一.
type Request struct {
	Mobile string
	UEN    string
	// Amount 单位为分, 0 表示让付款人自己输入金额
	Amount int64
	// Reference 转账备注, 放进标签62的子模板, 超长直接拒绝
	Reference string
	// Name 收款方展示名, 超长截断, 缺省为 NA
	Name string
	// Editable 付款人是否可修改金额
	Editable bool
	// Expiry 收款码失效日期, YYYYMMDD, 空串表示长期有效
	Expiry string
}

// Encode 生成完整的收款码内容: 按标签升序排列的 TLV 字段 + 4位大写十六进制 CRC.
// 纯计算, 同样的入参永远得到同样的输出.
func Encode(req Request) (string, error) {
	proxyType, proxyValue, err := resolveProxy(req)
	if err != nil {
		return "", err
	}
	if req.Amount < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidAmount, req.Amount)
	}
	// 备注外面还要套一层子模板, 长度上限要把子标签的4字节头算进去
	if len(tlv(subTagBillReference, req.Reference)) > maxValueLen {
		return "", fmt.Errorf("%w: %d字节", ErrReferenceTooLong, len(req.Reference))
	}

	editable := "0"
	if req.Editable {
		editable = "1"
	}
	account := tlv(subTagNetwork, paynowNetwork) +
		tlv(subTagProxyType, proxyType) +
		tlv(subTagProxyValue, proxyValue) +
		tlv(subTagEditable, editable)
	if req.Expiry != "" {
		if !expiryRegexp.MatchString(req.Expiry) {
			return "", fmt.Errorf("%w: %s", ErrInvalidExpiry, req.Expiry)
		}
		account += tlv(subTagExpiry, req.Expiry)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "NA"
	}
	if len(name) > maxNameLen {
		// 截断点退到rune边界, 不能切出半个多字节字符
		cut := maxNameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}

	fields := map[string]string{
		tagPayloadFormat:     "01",
		tagPointOfInitiation: initiationMethod(req),
		tagMerchantAccount:   account,
		tagMerchantCategory:  "0000",
		tagCurrency:          currencySGD,
		tagCountry:           "SG",
		tagMerchantName:      name,
		tagMerchantCity:      "Singapore",
	}
	// 金额为0时整个字段省略, 由付款人输入
	if req.Amount > 0 {
		fields[tagAmount] = formatAmount(req.Amount)
	}
	if req.Reference != "" {
		fields[tagAdditionalData] = tlv(subTagBillReference, req.Reference)
	}

	// 扫码端校验对标签顺序敏感, 必须按标签升序输出
	tags := make([]string, 0, len(fields))
	for tag := range fields {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var b strings.Builder
	for _, tag := range tags {
		b.WriteString(tlv(tag, fields[tag]))
	}
	// CRC 的计算范围包含 "6304" 这4个字符本身
	b.WriteString(tagCRC)
	b.WriteString("04")
	payload := b.String()
	return payload + checksum(payload), nil
}

func resolveProxy(req Request) (proxyType, proxyValue string, err error) {
	switch {
	case req.Mobile != "":
		if !mobileRegexp.MatchString(req.Mobile) {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidProxy, req.Mobile)
		}
		value := req.Mobile
		if !strings.HasPrefix(value, "+65") {
			value = "+65" + value
		}
		return "0", value, nil
	case req.UEN != "":
		if !uenRegexp.MatchString(req.UEN) {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidProxy, req.UEN)
		}
		return "2", req.UEN, nil
	default:
		return "", "", fmt.Errorf("%w: 手机号和UEN都为空", ErrInvalidProxy)
	}
}

// initiationMethod 11=静态码(可重复扫), 12=动态码(带金额一单一码)
func initiationMethod(req Request) string {
	if req.Amount > 0 {
		return "12"
	}
	return "11"
}

// formatAmount 分转成两位小数的元, 无千分位无货币符号
func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// checksum CRC16-CCITT: 多项式0x1021, 初值0xFFFF, 无最终异或,
// 输出4位大写十六进制
func checksum(payload string) string {
	crc := uint32(0xFFFF)
	for i := 0; i < len(payload); i++ {
		crc ^= uint32(payload[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
			crc &= 0xFFFF
		}
	}
	return fmt.Sprintf("%04X", crc)
}
