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

package paynow

import (
	"sort"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTLV 把payload拆成(标签, 值)序列, 用于结构断言
func parseTLV(t *testing.T, payload string) []struct{ Tag, Value string } {
	t.Helper()
	var fields []struct{ Tag, Value string }
	for i := 0; i < len(payload); {
		require.True(t, i+4 <= len(payload), "字段头不完整: %s", payload[i:])
		tag := payload[i : i+2]
		length, err := strconv.Atoi(payload[i+2 : i+4])
		require.NoError(t, err)
		require.True(t, i+4+length <= len(payload), "字段值不完整: tag=%s", tag)
		fields = append(fields, struct{ Tag, Value string }{tag, payload[i+4 : i+4+length]})
		i += 4 + length
	}
	return fields
}

func findTag(fields []struct{ Tag, Value string }, tag string) (string, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return "", false
}

// TestChecksum CRC16-CCITT 的标准校验值
func TestChecksum(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "29B1", checksum("123456789"))
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()
	req := Request{Mobile: "91234567", Amount: 1234, Reference: "DABAO123", Name: "Ah Hock Kitchen"}
	first, err := Encode(req)
	require.NoError(t, err)
	second, err := Encode(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_ChecksumSelfConsistent(t *testing.T) {
	t.Parallel()
	payload, err := Encode(Request{Mobile: "91234567", Amount: 1234})
	require.NoError(t, err)
	require.True(t, len(payload) > 4)
	assert.Equal(t, payload[len(payload)-4:], checksum(payload[:len(payload)-4]))
}

func TestEncode_TagsAscending(t *testing.T) {
	t.Parallel()
	payload, err := Encode(Request{UEN: "201912345A", Amount: 990, Reference: "REF1", Name: "Dabao Club"})
	require.NoError(t, err)
	fields := parseTLV(t, payload)
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, f.Tag)
	}
	assert.True(t, sort.StringsAreSorted(tags), "标签必须升序: %v", tags)
	// CRC 永远是最后一个字段
	assert.Equal(t, "63", tags[len(tags)-1])
}

func TestEncode_AmountField(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		amount     int64
		wantAmount string
		wantMethod string
	}{
		{name: "零金额省略字段_静态码", amount: 0, wantAmount: "", wantMethod: "11"},
		{name: "整数金额", amount: 1000, wantAmount: "10.00", wantMethod: "12"},
		{name: "带分金额", amount: 1234, wantAmount: "12.34", wantMethod: "12"},
		{name: "不足一元", amount: 5, wantAmount: "0.05", wantMethod: "12"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			payload, err := Encode(Request{Mobile: "91234567", Amount: tc.amount})
			require.NoError(t, err)
			fields := parseTLV(t, payload)
			amount, ok := findTag(fields, "54")
			if tc.wantAmount == "" {
				assert.False(t, ok, "金额为0时不应出现标签54")
			} else {
				require.True(t, ok)
				assert.Equal(t, tc.wantAmount, amount)
			}
			method, ok := findTag(fields, "01")
			require.True(t, ok)
			assert.Equal(t, tc.wantMethod, method)
		})
	}
}

func TestEncode_MerchantAccount(t *testing.T) {
	t.Parallel()
	t.Run("手机号自动补+65前缀", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{Mobile: "81234567"})
		require.NoError(t, err)
		account, ok := findTag(parseTLV(t, payload), "26")
		require.True(t, ok)
		sub := parseTLV(t, account)
		network, _ := findTag(sub, "00")
		assert.Equal(t, "SG.PAYNOW", network)
		proxyType, _ := findTag(sub, "01")
		assert.Equal(t, "0", proxyType)
		proxyValue, _ := findTag(sub, "02")
		assert.Equal(t, "+6581234567", proxyValue)
	})
	t.Run("UEN收款", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{UEN: "201912345A", Editable: true})
		require.NoError(t, err)
		account, ok := findTag(parseTLV(t, payload), "26")
		require.True(t, ok)
		sub := parseTLV(t, account)
		proxyType, _ := findTag(sub, "01")
		assert.Equal(t, "2", proxyType)
		proxyValue, _ := findTag(sub, "02")
		assert.Equal(t, "201912345A", proxyValue)
		editable, _ := findTag(sub, "03")
		assert.Equal(t, "1", editable)
	})
}

func TestEncode_InvalidInput(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "手机号7开头", req: Request{Mobile: "71234567"}, wantErr: ErrInvalidProxy},
		{name: "手机号位数不对", req: Request{Mobile: "9123456"}, wantErr: ErrInvalidProxy},
		{name: "手机号混入字母", req: Request{Mobile: "9123456A"}, wantErr: ErrInvalidProxy},
		{name: "UEN小写", req: Request{UEN: "201912345a"}, wantErr: ErrInvalidProxy},
		{name: "账号全空", req: Request{}, wantErr: ErrInvalidProxy},
		{name: "负金额", req: Request{Mobile: "91234567", Amount: -1}, wantErr: ErrInvalidAmount},
		{name: "有效期带分隔符", req: Request{Mobile: "91234567", Expiry: "2026-12-31"}, wantErr: ErrInvalidExpiry},
		{name: "有效期位数不对", req: Request{Mobile: "91234567", Expiry: "202612"}, wantErr: ErrInvalidExpiry},
		{name: "备注超长", req: Request{Mobile: "91234567", Reference: strings.Repeat("A", 96)}, wantErr: ErrReferenceTooLong},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Encode(tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEncode_Name(t *testing.T) {
	t.Parallel()
	t.Run("缺省为NA", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{Mobile: "91234567"})
		require.NoError(t, err)
		name, ok := findTag(parseTLV(t, payload), "59")
		require.True(t, ok)
		assert.Equal(t, "NA", name)
	})
	t.Run("超长截断到25", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{Mobile: "91234567", Name: strings.Repeat("X", 40)})
		require.NoError(t, err)
		name, ok := findTag(parseTLV(t, payload), "59")
		require.True(t, ok)
		assert.Equal(t, strings.Repeat("X", 25), name)
	})
	t.Run("多字节名截断不切半个字符", func(t *testing.T) {
		t.Parallel()
		// 每个汉字3字节, 10个共30字节, 截断只能落在24字节处
		payload, err := Encode(Request{Mobile: "91234567", Name: strings.Repeat("叻", 10)})
		require.NoError(t, err)
		name, ok := findTag(parseTLV(t, payload), "59")
		require.True(t, ok)
		assert.Equal(t, strings.Repeat("叻", 8), name)
		assert.True(t, utf8.ValidString(name))
		assert.LessOrEqual(t, len(name), 25)
	})
}

func TestEncode_Expiry(t *testing.T) {
	t.Parallel()
	t.Run("缺省不带有效期", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{Mobile: "91234567"})
		require.NoError(t, err)
		account, ok := findTag(parseTLV(t, payload), "26")
		require.True(t, ok)
		_, ok = findTag(parseTLV(t, account), "04")
		assert.False(t, ok, "未设置有效期时不应出现子标签04")
	})
	t.Run("设置有效期", func(t *testing.T) {
		t.Parallel()
		payload, err := Encode(Request{Mobile: "91234567", Expiry: "20261231"})
		require.NoError(t, err)
		account, ok := findTag(parseTLV(t, payload), "26")
		require.True(t, ok)
		expiry, ok := findTag(parseTLV(t, account), "04")
		require.True(t, ok)
		assert.Equal(t, "20261231", expiry)
	})
}

func TestEncode_Reference(t *testing.T) {
	t.Parallel()
	payload, err := Encode(Request{Mobile: "91234567", Reference: "DB7F3K9Q2M1X"})
	require.NoError(t, err)
	additional, ok := findTag(parseTLV(t, payload), "62")
	require.True(t, ok)
	ref, ok := findTag(parseTLV(t, additional), "01")
	require.True(t, ok)
	assert.Equal(t, "DB7F3K9Q2M1X", ref)
}
