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

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		expected               float64
	}{
		{
			name: "同一点",
			lat1: 1.3521, lng1: 103.8198,
			lat2: 1.3521, lng2: 103.8198,
			expected: 0,
		},
		{
			name: "乌节路到樟宜机场",
			lat1: 1.3048, lng1: 103.8318,
			lat2: 1.3644, lng2: 103.9915,
			expected: 19.0,
		},
		{
			name: "赤道上经度相差一度",
			lat1: 0, lng1: 103,
			lat2: 0, lng2: 104,
			expected: 111.2,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Haversine(tc.lat1, tc.lng1, tc.lat2, tc.lng2), 0.3)
		})
	}
}

func TestHaversineRounding(t *testing.T) {
	// 结果固定保留一位小数
	d := Haversine(1.3048, 103.8318, 1.3644, 103.9915)
	assert.Equal(t, d, float64(int(d*10))/10)
}

func TestSectorDistance(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "同邮区", a: "018956", b: "018935", expected: 0},
		{name: "相邻邮区", a: "018956", b: "039594", expected: 2},
		{name: "跨邮区", a: "018956", b: "819643", expected: 80},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d, err := SectorDistance(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestSectorDistanceInvalid(t *testing.T) {
	_, err := SectorDistance("1234", "018956")
	assert.Error(t, err)
	_, err = SectorDistance("01A956", "018956")
	assert.Error(t, err)
}
