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
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// earthRadiusKM 地球半径
const earthRadiusKM = 6371.0

// Haversine 计算两个坐标点之间的大圆距离, 单位公里, 保留一位小数
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKM*c*10) / 10
}

// SectorDistance 计算两个新加坡邮编的邮区距离
// 邮编前两位为邮区编号, 距离为编号差的绝对值
func SectorDistance(postalA, postalB string) (int, error) {
	a, err := sector(postalA)
	if err != nil {
		return 0, err
	}
	b, err := sector(postalB)
	if err != nil {
		return 0, err
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d, nil
}

// postalRegexp 新加坡邮编固定6位数字
var postalRegexp = regexp.MustCompile(`^\d{6}$`)

func sector(postal string) (int, error) {
	if !postalRegexp.MatchString(postal) {
		return 0, fmt.Errorf("非法邮编: %s", postal)
	}
	n, _ := strconv.Atoi(postal[:2])
	return n, nil
}
