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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dabaoclub/dabao/internal/product/internal/domain"
	"github.com/ecodeclub/ecache"
)

var ErrMenuNotCached = errors.New("菜单不在缓存中")

// 菜单改动不频繁, 但顾客浏览量大, 缓存期内商家改菜由
// 上架/下架操作主动失效
const expiration = 10 * time.Minute

type MenuCache interface {
	SetMenu(ctx context.Context, merchantID int64, products []domain.Product) error
	GetMenu(ctx context.Context, merchantID int64) ([]domain.Product, error)
	DelMenu(ctx context.Context, merchantID int64) error
}

func NewMenuCache(ec ecache.Cache) MenuCache {
	return &menuCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "menu:",
		},
	}
}

type menuCache struct {
	ec ecache.Cache
}

func (c *menuCache) SetMenu(ctx context.Context, merchantID int64, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("序列化菜单失败: %w", err)
	}
	return c.ec.Set(ctx, c.menuKey(merchantID), string(data), expiration)
}

func (c *menuCache) GetMenu(ctx context.Context, merchantID int64) ([]domain.Product, error) {
	val := c.ec.Get(ctx, c.menuKey(merchantID))
	if val.KeyNotFound() {
		return nil, ErrMenuNotCached
	}
	data, err := val.String()
	if err != nil {
		return nil, err
	}
	var res []domain.Product
	err = json.Unmarshal([]byte(data), &res)
	if err != nil {
		return nil, fmt.Errorf("反序列化菜单失败: %w", err)
	}
	return res, nil
}

func (c *menuCache) DelMenu(ctx context.Context, merchantID int64) error {
	_, err := c.ec.Delete(ctx, c.menuKey(merchantID))
	return err
}

func (c *menuCache) menuKey(merchantID int64) string {
	return fmt.Sprintf("merchant:%d", merchantID)
}
