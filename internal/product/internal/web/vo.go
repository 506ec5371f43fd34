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

package web

import "github.com/dabaoclub/dabao/internal/product/internal/domain"

type MenuReq struct {
	MerchantID int64 `json:"merchantID"`
}

type MenuResp struct {
	Products []Product `json:"products"`
}

type CreateProductReq struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Variants    []VariantGroup `json:"variants,omitempty"`
}

type CreateProductResp struct {
	ID int64 `json:"id"`
}

// UpdateProductStatusReq 上架/下架
type UpdateProductStatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID          int64          `json:"id"`
	SN          string         `json:"sn"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Status      uint8          `json:"status"`
	Variants    []VariantGroup `json:"variants,omitempty"`
}

type VariantGroup struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

func toProductVO(src domain.Product) Product {
	groups := make([]VariantGroup, 0, len(src.Variants))
	for _, g := range src.Variants {
		groups = append(groups, VariantGroup{Name: g.Name, Options: g.Options})
	}
	return Product{
		ID:          src.ID,
		SN:          src.SN,
		Name:        src.Name,
		Description: src.Description,
		Price:       src.Price,
		Status:      src.Status.ToUint8(),
		Variants:    groups,
	}
}
