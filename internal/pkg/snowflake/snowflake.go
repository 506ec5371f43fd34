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

// Package snowflake 基于雪花算法生成支付序列号.
// 多实例部署时每个实例必须配置不同的节点ID, 否则会出重复号.
package snowflake

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("初始化雪花节点失败: %w", err)
	}
	return &Generator{node: node}, nil
}

// Generate 生成带前缀的序列号, 例如 PMT-2V8K1Q9ZC4M.
// 36进制再转大写, 人工对账时好念好抄.
func (g *Generator) Generate(prefix string) string {
	return prefix + "-" + strings.ToUpper(g.node.Generate().Base36())
}
