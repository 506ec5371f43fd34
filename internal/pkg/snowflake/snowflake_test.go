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

package snowflake

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(1)
	require.NoError(t, err)

	sn := g.Generate("PMT")
	assert.Regexp(t, regexp.MustCompile(`^PMT-[0-9A-Z]+$`), sn)

	// 连续生成不重号
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		sn := g.Generate("PMT")
		_, ok := seen[sn]
		require.False(t, ok, "序列号重复: %s", sn)
		seen[sn] = struct{}{}
	}
}

func TestNewGenerator_InvalidNode(t *testing.T) {
	t.Parallel()
	_, err := NewGenerator(-1)
	assert.Error(t, err)
}
