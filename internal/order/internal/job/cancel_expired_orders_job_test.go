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

package job

import (
	"errors"
	"testing"
	"time"

	ordermocks "github.com/dabaoclub/dabao/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCancelExpiredOrdersJob_Run(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *ordermocks.MockService
		wantErr bool
	}{
		{
			// 不足一批说明取消完了, 只调一次
			name: "一批取消完",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CancelExpiredPending(gomock.Any(), 100).Return(int64(3), nil)
				return svc
			},
		},
		{
			// 整批取消说明后面可能还有, 继续捞下一批
			name: "满批继续捞",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				first := svc.EXPECT().CancelExpiredPending(gomock.Any(), 100).Return(int64(100), nil)
				svc.EXPECT().CancelExpiredPending(gomock.Any(), 100).Return(int64(20), nil).After(first.Call)
				return svc
			},
		},
		{
			name: "取消失败上抛",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CancelExpiredPending(gomock.Any(), 100).
					Return(int64(0), errors.New("mock: db gone"))
				return svc
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			j := NewCancelExpiredOrdersJob(tc.mock(ctrl), 100, 10*time.Second)
			assert.Equal(t, "CancelExpiredOrdersJob", j.Name())
			err := j.Run()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
