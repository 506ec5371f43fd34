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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/order/internal/errs"
	"github.com/dabaoclub/dabao/internal/order/internal/web"
	"github.com/dabaoclub/dabao/internal/test"
	testioc "github.com/dabaoclub/dabao/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testMerchantID = int64(1001)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    order.Service
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := order.InitModule(s.db, testioc.InitMQ())
	require.NoError(s.T(), err)
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testMerchantID,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_items", "order_events"} {
		require.NoError(s.T(), s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error)
	}
}

func (s *OrderModuleTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "order_events"} {
		require.NoError(s.T(), s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
}

// createOrder 以给定SN和手机号落一张外送订单, 两个菜品共2980分
func (s *OrderModuleTestSuite) createOrder(sn, phone string) order.Order {
	created, err := s.svc.CreateOrder(context.Background(), order.Order{
		SN:             sn,
		MerchantID:     testMerchantID,
		DeliveryMethod: order.MethodDelivery,
		DeliveryFee:    350,
		ContactName:    "Tan Ah Kow",
		ContactPhone:   phone,
		ReferenceToken: "DB7F3K9Q2M1X",
		Items: []order.OrderItem{
			{ProductID: 1, Name: "海南鸡饭", Price: 580, Quantity: 2},
			{ProductID: 2, Name: "薏米水", Price: 180, Quantity: 10},
		},
	})
	require.NoError(s.T(), err)
	return created
}

func (s *OrderModuleTestSuite) TestCreateOrder_RecalculatesAmounts() {
	created := s.createOrder("DBSN-create-1", "91234567")
	// 金额在服务端重算: 580*2 + 180*10 = 2960
	assert.Equal(s.T(), int64(2960), created.Subtotal)
	assert.Equal(s.T(), int64(3310), created.Total)
	assert.Equal(s.T(), order.StatusPending, created.Status)
	assert.Equal(s.T(), order.PaymentStatusPending, created.PaymentStatus)

	found, err := s.svc.FindBySN(context.Background(), "DBSN-create-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.Total, found.Total)
	assert.Len(s.T(), found.Items, 2)
	assert.Equal(s.T(), int64(1160), found.Items[0].LineTotal)
}

func (s *OrderModuleTestSuite) TestCreateOrder_InvalidInput() {
	testCases := []struct {
		name string
		o    order.Order
	}{
		{
			name: "无订单项",
			o:    order.Order{SN: "DBSN-bad-1", MerchantID: testMerchantID},
		},
		{
			name: "数量非法",
			o: order.Order{SN: "DBSN-bad-2", MerchantID: testMerchantID,
				Items: []order.OrderItem{{Name: "炒粿条", Price: 500, Quantity: 0}}},
		},
		{
			name: "配送费为负",
			o: order.Order{SN: "DBSN-bad-3", MerchantID: testMerchantID, DeliveryFee: -1,
				Items: []order.OrderItem{{Name: "炒粿条", Price: 500, Quantity: 1}}},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			_, err := s.svc.CreateOrder(context.Background(), tc.o)
			assert.ErrorIs(t, err, order.ErrInvalidOrder)
		})
	}
}

func (s *OrderModuleTestSuite) TestTrackOrder() {
	s.createOrder("DBSN-track-1", "91234567")

	testCases := []struct {
		name     string
		req      web.TrackOrderReq
		wantCode int
		after    func(t *testing.T, resp test.Result[web.TrackOrderResp])
	}{
		{
			name:     "订单号和手机号匹配",
			req:      web.TrackOrderReq{OrderSN: "DBSN-track-1", Phone: "91234567"},
			wantCode: 0,
			after: func(t *testing.T, resp test.Result[web.TrackOrderResp]) {
				assert.Equal(t, "DBSN-track-1", resp.Data.Order.SN)
				assert.Equal(t, order.StatusPending.ToUint8(), resp.Data.Order.Status)
				assert.Equal(t, int64(3310), resp.Data.Order.Total)
				assert.Len(t, resp.Data.Order.Items, 2)
			},
		},
		{
			name:     "手机号不匹配",
			req:      web.TrackOrderReq{OrderSN: "DBSN-track-1", Phone: "81111111"},
			wantCode: errs.OrderNotFound.Code,
		},
		{
			// 不暴露订单号是否存在, 错误和手机号不匹配完全一致
			name:     "订单号不存在",
			req:      web.TrackOrderReq{OrderSN: "DBSN-no-such", Phone: "91234567"},
			wantCode: errs.OrderNotFound.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/track", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.TrackOrderResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.after != nil {
				tc.after(t, resp)
			}
		})
	}
}

func (s *OrderModuleTestSuite) TestListByPhone() {
	s.createOrder("DBSN-list-1", "91234567")
	s.createOrder("DBSN-list-2", "91234567")
	s.createOrder("DBSN-list-3", "82222222")

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListMyOrdersReq{Phone: "91234567", Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(s.T(), int64(2), resp.Data.Total)
	require.Len(s.T(), resp.Data.Orders, 2)
	for _, o := range resp.Data.Orders {
		assert.Equal(s.T(), "91234567", o.ContactPhone)
	}
}

func (s *OrderModuleTestSuite) TestUpdateStatus() {
	testCases := []struct {
		name string
		// before 把订单推进到测试起点
		before   func(t *testing.T, sn string)
		target   order.OrderStatus
		wantCode int
		after    func(t *testing.T, resp test.Result[web.UpdateOrderStatusResp])
	}{
		{
			name:   "待确认到已确认",
			target: order.StatusConfirmed,
			after: func(t *testing.T, resp test.Result[web.UpdateOrderStatusResp]) {
				assert.Equal(t, order.StatusConfirmed.ToUint8(), resp.Data.Order.Status)
				assert.True(t, resp.Data.Order.ConfirmedAt > 0)
			},
		},
		{
			name:     "待确认跳到已备好",
			target:   order.StatusReady,
			wantCode: errs.InvalidTransition.Code,
		},
		{
			name: "制作中取消",
			before: func(t *testing.T, sn string) {
				ctx := context.Background()
				_, err := s.svc.UpdateStatus(ctx, testMerchantID, sn, order.StatusConfirmed, testMerchantID)
				require.NoError(t, err)
				_, err = s.svc.UpdateStatus(ctx, testMerchantID, sn, order.StatusPreparing, testMerchantID)
				require.NoError(t, err)
			},
			target: order.StatusCancelled,
			after: func(t *testing.T, resp test.Result[web.UpdateOrderStatusResp]) {
				assert.Equal(t, order.StatusCancelled.ToUint8(), resp.Data.Order.Status)
				assert.True(t, resp.Data.Order.CancelledAt > 0)
			},
		},
		{
			name: "已完成是终态",
			before: func(t *testing.T, sn string) {
				ctx := context.Background()
				for _, st := range []order.OrderStatus{
					order.StatusConfirmed, order.StatusReady, order.StatusCompleted,
				} {
					_, err := s.svc.UpdateStatus(ctx, testMerchantID, sn, st, testMerchantID)
					require.NoError(t, err)
				}
			},
			target:   order.StatusCancelled,
			wantCode: errs.InvalidTransition.Code,
		},
	}
	for idx, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			sn := fmt.Sprintf("DBSN-status-%d", idx)
			s.createOrder(sn, "91234567")
			if tc.before != nil {
				tc.before(t, sn)
			}
			req, err := http.NewRequest(http.MethodPost,
				"/merchant/order/status", iox.NewJSONReader(web.UpdateOrderStatusReq{
					OrderSN: sn,
					Status:  tc.target.ToUint8(),
				}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.UpdateOrderStatusResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.after != nil {
				tc.after(t, resp)
			}
		})
	}
}

// TestUpdateStatus_PickupSkipsDelivery 自取订单由READY直达COMPLETED,
// 不允许进入配送环节
func (s *OrderModuleTestSuite) TestUpdateStatus_PickupSkipsDelivery() {
	ctx := context.Background()
	created, err := s.svc.CreateOrder(ctx, order.Order{
		SN:             "DBSN-pickup-1",
		MerchantID:     testMerchantID,
		DeliveryMethod: order.MethodPickup,
		ContactName:    "Lim Bee Hoon",
		ContactPhone:   "83334444",
		Items:          []order.OrderItem{{Name: "咖喱鸡", Price: 880, Quantity: 1}},
	})
	require.NoError(s.T(), err)

	for _, st := range []order.OrderStatus{order.StatusConfirmed, order.StatusReady} {
		_, err = s.svc.UpdateStatus(ctx, testMerchantID, created.SN, st, testMerchantID)
		require.NoError(s.T(), err)
	}

	_, err = s.svc.UpdateStatus(ctx, testMerchantID, created.SN, order.StatusOutForDelivery, testMerchantID)
	assert.ErrorIs(s.T(), err, order.ErrInvalidTransition)

	updated, err := s.svc.UpdateStatus(ctx, testMerchantID, created.SN, order.StatusCompleted, testMerchantID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), order.StatusCompleted, updated.Status)
}

// TestUpdateStatus_ConfirmedByOnlyOnConfirm 只有确认订单会落操作者,
// 其他状态变更不碰 confirmed_by
func (s *OrderModuleTestSuite) TestUpdateStatus_ConfirmedByOnlyOnConfirm() {
	ctx := context.Background()

	s.createOrder("DBSN-confirmedby-1", "91230001")
	_, err := s.svc.UpdateStatus(ctx, testMerchantID, "DBSN-confirmedby-1", order.StatusCancelled, testMerchantID)
	require.NoError(s.T(), err)
	cancelled, err := s.svc.FindBySN(ctx, "DBSN-confirmedby-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cancelled.ConfirmedBy)
	assert.True(s.T(), cancelled.CancelledAt > 0)

	s.createOrder("DBSN-confirmedby-2", "91230002")
	_, err = s.svc.UpdateStatus(ctx, testMerchantID, "DBSN-confirmedby-2", order.StatusConfirmed, testMerchantID)
	require.NoError(s.T(), err)
	confirmed, err := s.svc.FindBySN(ctx, "DBSN-confirmedby-2")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(testMerchantID), confirmed.ConfirmedBy)
}

func (s *OrderModuleTestSuite) TestBulkUpdateStatus_PartialSuccess() {
	s.createOrder("DBSN-bulk-1", "91234567")
	s.createOrder("DBSN-bulk-2", "91234567")

	req, err := http.NewRequest(http.MethodPost,
		"/merchant/order/status/bulk", iox.NewJSONReader(web.BulkUpdateOrderStatusReq{
			OrderSNs: []string{"DBSN-bulk-1", "DBSN-bulk-2", "DBSN-bulk-missing"},
			Status:   order.StatusConfirmed.ToUint8(),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.BulkUpdateOrderStatusResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(s.T(), int64(2), resp.Data.SuccessCount)
	assert.Equal(s.T(), int64(3), resp.Data.TotalCount)
	require.Len(s.T(), resp.Data.Failures, 1)
	assert.Equal(s.T(), "DBSN-bulk-missing", resp.Data.Failures[0].OrderSN)

	// 成功的两张确实推进了
	for _, sn := range []string{"DBSN-bulk-1", "DBSN-bulk-2"} {
		found, er := s.svc.FindBySN(context.Background(), sn)
		require.NoError(s.T(), er)
		assert.Equal(s.T(), order.StatusConfirmed, found.Status)
	}
}

func (s *OrderModuleTestSuite) TestMerchantList_FilterByStatus() {
	ctx := context.Background()
	s.createOrder("DBSN-mlist-1", "91234567")
	s.createOrder("DBSN-mlist-2", "91234567")
	_, err := s.svc.UpdateStatus(ctx, testMerchantID, "DBSN-mlist-2", order.StatusConfirmed, testMerchantID)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/merchant/order/list", iox.NewJSONReader(web.ListOrdersReq{
			Status: order.StatusConfirmed.ToUint8(),
			Limit:  10,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(s.T(), int64(1), resp.Data.Total)
	require.Len(s.T(), resp.Data.Orders, 1)
	assert.Equal(s.T(), "DBSN-mlist-2", resp.Data.Orders[0].SN)
}

func (s *OrderModuleTestSuite) TestMerchantDetail_WithEvents() {
	ctx := context.Background()
	s.createOrder("DBSN-detail-1", "91234567")
	_, err := s.svc.UpdateStatus(ctx, testMerchantID, "DBSN-detail-1", order.StatusConfirmed, testMerchantID)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/merchant/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: "DBSN-detail-1"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(s.T(), "DBSN-detail-1", resp.Data.Order.SN)
	// 建单一条 + 状态流转一条
	require.Len(s.T(), resp.Data.Events, 2)
	assert.Equal(s.T(), "order_created", resp.Data.Events[0].Kind)
	assert.Equal(s.T(), "status_changed", resp.Data.Events[1].Kind)
}

func (s *OrderModuleTestSuite) TestMarkItemPrepared() {
	created := s.createOrder("DBSN-item-1", "91234567")
	found, err := s.svc.FindBySN(context.Background(), created.SN)
	require.NoError(s.T(), err)
	require.Len(s.T(), found.Items, 2)

	req, err := http.NewRequest(http.MethodPost,
		"/merchant/order/item/prepared", iox.NewJSONReader(web.MarkItemPreparedReq{
			OrderSN:  created.SN,
			ItemID:   found.Items[0].ID,
			Prepared: true,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	found, err = s.svc.FindBySN(context.Background(), created.SN)
	require.NoError(s.T(), err)
	assert.True(s.T(), found.Items[0].Prepared)
	assert.False(s.T(), found.Items[1].Prepared)
}

func (s *OrderModuleTestSuite) TestCancelExpiredPending() {
	ctx := context.Background()
	past := time.Now().Add(-time.Minute).UnixMilli()
	future := time.Now().Add(30 * time.Minute).UnixMilli()

	for i, deadline := range []int64{past, past, future} {
		_, err := s.svc.CreateOrder(ctx, order.Order{
			SN:              fmt.Sprintf("DBSN-expire-%d", i),
			MerchantID:      testMerchantID,
			DeliveryMethod:  order.MethodPickup,
			ContactPhone:    "91234567",
			PaymentDeadline: deadline,
			Items:           []order.OrderItem{{Name: "乌打", Price: 150, Quantity: 2}},
		})
		require.NoError(s.T(), err)
	}

	cancelled, err := s.svc.CancelExpiredPending(ctx, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), cancelled)

	for i, want := range []order.OrderStatus{
		order.StatusCancelled, order.StatusCancelled, order.StatusPending,
	} {
		found, er := s.svc.FindBySN(ctx, fmt.Sprintf("DBSN-expire-%d", i))
		require.NoError(s.T(), er)
		assert.Equal(s.T(), want, found.Status, "订单 %d", i)
	}

	// 再跑一次没有可取消的了
	cancelled, err = s.svc.CancelExpiredPending(ctx, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cancelled)
}
