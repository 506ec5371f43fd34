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
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dabaoclub/dabao/internal/checkout"
	"github.com/dabaoclub/dabao/internal/checkout/internal/errs"
	"github.com/dabaoclub/dabao/internal/checkout/internal/web"
	"github.com/dabaoclub/dabao/internal/customer"
	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/snowflake"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/dabaoclub/dabao/internal/test"
	testioc "github.com/dabaoclub/dabao/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// sessionKeyPrefix 和结账会话仓储保持一致, 测试里用来直接改写缓存内容
const sessionKeyPrefix = "checkout:session:"

var tokenPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

func TestCheckoutModule(t *testing.T) {
	suite.Run(t, new(CheckoutModuleTestSuite))
}

type CheckoutModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	cmd    redis.Cmdable

	checkoutSvc checkout.Service
	orderSvc    order.Service
	paymentSvc  payment.Service
	customerSvc customer.Service

	// merchantID 正常接单的商家, 起送2000分, 外送平费350分, 半径5km
	merchantID int64
	// suspendedID 已暂停接单的商家
	suspendedID int64
	// 菜品ID: 海南鸡饭1000分, 薏米水1990分
	riceID  int64
	drinkID int64
}

func (s *CheckoutModuleTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	s.cmd = testioc.InitCmdable()
	q := testioc.InitMQ()

	merchantModule, err := merchant.InitModule(s.db)
	require.NoError(t, err)
	customerModule, err := customer.InitModule(s.db)
	require.NoError(t, err)
	productModule, err := product.InitModule(s.db, testioc.InitCache())
	require.NoError(t, err)
	orderModule, err := order.InitModule(s.db, q)
	require.NoError(t, err)
	gen, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	paymentModule, err := payment.InitModule(s.db, q, merchantModule.Svc, orderModule.Svc, gen)
	require.NoError(t, err)
	module, err := checkout.InitModule(s.cmd,
		merchantModule.Svc, productModule.Svc, customerModule.Svc,
		orderModule.Svc, paymentModule.Svc)
	require.NoError(t, err)

	s.checkoutSvc = module.Svc
	s.orderSvc = orderModule.Svc
	s.paymentSvc = paymentModule.Svc
	s.customerSvc = customerModule.Svc

	ctx := context.Background()
	s.merchantID, err = merchantModule.Svc.Create(ctx, merchant.Merchant{
		SN:                "MCH-AHHOCK",
		Name:              "Ah Hock Kitchen",
		PayNowMobile:      "91234567",
		Status:            merchant.StatusActive,
		AcceptingOrders:   true,
		MinimumOrderCents: 2000,
		Delivery: merchant.DeliveryConfig{
			EnableDelivery: true,
			EnablePickup:   true,
			Policy:         merchant.FeePolicyFlat,
			FlatFeeCents:   350,
			RadiusKM:       5,
			Lat:            1.2931,
			Lng:            103.8558,
			PostalCode:     "179103",
		},
	})
	require.NoError(t, err)
	s.suspendedID, err = merchantModule.Svc.Create(ctx, merchant.Merchant{
		SN:              "MCH-CLOSED",
		Name:            "Closed Stall",
		PayNowMobile:    "81234567",
		Status:          merchant.StatusSuspended,
		AcceptingOrders: false,
	})
	require.NoError(t, err)

	s.riceID, err = productModule.Svc.Create(ctx, product.Product{
		MerchantID: s.merchantID,
		SN:         "PRD-RICE",
		Name:       "海南鸡饭",
		Price:      1000,
		Status:     product.StatusOnShelf,
	})
	require.NoError(t, err)
	s.drinkID, err = productModule.Svc.Create(ctx, product.Product{
		MerchantID: s.merchantID,
		SN:         "PRD-DRINK",
		Name:       "薏米水",
		Price:      1990,
		Status:     product.StatusOnShelf,
	})
	require.NoError(t, err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *CheckoutModuleTestSuite) TearDownSuite() {
	t := s.T()
	for _, table := range []string{
		"merchants", "customers", "addresses", "products",
		"orders", "order_items", "order_events", "payments",
	} {
		require.NoError(t, s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error)
	}
	keys, err := s.cmd.Keys(context.Background(), sessionKeyPrefix+"*").Result()
	require.NoError(t, err)
	if len(keys) > 0 {
		require.NoError(t, s.cmd.Del(context.Background(), keys...).Err())
	}
}

func (s *CheckoutModuleTestSuite) createSession(t *testing.T, items []web.Item) web.Session {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/checkout/create", iox.NewJSONReader(web.CreateSessionReq{
			MerchantID: s.merchantID,
			Items:      items,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.SessionResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Equal(t, 0, resp.Code, "msg=%s", resp.Msg)
	return resp.Data.Session
}

func (s *CheckoutModuleTestSuite) complete(t *testing.T, req web.CompleteSessionReq) test.Result[web.CompleteSessionResp] {
	t.Helper()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/checkout/complete", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CompleteSessionResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *CheckoutModuleTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		req      web.CreateSessionReq
		wantCode int
		after    func(t *testing.T, sess web.Session)
	}{
		{
			name: "正好到起送金额",
			req:  web.CreateSessionReq{Items: []web.Item{{Quantity: 2}}},
			after: func(t *testing.T, sess web.Session) {
				assert.Equal(t, int64(2000), sess.Subtotal)
				assert.NotEmpty(t, sess.ID)
				// 付款参考号只含大写字母和数字, 方便口头核对
				assert.True(t, tokenPattern.MatchString(sess.ReferenceToken),
					"token=%s", sess.ReferenceToken)
				assert.Len(t, sess.ReferenceToken, 12)
				assert.True(t, sess.ExpiresAt > time.Now().UnixMilli())
				require.Len(t, sess.Items, 1)
				assert.Equal(t, "海南鸡饭", sess.Items[0].Name)
				assert.Equal(t, int64(2000), sess.Items[0].LineTotal)
			},
		},
		{
			name:     "差10分不到起送金额",
			req:      web.CreateSessionReq{Items: []web.Item{{ProductID: -1, Quantity: 1}}},
			wantCode: errs.MinimumOrderNotMet.Code,
		},
		{
			name:     "菜品不存在",
			req:      web.CreateSessionReq{Items: []web.Item{{ProductID: 99999, Quantity: 1}}},
			wantCode: errs.ProductNotFound.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			// 菜品ID在SetupSuite才确定, 用例里用占位符
			for i := range tc.req.Items {
				switch tc.req.Items[i].ProductID {
				case 0:
					tc.req.Items[i].ProductID = s.riceID
				case -1:
					tc.req.Items[i].ProductID = s.drinkID
				}
			}
			tc.req.MerchantID = s.merchantID
			req, err := http.NewRequest(http.MethodPost,
				"/checkout/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SessionResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.after != nil {
				tc.after(t, resp.Data.Session)
			}
		})
	}
}

func (s *CheckoutModuleTestSuite) TestCreate_MerchantSuspended() {
	req, err := http.NewRequest(http.MethodPost,
		"/checkout/create", iox.NewJSONReader(web.CreateSessionReq{
			MerchantID: s.suspendedID,
			Items:      []web.Item{{ProductID: s.riceID, Quantity: 2}},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SessionResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), errs.MerchantNotAvailable.Code, recorder.MustScan().Code)
}

func (s *CheckoutModuleTestSuite) TestDetail() {
	sess := s.createSession(s.T(), []web.Item{{ProductID: s.riceID, Quantity: 2}})

	testCases := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "会话存在", id: sess.ID},
		{name: "会话不存在", id: "no-such-session", wantCode: errs.SessionNotFound.Code},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/checkout/detail", iox.NewJSONReader(web.RetrieveSessionReq{SessionID: tc.id}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SessionResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, sess.ID, resp.Data.Session.ID)
				assert.Equal(t, sess.ReferenceToken, resp.Data.Session.ReferenceToken)
			}
		})
	}
}

// TestDetail_Expired 过期会话第一次读返回已过期并被驱逐,
// 再读就是不存在
func (s *CheckoutModuleTestSuite) TestDetail_Expired() {
	t := s.T()
	ctx := context.Background()
	sess := s.createSession(t, []web.Item{{ProductID: s.riceID, Quantity: 2}})

	// 直接改写缓存里的业务过期时间, 模拟会话到期但缓存键还活着
	key := sessionKeyPrefix + sess.ID
	data, err := s.cmd.Get(ctx, key).Bytes()
	require.NoError(t, err)
	var stored checkout.Session
	require.NoError(t, json.Unmarshal(data, &stored))
	stored.ExpiresAt = time.Now().Add(-time.Minute).UnixMilli()
	data, err = json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, s.cmd.Set(ctx, key, data, time.Minute).Err())

	_, err = s.checkoutSvc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, checkout.ErrSessionExpired)

	_, err = s.checkoutSvc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, checkout.ErrSessionNotFound)
}

func (s *CheckoutModuleTestSuite) TestComplete_Pickup() {
	t := s.T()
	ctx := context.Background()
	sess := s.createSession(t, []web.Item{{ProductID: s.riceID, Quantity: 2}})

	resp := s.complete(t, web.CompleteSessionReq{
		SessionID: sess.ID,
		Name:      "Tan Ah Kow",
		Phone:     "91110000",
	})
	require.Equal(t, 0, resp.Code, "msg=%s", resp.Msg)
	assert.NotEmpty(t, resp.Data.OrderSN)
	assert.Equal(t, sess.ReferenceToken, resp.Data.ReferenceToken)
	// 自取不收配送费
	assert.Equal(t, int64(2000), resp.Data.Total)
	assert.True(t, strings.HasPrefix(resp.Data.QRCode, "000201"), "qr=%s", resp.Data.QRCode)
	assert.Contains(t, resp.Data.QRCode, sess.ReferenceToken)
	assert.True(t, resp.Data.PaymentDeadline > time.Now().UnixMilli())

	created, err := s.orderSvc.FindBySN(ctx, resp.Data.OrderSN)
	require.NoError(t, err)
	assert.Equal(t, order.MethodPickup, created.DeliveryMethod)
	assert.Equal(t, order.StatusPending, created.Status)
	assert.Equal(t, int64(0), created.DeliveryAddressID)
	assert.Equal(t, "91110000", created.ContactPhone)

	pmt, err := s.paymentSvc.FindByOrderSN(ctx, resp.Data.OrderSN)
	require.NoError(t, err)
	assert.Equal(t, payment.ChannelPayNowQR, pmt.Channel)
	assert.Equal(t, created.Total, pmt.Amount)
	assert.NotEmpty(t, pmt.QRCode)

	// 会话单次使用, 第二次提交看到的是已完成, 不是不存在
	again := s.complete(t, web.CompleteSessionReq{
		SessionID: sess.ID,
		Name:      "Tan Ah Kow",
		Phone:     "91110000",
	})
	assert.Equal(t, errs.SessionCompleted.Code, again.Code)
}

func (s *CheckoutModuleTestSuite) TestComplete_Delivery() {
	t := s.T()
	ctx := context.Background()
	sess := s.createSession(t, []web.Item{{ProductID: s.riceID, Quantity: 3}})

	resp := s.complete(t, web.CompleteSessionReq{
		SessionID: sess.ID,
		Name:      "Lim Bee Hoon",
		Phone:     "92220000",
		Address: &web.Address{
			Line1:      "Blk 1 Victoria Street",
			PostalCode: "188065",
			Lat:        1.2966,
			Lng:        103.8520,
		},
	})
	require.Equal(t, 0, resp.Code, "msg=%s", resp.Msg)
	// 3000小计 + 350平费
	assert.Equal(t, int64(3350), resp.Data.Total)

	created, err := s.orderSvc.FindBySN(ctx, resp.Data.OrderSN)
	require.NoError(t, err)
	assert.Equal(t, order.MethodDelivery, created.DeliveryMethod)
	assert.Equal(t, int64(350), created.DeliveryFee)
	assert.True(t, created.DeliveryAddressID > 0)

	addr, err := s.customerSvc.FindAddressByID(ctx, created.DeliveryAddressID)
	require.NoError(t, err)
	assert.Equal(t, "188065", addr.PostalCode)
}

// TestComplete_OutsideDeliveryArea 超出半径的提交失败,
// 但订单没落库, 会话被放回缓存允许顾客换自取重试
func (s *CheckoutModuleTestSuite) TestComplete_OutsideDeliveryArea() {
	t := s.T()
	sess := s.createSession(t, []web.Item{{ProductID: s.riceID, Quantity: 2}})

	resp := s.complete(t, web.CompleteSessionReq{
		SessionID: sess.ID,
		Name:      "Ong Lye Huat",
		Phone:     "93330000",
		Address: &web.Address{
			Line1:      "Changi Village Road",
			PostalCode: "509907",
			Lat:        1.3890,
			Lng:        103.9880,
		},
	})
	assert.Equal(t, errs.OutsideDeliveryArea.Code, resp.Code)

	// 会话还在, 换自取能成功
	retry := s.complete(t, web.CompleteSessionReq{
		SessionID: sess.ID,
		Name:      "Ong Lye Huat",
		Phone:     "93330000",
	})
	require.Equal(t, 0, retry.Code, "msg=%s", retry.Msg)
	assert.Equal(t, int64(2000), retry.Data.Total)
}

func (s *CheckoutModuleTestSuite) TestComplete_SessionNotFound() {
	resp := s.complete(s.T(), web.CompleteSessionReq{
		SessionID: "no-such-session",
		Name:      "Tan Ah Kow",
		Phone:     "91110000",
	})
	assert.Equal(s.T(), errs.SessionNotFound.Code, resp.Code)
}
