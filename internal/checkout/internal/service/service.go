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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dabaoclub/dabao/internal/checkout/internal/domain"
	"github.com/dabaoclub/dabao/internal/checkout/internal/repository"
	"github.com/dabaoclub/dabao/internal/checkout/internal/service/pricing"
	"github.com/dabaoclub/dabao/internal/customer"
	"github.com/dabaoclub/dabao/internal/merchant"
	"github.com/dabaoclub/dabao/internal/order"
	"github.com/dabaoclub/dabao/internal/payment"
	"github.com/dabaoclub/dabao/internal/pkg/geo"
	"github.com/dabaoclub/dabao/internal/pkg/sequencenumber"
	"github.com/dabaoclub/dabao/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrSessionNotFound = repository.ErrSessionNotFound
	// ErrSessionExpired 会话超过业务有效期, 读到即驱逐
	ErrSessionExpired = errors.New("结账会话已过期")
	// ErrSessionCompleted 会话已经换过订单, 重复提交要和不存在区分开
	ErrSessionCompleted     = errors.New("结账会话已完成下单")
	ErrMerchantNotAvailable = errors.New("商家不存在或暂停接单")
	ErrMinimumOrderNotMet   = errors.New("未达到起送金额")
	ErrMethodNotAvailable   = errors.New("商家未开启该履约方式")
	ErrOutsideDeliveryArea  = errors.New("超出配送范围")
	ErrInvalidItems         = errors.New("购物车内容非法")
)

const (
	// sessionTTL 会话业务有效期
	sessionTTL = 30 * time.Minute
	// keyGrace 缓存键比业务有效期多活一段, 过期后的读取
	// 才能区分"过期"和"不存在"
	keyGrace = 5 * time.Minute
	// paymentWindow 下单后的支付窗口
	paymentWindow = 30 * time.Minute
)

type Contact struct {
	Name  string
	Phone string
	Email string
}

type AddressInput struct {
	Line1      string
	Line2      string
	PostalCode string
	Lat        float64
	Lng        float64
}

// CompleteResult 结账落库的结果, 顾客拿着二维码付款
type CompleteResult struct {
	OrderSN         string
	ReferenceToken  string
	QRCode          string
	Total           int64
	PaymentDeadline int64
}

//go:generate mockgen -source=./service.go -package=checkoutmocks -destination=../../mocks/checkout.mock.go -typed Service
type Service interface {
	// Create 开始结账: 校验商家和菜品, 按当时菜单冻结价格,
	// 校验起送金额, 写入共享缓存并返回会话
	Create(ctx context.Context, merchantID int64, items []domain.ItemDraft) (domain.Session, error)
	// Get 读会话, 过期的读取驱逐会话并报已过期
	Get(ctx context.Context, id string) (domain.Session, error)
	// Complete 会话换订单, 唯一一处从缓存跨到持久层的写.
	// 并发提交同一会话只有第一个成功, 成功后会话留作已完成的墓碑,
	// 再提交报已完成而不是不存在.
	Complete(ctx context.Context, id string, contact Contact, addr *AddressInput) (CompleteResult, error)
}

func NewService(repo repository.SessionRepository,
	merchantSvc merchant.Service,
	productSvc product.Service,
	customerSvc customer.Service,
	orderSvc order.Service,
	paymentSvc payment.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		merchantSvc: merchantSvc,
		productSvc:  productSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
		paymentSvc:  paymentSvc,
		snGenerator: snGenerator,
		l:           elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.SessionRepository
	merchantSvc merchant.Service
	productSvc  product.Service
	customerSvc customer.Service
	orderSvc    order.Service
	paymentSvc  payment.Service
	snGenerator *sequencenumber.Generator
	l           *elog.Component
}

func (s *service) Create(ctx context.Context, merchantID int64, items []domain.ItemDraft) (domain.Session, error) {
	if len(items) == 0 {
		return domain.Session{}, fmt.Errorf("%w: 购物车为空", ErrInvalidItems)
	}
	m, err := s.merchantSvc.FindByID(ctx, merchantID)
	if errors.Is(err, merchant.ErrMerchantNotFound) {
		return domain.Session{}, fmt.Errorf("%w: id=%d", ErrMerchantNotAvailable, merchantID)
	}
	if err != nil {
		return domain.Session{}, err
	}
	if m.Status != merchant.StatusActive || !m.AcceptingOrders {
		return domain.Session{}, fmt.Errorf("%w: id=%d", ErrMerchantNotAvailable, merchantID)
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return domain.Session{}, fmt.Errorf("%w: 数量非法", ErrInvalidItems)
		}
		ids = append(ids, item.ProductID)
	}
	products, err := s.productSvc.FindByIDs(ctx, merchantID, ids)
	if err != nil {
		return domain.Session{}, err
	}
	byID := make(map[int64]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	priced := make([]domain.PricedItem, 0, len(items))
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		p := byID[item.ProductID]
		priced = append(priced, domain.PricedItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
			LineTotal: p.Price * item.Quantity,
			Variant:   item.Variant,
			Note:      item.Note,
		})
		lines = append(lines, pricing.Line{UnitPrice: p.Price, Quantity: item.Quantity})
	}
	subtotal, err := pricing.Subtotal(lines)
	if err != nil {
		return domain.Session{}, err
	}
	if subtotal < m.MinimumOrderCents {
		return domain.Session{}, fmt.Errorf("%w: 小计%d分, 起送%d分",
			ErrMinimumOrderNotMet, subtotal, m.MinimumOrderCents)
	}

	token, err := s.snGenerator.GenerateToken()
	if err != nil {
		return domain.Session{}, fmt.Errorf("生成参考号失败: %w", err)
	}
	now := time.Now()
	sess := domain.Session{
		ID:             shortuuid.New(),
		MerchantID:     merchantID,
		Items:          priced,
		Subtotal:       subtotal,
		ReferenceToken: token,
		Status:         domain.SessionStatusPending,
		Ctime:          now.UnixMilli(),
		ExpiresAt:      now.Add(sessionTTL).UnixMilli(),
	}
	err = s.repo.Save(ctx, sess, sessionTTL+keyGrace)
	if err != nil {
		return domain.Session{}, fmt.Errorf("保存会话失败: %w", err)
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Session, error) {
	sess, err := s.repo.Find(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Expired(time.Now().UnixMilli()) {
		// 懒驱逐, 之后再查就是不存在
		if er := s.repo.Delete(ctx, id); er != nil {
			s.l.Warn("驱逐过期会话失败",
				elog.String("sessionID", id),
				elog.FieldErr(er))
		}
		return domain.Session{}, fmt.Errorf("%w: %s", ErrSessionExpired, id)
	}
	return sess, nil
}

func (s *service) Complete(ctx context.Context, id string, contact Contact, addr *AddressInput) (CompleteResult, error) {
	// 原子取走会话, 并发提交只有第一个拿得到
	sess, err := s.repo.Claim(ctx, id)
	if err != nil {
		return CompleteResult{}, err
	}
	now := time.Now()
	if sess.Status == domain.SessionStatusCompleted {
		// 墓碑被取走了, 放回去继续挡后面的重复提交
		s.restore(ctx, sess, now)
		return CompleteResult{}, fmt.Errorf("%w: %s", ErrSessionCompleted, id)
	}
	if sess.Expired(now.UnixMilli()) {
		return CompleteResult{}, fmt.Errorf("%w: %s", ErrSessionExpired, id)
	}

	res, err := s.complete(ctx, sess, contact, addr, now)
	if err != nil {
		// 订单没落库, 把会话放回去让顾客重试
		s.restore(ctx, sess, now)
		return CompleteResult{}, err
	}
	// 原位留一块已完成的墓碑, 重复提交才能报已完成而不是不存在
	sess.Status = domain.SessionStatusCompleted
	s.restore(ctx, sess, now)
	return res, nil
}

func (s *service) complete(ctx context.Context, sess domain.Session, contact Contact, addr *AddressInput, now time.Time) (CompleteResult, error) {
	m, err := s.merchantSvc.FindByID(ctx, sess.MerchantID)
	if err != nil {
		return CompleteResult{}, err
	}

	// 有收货地址就是外送, 没有就是到店
	method, err := s.resolveMethod(m, addr)
	if err != nil {
		return CompleteResult{}, err
	}

	cust, err := s.customerSvc.ResolveByContact(ctx, contact.Name, contact.Phone, contact.Email)
	if err != nil {
		return CompleteResult{}, fmt.Errorf("解析顾客失败: %w", err)
	}

	var (
		addressID   int64
		deliveryFee int64
	)
	if method == order.MethodDelivery {
		distance := geo.Haversine(m.Delivery.Lat, m.Delivery.Lng, addr.Lat, addr.Lng)
		if m.Delivery.RadiusKM > 0 && distance > m.Delivery.RadiusKM {
			return CompleteResult{}, fmt.Errorf("%w: %.1fkm", ErrOutsideDeliveryArea, distance)
		}
		deliveryFee, err = pricing.DeliveryFee(sess.Subtotal, pricing.FeeInput{
			Config:         m.Delivery,
			DistanceKM:     distance,
			CustomerPostal: addr.PostalCode,
		})
		if err != nil {
			return CompleteResult{}, fmt.Errorf("计算配送费失败: %w", err)
		}
		addressID, err = s.customerSvc.CreateAddress(ctx, customer.Address{
			CustomerID: cust.ID,
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			PostalCode: addr.PostalCode,
			Lat:        addr.Lat,
			Lng:        addr.Lng,
		})
		if err != nil {
			return CompleteResult{}, fmt.Errorf("保存收货地址失败: %w", err)
		}
	}

	quote := pricing.NewQuote(sess.Subtotal, deliveryFee, 0, 0)
	sn, err := s.snGenerator.Generate(m.ID)
	if err != nil {
		return CompleteResult{}, fmt.Errorf("生成订单号失败: %w", err)
	}
	deadline := now.Add(paymentWindow).UnixMilli()

	created, err := s.orderSvc.CreateOrder(ctx, order.Order{
		SN:                sn,
		MerchantID:        m.ID,
		CustomerID:        cust.ID,
		DeliveryMethod:    method,
		DeliveryFee:       quote.DeliveryFee,
		Discount:          quote.Discount,
		Tax:               quote.Tax,
		ContactName:       contact.Name,
		ContactPhone:      contact.Phone,
		ContactEmail:      contact.Email,
		DeliveryAddressID: addressID,
		ReferenceToken:    sess.ReferenceToken,
		PaymentDeadline:   deadline,
		Items:             s.toOrderItems(sess.Items),
	})
	if err != nil {
		return CompleteResult{}, fmt.Errorf("创建订单失败: %w", err)
	}

	pmt, err := s.paymentSvc.CreatePayment(ctx, payment.Payment{
		OrderID:    created.ID,
		OrderSN:    created.SN,
		MerchantID: m.ID,
		Amount:     created.Total,
		Reference:  sess.ReferenceToken,
	})
	if err != nil {
		// 订单已经落库, 不能再把会话放回去, 收款码可以事后补取
		s.l.Error("创建支付失败",
			elog.String("orderSN", created.SN),
			elog.FieldErr(err))
		return CompleteResult{}, fmt.Errorf("创建支付失败: %w", err)
	}

	return CompleteResult{
		OrderSN:         created.SN,
		ReferenceToken:  sess.ReferenceToken,
		QRCode:          pmt.QRCode,
		Total:           created.Total,
		PaymentDeadline: deadline,
	}, nil
}

func (s *service) resolveMethod(m merchant.Merchant, addr *AddressInput) (order.DeliveryMethod, error) {
	if addr != nil {
		if !m.Delivery.EnableDelivery {
			return 0, fmt.Errorf("%w: 外送", ErrMethodNotAvailable)
		}
		return order.MethodDelivery, nil
	}
	if m.Delivery.EnablePickup {
		return order.MethodPickup, nil
	}
	if m.Delivery.EnableDineIn {
		return order.MethodDineIn, nil
	}
	return 0, fmt.Errorf("%w: 自取", ErrMethodNotAvailable)
}

func (s *service) toOrderItems(items []domain.PricedItem) []order.OrderItem {
	res := make([]order.OrderItem, 0, len(items))
	for _, item := range items {
		res = append(res, order.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
			Variant:   item.Variant,
			Note:      item.Note,
		})
	}
	return res
}

// restore 提交失败后把会话放回缓存, TTL按剩余有效期折算
func (s *service) restore(ctx context.Context, sess domain.Session, now time.Time) {
	remaining := time.Duration(sess.ExpiresAt-now.UnixMilli()) * time.Millisecond
	if remaining <= 0 {
		return
	}
	if err := s.repo.Save(ctx, sess, remaining+keyGrace); err != nil {
		s.l.Error("恢复会话失败",
			elog.String("sessionID", sess.ID),
			elog.FieldErr(err))
	}
}
