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

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dabaoclub/dabao/internal/checkout/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("结账会话不存在")

const keyPrefix = "checkout:session:"

// SessionRepository 结账会话存在共享缓存里, 多实例部署下互相可见,
// 进程重启也不丢. 键TTL比业务过期时间略长, 过期后的读取仍能
// 区分"已过期"和"从未存在".
type SessionRepository interface {
	Save(ctx context.Context, sess domain.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (domain.Session, error)
	// Claim 原子取走会话, 并发提交时只有第一个调用者拿得到.
	// 拿到之后下游失败要调 Save 放回去, 否则会话就丢了.
	Claim(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

func NewSessionRepository(cmd redis.Cmdable) SessionRepository {
	return &sessionRepository{cmd: cmd}
}

type sessionRepository struct {
	cmd redis.Cmdable
}

func (r *sessionRepository) Save(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("序列化会话失败: %w", err)
	}
	return r.cmd.Set(ctx, keyPrefix+sess.ID, data, ttl).Err()
}

func (r *sessionRepository) Find(ctx context.Context, id string) (domain.Session, error) {
	data, err := r.cmd.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return domain.Session{}, err
	}
	return r.unmarshal(data)
}

func (r *sessionRepository) Claim(ctx context.Context, id string) (domain.Session, error) {
	data, err := r.cmd.GetDel(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return domain.Session{}, err
	}
	return r.unmarshal(data)
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.cmd.Del(ctx, keyPrefix+id).Err()
}

func (r *sessionRepository) unmarshal(data []byte) (domain.Session, error) {
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("反序列化会话失败: %w", err)
	}
	return sess, nil
}
