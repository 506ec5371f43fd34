package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	// Web 顾客侧门店接口
	Web *egin.Component
	// Admin 商家后台接口
	Admin AdminServer
	Crons []ecron.Ecron
}
