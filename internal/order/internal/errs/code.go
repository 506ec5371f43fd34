package errs

var (
	SystemError       = ErrorCode{Code: 508001, Msg: "系统错误"}
	OrderNotFound     = ErrorCode{Code: 508002, Msg: "订单未找到"}
	InvalidTransition = ErrorCode{Code: 508003, Msg: "订单状态不允许该变更"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
