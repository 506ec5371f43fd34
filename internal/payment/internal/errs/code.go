package errs

var (
	SystemError        = ErrorCode{Code: 509001, Msg: "系统错误"}
	PaymentNotFound    = ErrorCode{Code: 509002, Msg: "支付记录未找到"}
	TransitionConflict = ErrorCode{Code: 509003, Msg: "订单状态冲突, 无法核销或拒绝"}
	InvalidPayee       = ErrorCode{Code: 509004, Msg: "商家收款账号未配置或非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
