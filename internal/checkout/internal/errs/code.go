package errs

var (
	SystemError          = ErrorCode{Code: 507001, Msg: "系统错误"}
	SessionNotFound      = ErrorCode{Code: 507002, Msg: "结账会话不存在"}
	SessionExpired       = ErrorCode{Code: 507003, Msg: "结账会话已过期, 请重新下单"}
	MerchantNotAvailable = ErrorCode{Code: 507004, Msg: "商家不存在或暂停接单"}
	ProductNotFound      = ErrorCode{Code: 507005, Msg: "菜品不存在或已下架"}
	MinimumOrderNotMet   = ErrorCode{Code: 507006, Msg: "未达到起送金额"}
	MethodNotAvailable   = ErrorCode{Code: 507007, Msg: "商家未开启该履约方式"}
	OutsideDeliveryArea  = ErrorCode{Code: 507008, Msg: "超出配送范围"}
	SessionCompleted     = ErrorCode{Code: 507009, Msg: "该结账会话已完成下单"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
