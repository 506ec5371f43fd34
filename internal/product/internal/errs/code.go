package errs

var (
	SystemError     = ErrorCode{Code: 506001, Msg: "系统错误"}
	ProductNotFound = ErrorCode{Code: 506002, Msg: "菜品不存在或已下架"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
