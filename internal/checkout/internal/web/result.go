package web

import (
	"github.com/dabaoclub/dabao/internal/checkout/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	sessionNotFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	sessionExpiredResult = ginx.Result{
		Code: errs.SessionExpired.Code,
		Msg:  errs.SessionExpired.Msg,
	}
	merchantNotAvailableResult = ginx.Result{
		Code: errs.MerchantNotAvailable.Code,
		Msg:  errs.MerchantNotAvailable.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	methodNotAvailableResult = ginx.Result{
		Code: errs.MethodNotAvailable.Code,
		Msg:  errs.MethodNotAvailable.Msg,
	}
	outsideDeliveryAreaResult = ginx.Result{
		Code: errs.OutsideDeliveryArea.Code,
		Msg:  errs.OutsideDeliveryArea.Msg,
	}
	sessionCompletedResult = ginx.Result{
		Code: errs.SessionCompleted.Code,
		Msg:  errs.SessionCompleted.Msg,
	}
)
