package web

import (
	"github.com/dabaoclub/dabao/internal/payment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	transitionConflictResult = ginx.Result{
		Code: errs.TransitionConflict.Code,
		Msg:  errs.TransitionConflict.Msg,
	}
)
