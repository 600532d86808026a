package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrRuleNotFound    = errors.New("发现规则不存在")
	ErrCreatorNotFound = errors.New("达人不存在")
	UnauthorizedError  = errors.New("权限不足")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrRuleNotFound:    NotFound,
	ErrCreatorNotFound: NotFound,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
