package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrTitleRequired           = errors.New("标题不能为空")
	ErrCategoryInvalid         = errors.New("版块不存在")
	ErrPostNotFound            = errors.New("帖子不存在")
	ErrPostLocked              = errors.New("帖子已锁定")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserExist               = errors.New("用户已存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ForbiddenError             = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrTitleRequired:           BadRequest,
	ErrCategoryInvalid:         BadRequest,
	ErrPostNotFound:            NotFound,
	ErrPostLocked:              Forbidden,
	ErrUserNotFound:            NotFound,
	ErrUserExist:               BadRequest,
	ErrUserBan:                 Unauthorized,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ForbiddenError:             Forbidden,
	UnExpectedError:            InternalServerError,
}
