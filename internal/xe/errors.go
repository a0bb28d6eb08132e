package xe

import "github.com/go-orz/orz"

var (
	ErrInvalidParams    = orz.NewError(10400, "参数无效")
	ErrInvalidToken     = orz.NewError(10403, "令牌无效")
	ErrPermissionDenied = orz.NewError(10401, "您没有权限查看/修改/删除此数据")

	ErrAccountAlreadyUsed   = orz.NewError(10000, "邮箱已被注册")
	ErrIncorrectPassword    = orz.NewError(10001, "邮箱或密码错误")
	ErrInvalidEmail         = orz.NewError(10002, "邮箱格式不正确")
	ErrIncorrectOldPassword = orz.NewError(10003, "原密码错误")
	ErrAccountDisabled      = orz.NewError(10004, "账户已被禁用")

	ErrInvalidCloseState  = orz.NewError(10005, "平仓价格与平仓日期必须同时填写或同时留空")
	ErrTradeAlreadyClosed = orz.NewError(10006, "该交易已平仓")
	ErrInvalidAssetType   = orz.NewError(10007, "不支持的资产类型")
	ErrRecordNotFound     = orz.NewError(10008, "数据不存在")
)
