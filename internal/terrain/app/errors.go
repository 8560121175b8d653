package app

import "MapForge/modules/kit/errx"

// Code 表示应用层错误码（通常更贴近“业务语义/对外协议”）。
type Code = errx.Code

const (
	CodeMapExists      Code = "EDITOR_MAP_EXISTS"
	CodeMapNotOpen     Code = "EDITOR_MAP_NOT_OPEN"
	CodeUnsavedChanges Code = "EDITOR_UNSAVED_CHANGES"
	// CodeUnavailable 复用 kit 的统一系统码（跨模块一致，便于告警/排障）。
	CodeUnavailable Code = errx.CodeUnavailable
)

// Error 复用通用错误模型：对外语义(code/msg)、上下文(data)、溯源链(cause)、系统错误一次栈(stack)。
type Error = errx.Error

// 常用错误定义（哨兵错误）：禁止直接修改其 data/cause（通过 WithData/WithCause 派生新对象）。
var (
	ErrMapExists      = errx.NewBiz(CodeMapExists, "同名地图已存在")
	ErrMapNotOpen     = errx.NewBiz(CodeMapNotOpen, "地图未打开")
	ErrUnsavedChanges = errx.NewBiz(CodeUnsavedChanges, "地图有未保存的修改")
	ErrUnavailable    = errx.ErrUnavailable
)
