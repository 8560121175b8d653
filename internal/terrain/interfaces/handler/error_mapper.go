package handler

import (
	"context"
	"errors"

	"MapForge/internal/shared/transport"
	"MapForge/internal/terrain/app"
	"MapForge/internal/terrain/domain"
	"MapForge/modules/kit/errx"
)

// errorReason 提取错误的原因码；没有 reason 就退回错误码本身。
func errorReason(err error) string {
	var e *errx.Error
	if !errors.As(err, &e) {
		return ""
	}
	if r := e.Reason(); r != "" {
		return r
	}
	return string(e.Code())
}

// HandleError 把领域/应用错误翻译成业务码与对外文案，
// 并把 reason（没有就用错误码）写进访问日志上下文。
func HandleError(ctx context.Context, err error) (int, string) {
	if reason := errorReason(err); reason != "" {
		transport.SetErrorReason(ctx, reason)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDimensions):
		return transport.InvalidParam, "宽高低于最小画布尺寸"
	case errors.Is(err, domain.ErrOutOfBounds):
		return transport.InvalidParam, "坐标越界"
	case errors.Is(err, domain.ErrInvalidDocument):
		return transport.InvalidParam, "地形或单位标签不合法"
	case errors.Is(err, domain.ErrTerrainNotFound):
		return transport.NotFound, "地图不存在"
	case errors.Is(err, app.ErrMapNotOpen):
		return transport.NotFound, "地图未打开"
	case errors.Is(err, app.ErrMapExists):
		return transport.Conflict, "同名地图已存在"
	case errors.Is(err, app.ErrUnsavedChanges):
		return transport.PreconditionFailed, "地图有未保存的修改"
	default:
		return transport.SystemError, "系统繁忙，请稍后重试"
	}
}
