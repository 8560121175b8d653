package domain

import "MapForge/modules/kit/errx"

// Code 表示领域错误码（对外语义的唯一来源之一）。
//
// 约定：
// - 领域层只关心“是什么错”（code）以及“业务上下文”（data）
// - cause 仅用于溯源/日志，不参与对外语义
type Code = errx.Code

const (
	CodeInvalidDimensions Code = "TERRAIN_INVALID_DIMENSIONS"
	CodeOutOfBounds       Code = "TERRAIN_OUT_OF_BOUNDS"
	CodeInvalidDocument   Code = "TERRAIN_INVALID_DOCUMENT"
	CodeTerrainNotFound   Code = "TERRAIN_NOT_FOUND"
	// CodeSystemUnavailable 复用 kit 的统一系统码（跨模块一致，便于告警/排障）。
	CodeSystemUnavailable Code = errx.CodeUnavailable
)

// Error 复用通用错误模型：领域层通常不需要 msg，但可以使用 code/data/cause/stack。
type Error = errx.Error

var (
	ErrInvalidDimensions = errx.NewBiz(CodeInvalidDimensions, "")
	ErrOutOfBounds       = errx.NewBiz(CodeOutOfBounds, "")
	ErrInvalidDocument   = errx.NewBiz(CodeInvalidDocument, "")
	ErrTerrainNotFound   = errx.NewBiz(CodeTerrainNotFound, "")
	ErrSystemUnavailable = errx.ErrUnavailable
)
