package logx

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// BizLog 是业务拒绝日志的强类型输入，避免裸字符串按位置传参。
type BizLog struct {
	Action  string
	Reason  string
	Message string
}

// SysLog 是技术错误日志的强类型输入。
type SysLog struct {
	Action string
	Err    error
}

func NewBizLog(action, reason, message string) BizLog {
	return BizLog{Action: action, Reason: reason, Message: message}
}

func NewSysLog(action string, err error) SysLog {
	return SysLog{Action: action, Err: err}
}

// ReportAccessWithLoggerContext 记录访问日志，级别按业务码分档：
// 0 记 INFO，1~499 记 WARN，>=500 记 ERROR。
func ReportAccessWithLoggerContext(ctx context.Context, l Logger, action string, bizCode int, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := append([]zap.Field{
		zap.String("log_type", "access"),
		zap.String("action", action),
		zap.Int("biz_code", bizCode),
	}, fields...)

	withCtx := l.WithContext(ctx)
	switch {
	case bizCode == 0:
		withCtx.Info("access", base...)
	case bizCode >= 500:
		withCtx.Error("access", base...)
	default:
		withCtx.Warn("access", base...)
	}
}

// ReportBizWithLoggerContext 记录业务拒绝：INFO 级、err_type=biz、不带堆栈。
func ReportBizWithLoggerContext(ctx context.Context, l Logger, biz BizLog, fields ...zap.Field) {
	if l == nil {
		return
	}
	action := biz.Action
	if action == "" {
		action = "biz_reject"
	}

	base := []zap.Field{
		zap.String("err_type", "biz"),
		zap.String("action", action),
	}
	if biz.Reason != "" {
		base = append(base, zap.String("reason", biz.Reason))
	}
	if biz.Message != "" {
		base = append(base, zap.String("biz_message", biz.Message))
	}
	base = append(base, fields...)

	l.WithContext(ctx).Info(bizLogMsg(action, biz.Reason, biz.Message), base...)
}

func bizLogMsg(action, reason, message string) string {
	switch {
	case reason != "" && message != "":
		return fmt.Sprintf("%s, reason:%s, msg:%s", action, reason, message)
	case reason != "":
		return fmt.Sprintf("%s, reason:%s", action, reason)
	case message != "":
		return fmt.Sprintf("%s, msg:%s", action, message)
	default:
		return action
	}
}

// ReportSysErrorWithLoggerContext 记录技术错误：ERROR 级、err_type=sys，
// 附带错误码、cause 链、业务上下文和发生处的栈。
func ReportSysErrorWithLoggerContext(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}

	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	if meta.Code != "" {
		base = append(base, zap.String("error_code", meta.Code))
	}
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Any("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin))
	}
	if meta.Stack != "" {
		base = append(base, zap.String("stack_origin", meta.Stack))
	}
	base = append(base, fields...)

	l.WithContext(ctx).Error(sysLogMsg(action, meta), base...)
}

func sysLogMsg(action string, meta ErrorLog) string {
	if meta.Reason != "" {
		return fmt.Sprintf("%s, reason:%s, error:%s", action, meta.Reason, meta.Error)
	}
	if meta.Msg != "" {
		return fmt.Sprintf("%s, error:%s, msg:%s", action, meta.Error, meta.Msg)
	}
	return fmt.Sprintf("%s, error:%s", action, meta.Error)
}
