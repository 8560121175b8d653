package logx

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorLog 是从一个 error 提炼出的结构化视图，供接口层统一打印。
type ErrorLog struct {
	Error      string
	Code       string
	Msg        string
	Reason     string
	Data       map[string]any
	CauseChain []string
	Origin     string
	Stack      string
}

type codeCarrier interface {
	CodeText() string
}

type msgCarrier interface {
	Msg() string
}

type dataCarrier interface {
	Data() map[string]any
}

type reasonCarrier interface {
	Reason() string
}

type stackCarrier interface {
	Stack() []uintptr
}

// BuildErrorLog 沿错误链逐项探测错误码、语义、上下文、原因码和发生处的栈。
// 各能力独立探测：链上不同环节可以各自提供一部分。
func BuildErrorLog(err error) ErrorLog {
	if err == nil {
		return ErrorLog{}
	}

	out := ErrorLog{Error: err.Error()}
	var c codeCarrier
	if errors.As(err, &c) {
		out.Code = c.CodeText()
	}
	var m msgCarrier
	if errors.As(err, &m) {
		out.Msg = m.Msg()
	}
	var d dataCarrier
	if errors.As(err, &d) {
		out.Data = d.Data()
	}
	var r reasonCarrier
	if errors.As(err, &r) {
		out.Reason = r.Reason()
	}
	var s stackCarrier
	if errors.As(err, &s) {
		out.Origin, out.Stack = formatStack(s.Stack(), 32)
	}
	out.CauseChain = causeChain(err, 20)
	return out
}

// causeChain 把 Unwrap 链（不含 err 本身）展开成 "类型: 内容" 列表。
func causeChain(err error, maxDepth int) []string {
	if err == nil || maxDepth <= 0 {
		return nil
	}
	out := make([]string, 0, 4)
	for cur := errors.Unwrap(err); cur != nil && len(out) < maxDepth; cur = errors.Unwrap(cur) {
		out = append(out, fmt.Sprintf("%T: %v", cur, cur))
	}
	return out
}

// formatStack 渲染栈帧；第一帧单独作为 origin 返回，便于日志检索。
func formatStack(pcs []uintptr, maxFrames int) (origin string, stack string) {
	if len(pcs) == 0 || maxFrames <= 0 {
		return "", ""
	}
	frames := runtime.CallersFrames(pcs)
	var b strings.Builder
	for i := 0; i < maxFrames; i++ {
		f, more := frames.Next()
		if f.Function == "" && f.File == "" && f.Line == 0 {
			break
		}
		line := fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
		if origin == "" {
			origin = line
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
		if !more {
			break
		}
	}
	return origin, b.String()
}
