package errx

import (
	"errors"
	"fmt"
	"runtime"
)

// Code 是错误的对外语义标识，跨进程、跨存储保持稳定。
type Code string

type kind uint8

const (
	kindBiz kind = iota
	kindSys
)

// Reason 约定失败原因码的来源，通常由应用层的 reason 常量实现。
type Reason interface {
	ReasonCode() string
}

// Error 是全仓库统一的错误载体。
//
// 字段分工：
// - code/msg 承载对外语义；msg 允许为空（领域错误通常只有 code）
// - data 携带业务上下文；派生时整体复制，哨兵对象永远不被改写
// - cause 是原始错误链，仅用于溯源与日志，不参与对外语义
// - stack 只在系统类错误第一次挂 cause 时捕获，业务类错误从不捕获
type Error struct {
	code  Code
	msg   string
	data  map[string]any
	cause error
	stack []uintptr
	kind  kind
}

// NewBiz 创建业务类哨兵错误：可预期的拒绝，不带栈。
func NewBiz(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindBiz}
}

// NewSys 创建系统类哨兵错误：技术故障，挂 cause 时会捕获一次栈。
func NewSys(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindSys}
}

// derive 复制出一个可安全修改的新对象，哨兵本体保持只读。
func (e *Error) derive() *Error {
	return &Error{
		code:  e.code,
		msg:   e.msg,
		data:  cloneData(e.data),
		cause: e.cause,
		stack: cloneStack(e.stack),
		kind:  e.kind,
	}
}

// WithData 在副本上追加一组业务上下文。
func (e *Error) WithData(key string, value any) *Error {
	next := e.derive()
	if next.data == nil {
		next.data = make(map[string]any, 1)
	}
	next.data[key] = value
	return next
}

// WithReason 等价于 WithData("reason", r.ReasonCode())。
func (e *Error) WithReason(r Reason) *Error {
	if r == nil {
		return e.WithData("reason", "")
	}
	return e.WithData("reason", r.ReasonCode())
}

// WithCause 在副本上挂接原始错误。
// 系统类错误若整条链上尚无栈，则在此处捕获一次；链上已有栈则不重复捕获。
func (e *Error) WithCause(cause error) *Error {
	next := e.derive()
	next.cause = cause
	if next.kind == kindSys && cause != nil && len(next.stack) == 0 && !stackInChain(cause) {
		next.stack = ownStack()
	}
	return next
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.msg == "" && e.cause == nil:
		return string(e.code)
	case e.msg == "":
		return fmt.Sprintf("%s: %v", e.code, e.cause)
	case e.cause == nil:
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	default:
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
}

// Unwrap 让 errors.Is / errors.As 沿 cause 链溯源。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is 只按错误码判断语义是否相同，忽略 msg/data/cause。
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.code == t.code
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) CodeText() string {
	return string(e.Code())
}

func (e *Error) Msg() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Data 返回业务上下文的拷贝，外部改不到错误本体。
func (e *Error) Data() map[string]any {
	if e == nil {
		return nil
	}
	return cloneData(e.data)
}

// Reason 提取 WithReason 写入的原因码（data 里的 reason 键）。
func (e *Error) Reason() string {
	if e == nil || e.data == nil {
		return ""
	}
	s, _ := e.data["reason"].(string)
	return s
}

// Stack 返回错误最早被转换成系统错误那一刻的调用栈。
func (e *Error) Stack() []uintptr {
	if e == nil {
		return nil
	}
	return cloneStack(e.stack)
}

func cloneData(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneStack(in []uintptr) []uintptr {
	if len(in) == 0 {
		return nil
	}
	out := make([]uintptr, len(in))
	copy(out, in)
	return out
}

// ownStack 捕获 WithCause 调用处的栈（跳过 Callers/ownStack/WithCause 三帧）。
func ownStack() []uintptr {
	const maxDepth = 64
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	if n <= 0 {
		return nil
	}
	return pcs[:n]
}

func stackInChain(err error) bool {
	const maxDepth = 32
	for i := 0; i < maxDepth && err != nil; i++ {
		if sp, ok := err.(interface{ Stack() []uintptr }); ok && len(sp.Stack()) != 0 {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
