package errx

import (
	"errors"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("BIZ_X", "x").WithData("k", "v").WithCause(errors.New("cause1"))
	e2 := NewBiz("BIZ_X", "x2").WithData("k2", "v2").WithCause(errors.New("cause2"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("disk full")
	err := NewBiz("BIZ_MAP_EXISTS", "地图已存在").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	cause := errors.New("io timeout")
	sys := NewSys("SYS_STORE_UNAVAILABLE", "系统不可用").WithCause(cause)
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈（发生/转换处），got=%v", got)
	}

	// 再包一层系统错误：如果下层已有栈，上层不应重复捕获
	sys2 := NewSys("SYS_SERVER_ERROR", "服务异常").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈（cause 链里已有栈），got=%v", got)
	}
}

func TestError_WithData_派生不污染哨兵(t *testing.T) {
	sentinel := NewBiz("BIZ_X", "")
	derived := sentinel.WithData("map", "ch1")
	if sentinel.Data() != nil {
		t.Fatalf("期望哨兵错误的 data 保持 nil，got=%v", sentinel.Data())
	}
	if got := derived.Data()["map"]; got != "ch1" {
		t.Fatalf("期望派生错误携带 data，got=%v", got)
	}
	if !errors.Is(derived, sentinel) {
		t.Fatalf("期望派生错误与哨兵同语义，derived=%v", derived)
	}
}

type testReason struct{ code string }

func (r testReason) ReasonCode() string { return r.code }

func TestError_WithReason_写入data并可提取(t *testing.T) {
	err := NewSys("SYS_STORE_UNAVAILABLE", "").WithReason(testReason{code: "STORE_SAVE_FAIL"})
	if got := err.Reason(); got != "STORE_SAVE_FAIL" {
		t.Fatalf("期望 Reason()==STORE_SAVE_FAIL, got=%q", got)
	}
}
