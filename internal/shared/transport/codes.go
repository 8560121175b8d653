package transport

// BizCode 是业务码的强类型封装，减少在日志上下文里误传普通 int 的风险。
type BizCode int

// 业务码约定（响应体里的 code 字段，HTTP 状态码恒为 200）：
// - 0：成功
// - 1~499：业务拒绝（access 日志记 WARN）
// - >=500：技术错误（access 日志记 ERROR）
const (
	OK                 = 0
	InvalidParam       = 400
	NotFound           = 404
	Conflict           = 409
	PreconditionFailed = 412
	SystemError        = 500
)
