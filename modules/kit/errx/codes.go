package errx

// 跨模块统一的系统类错误码。
//
// 约束：
// - kit 只收纳系统/技术类错误的归一化码（便于告警、观测、排障）
// - 业务域错误码（例如 TERRAIN_NOT_FOUND）由各业务自行定义，不允许集中到这里

const (
	// CodeUnavailable 表示依赖不可用（DB/Mongo/文件系统异常等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
)

// ErrUnavailable 是统一的系统类哨兵错误，用 WithReason/WithCause 派生具体场景。
var ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
