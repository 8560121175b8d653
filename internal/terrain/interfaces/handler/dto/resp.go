package dto

// Resp 是统一响应体：HTTP 状态码恒为 200，业务结果看 code。
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func Success(code int, data any) *Resp {
	return &Resp{
		Code: code,
		Msg:  "success",
		Data: data,
	}
}

func Error(code int, msg string) *Resp {
	return &Resp{
		Code: code,
		Msg:  msg,
	}
}
