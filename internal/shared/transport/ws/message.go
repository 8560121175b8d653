package ws

// RespBody 是推送消息的统一信封，code 语义与 HTTP 响应体一致（0 表示成功）。
type RespBody struct {
	Name string `json:"name"`
	Code int    `json:"code"`
	Msg  any    `json:"msg"`
}
