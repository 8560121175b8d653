package middleware

import (
	"MapForge/internal/shared/transport"
	"MapForge/modules/kit/logx"
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respRecorder 复制一份响应体，供请求收尾时提取业务码。
type respRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *respRecorder) Write(data []byte) (int, error) {
	_, _ = w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *respRecorder) WriteString(s string) (int, error) {
	_, _ = w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// AccessLog 为每个请求建立日志上下文并在收尾时写访问日志。
// 业务码取自响应体的 code 字段；解析不出时按 HTTP 状态码归类。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		ctx := transport.NewContextWithParent(c.Request.Context(), action)
		c.Request = c.Request.WithContext(ctx)

		rec := &respRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		code, ok := bizCodeOf(rec.body.Bytes())
		switch {
		case ok:
			transport.SetBizCode(ctx, transport.BizCode(code))
		case c.Writer.Status() >= http.StatusBadRequest:
			transport.SetBizCode(ctx, transport.BizCode(transport.SystemError))
		default:
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}

		transport.WriteAccessLog(ctx, log)
	}
}

// bizCodeOf 从 {"code":123,...} 形态的响应体提取业务码。
func bizCodeOf(body []byte) (int, bool) {
	if len(body) == 0 {
		return 0, false
	}
	var payload struct {
		Code *int `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Code == nil {
		return 0, false
	}
	return *payload.Code, true
}
