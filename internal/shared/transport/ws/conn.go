package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"MapForge/modules/kit/logx"
)

// Conn 是订阅连接：只向客户端推送，读循环仅用于感知对端关闭。
type Conn struct {
	conn      *websocket.Conn
	outChan   chan *RespBody
	done      chan struct{}
	closeOnce sync.Once
	log       logx.Logger
}

func NewConn(wsConn *websocket.Conn, l logx.Logger) *Conn {
	if l == nil {
		l = logx.NewZapLogger(nil)
	}
	return &Conn{
		conn:    wsConn,
		outChan: make(chan *RespBody, 256),
		done:    make(chan struct{}),
		log:     l,
	}
}

func (c *Conn) Run() {
	go c.readLoop()
	go c.writeLoop()
}

// Push 非阻塞投递；订阅方消费过慢把缓冲打满时直接断开，避免拖垮广播方。
func (c *Conn) Push(name string, data any) {
	msg := &RespBody{
		Name: name,
		Msg:  data,
	}
	select {
	case c.outChan <- msg:
	case <-c.done:
	default:
		c.log.Warn("ws conn out channel full, closing", zap.String("addr", c.Addr()))
		c.Close()
	}
}

func (c *Conn) Addr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Conn) readLoop() {
	defer func() {
		if err := recover(); err != nil {
			e := fmt.Sprintf("%v", err)
			c.log.Error("ws readLoop error", zap.String("err", e))
		}
		c.Close()
	}()
	for {
		// 订阅流没有上行协议，读到错误即认为连接结束
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Conn) writeLoop() {
	for {
		select {
		case msg, ok := <-c.outChan:
			if ok {
				c.write(msg)
			}
		case <-c.done:
			return
		}
	}
}

func (c *Conn) write(msg *RespBody) {
	raw, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("ws write marshal json error", zap.Error(err))
		return
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		c.log.Error("ws write error", zap.Error(err))
	}
}

func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
		close(c.done)
	})
}

// Done 用于感知连接生命周期结束（连接关闭时该 channel 会被关闭）
func (c *Conn) Done() <-chan struct{} {
	return c.done
}
