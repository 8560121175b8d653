package handler

import (
	"context"
	nethttp "net/http"
	"strconv"

	"MapForge/internal/shared/transport"
	"MapForge/internal/terrain/app"
	"MapForge/internal/terrain/domain"
	"MapForge/internal/terrain/interfaces/handler/dto"
	"MapForge/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// EventLog 提供最近事件的回放，由进程装配时注入内存环。
type EventLog interface {
	Snapshot() []domain.Event
}

type Maps struct {
	editor *app.EditorService
	events EventLog
	log    logx.Logger
}

func NewMaps(editor *app.EditorService, events EventLog, log logx.Logger) *Maps {
	return &Maps{
		editor: editor,
		events: events,
		log:    log,
	}
}

func (h *Maps) RegisterRoutes(group *gin.RouterGroup) {
	maps := group.Group("/maps")
	maps.POST("", h.Create)
	maps.GET("", h.List)
	maps.GET("/open", h.Sessions)
	maps.GET("/events", h.Events)
	maps.GET("/:name", h.Get)
	maps.DELETE("/:name", h.Delete)
	maps.POST("/:name/open", h.Open)
	maps.POST("/:name/save", h.Save)
	maps.POST("/:name/close", h.Close)
	maps.PUT("/:name/name", h.Rename)
	maps.PUT("/:name/size", h.Resize)
	maps.PUT("/:name/tiles", h.SetTile)
	maps.GET("/:name/tiles", h.TileAt)
	maps.POST("/:name/units", h.AddUnit)
	maps.DELETE("/:name/units", h.RemoveUnit)
	maps.GET("/:name/units", h.UnitAt)
}

func (h *Maps) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateMapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	if err := h.editor.Create(ctx, req.Name, req.Width, req.Height); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) List(c *gin.Context) {
	ctx := c.Request.Context()

	names, err := h.editor.List(ctx)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, names)
}

func (h *Maps) Sessions(c *gin.Context) {
	h.ok(c, h.editor.Sessions())
}

func (h *Maps) Events(c *gin.Context) {
	h.ok(c, h.events.Snapshot())
}

func (h *Maps) Get(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := h.editor.Get(ctx, c.Param("name"))
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, doc)
}

func (h *Maps) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.editor.Delete(ctx, c.Param("name")); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) Open(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.editor.Open(ctx, c.Param("name")); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) Save(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.editor.Save(ctx, c.Param("name")); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) Close(c *gin.Context) {
	ctx := c.Request.Context()

	// 空 body 等价于 {force: false}
	var req dto.CloseMapReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, transport.InvalidParam, "参数有误")
			return
		}
	}

	if err := h.editor.Close(ctx, c.Param("name"), req.Force); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RenameMapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	if err := h.editor.Rename(ctx, c.Param("name"), req.Name); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) Resize(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ResizeMapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	if err := h.editor.Resize(ctx, c.Param("name"), req.Width, req.Height); err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, nil)
}

func (h *Maps) SetTile(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SetTileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	changed, err := h.editor.SetTile(ctx, c.Param("name"), req.Terrain, req.X, req.Y)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.ChangedResp{Changed: changed})
}

func (h *Maps) TileAt(c *gin.Context) {
	ctx := c.Request.Context()

	x, y, ok := h.coords(c)
	if !ok {
		return
	}
	tag, err := h.editor.TileAt(ctx, c.Param("name"), x, y)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.TileResp{Terrain: tag})
}

func (h *Maps) AddUnit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AddUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	added, err := h.editor.AddUnit(ctx, c.Param("name"), req.X, req.Y, req.Faction, req.BattleClass)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.AddedResp{Added: added})
}

func (h *Maps) RemoveUnit(c *gin.Context) {
	ctx := c.Request.Context()

	x, y, ok := h.coords(c)
	if !ok {
		return
	}
	removed, err := h.editor.RemoveUnit(ctx, c.Param("name"), x, y)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.RemovedResp{Removed: removed})
}

func (h *Maps) UnitAt(c *gin.Context) {
	ctx := c.Request.Context()

	x, y, ok := h.coords(c)
	if !ok {
		return
	}
	unit, err := h.editor.UnitAt(ctx, c.Param("name"), x, y)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, unit)
}

// coords 解析 ?x=&y= 查询参数；失败时已写响应。
func (h *Maps) coords(c *gin.Context) (int, int, bool) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	if errX != nil || errY != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return 0, 0, false
	}
	return x, y, true
}

func (h *Maps) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *Maps) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

// error 统一收尾失败请求：技术错误记 ERROR（带栈），业务拒绝记 INFO。
func (h *Maps) error(ctx context.Context, c *gin.Context, err error) {
	code, msg := HandleError(ctx, err)
	if code == transport.SystemError {
		logx.ReportSysErrorWithLoggerContext(ctx, h.log, logx.NewSysLog("editor request failed", err))
	} else {
		logx.ReportBizWithLoggerContext(ctx, h.log, logx.NewBizLog("editor request reject", errorReason(err), msg))
	}
	h.fail(c, code, msg)
}
