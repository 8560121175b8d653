package interfaces

import (
	"MapForge/internal/terrain/app"
	"MapForge/internal/terrain/interfaces/handler"
	"MapForge/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Module struct {
	maps *handler.Maps
}

func New(editor *app.EditorService, events handler.EventLog, log logx.Logger) *Module {
	return &Module{
		maps: handler.NewMaps(editor, events, log),
	}
}

func (m *Module) Register(group *gin.RouterGroup) {
	m.maps.RegisterRoutes(group)
}
