package serverconfig

import (
	"os"

	"MapForge/internal/shared/config"
)

var Conf Config

// Load 加载服务配置。MAPFORGE_CONF 指定了配置文件路径时优先使用，
// 否则从当前目录向上查找 configs/conf.yml（任意子目录下启动或跑测试都能命中仓库配置）。
func Load() {
	config.Load(os.Getenv("MAPFORGE_CONF"), &Conf)
}
