package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

func load(configPath string, out any) {
	if !fileExist(configPath) {
		panic(fmt.Sprintf("config file not exist, configPath=%v", configPath))
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	// todo 确认热更新时 out 的并发读取问题
	v.OnConfigChange(func(e fsnotify.Event) {
		// 热更新失败不 panic：编辑器内存里可能有未保存的会话，沿用旧配置即可
		if err := unmarshal(v, out); err != nil {
			log.Printf("配置热更新失败，沿用旧配置: %v", err)
			return
		}
		log.Println("配置文件已热更新")
	})
	v.WatchConfig()
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := unmarshal(v, out); err != nil {
		panic(err)
	}
}

// unmarshal 统一挂上 decode hook：支持 "5s" 这样的 duration 字符串。
func unmarshal(v *viper.Viper, out any) error {
	return v.Unmarshal(out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
