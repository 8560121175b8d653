package serverconfig

import (
	"time"

	"MapForge/internal/shared/config"
)

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Storage    StorageConfig    `yaml:"storage" mapstructure:"storage"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	Editor     EditorConfig     `yaml:"editor" mapstructure:"editor"`
	Log        config.LogConfig `yaml:"log" mapstructure:"log"`
}

type HTTPServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// StorageConfig 选择地图仓储后端。
type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // file / mysql / mongodb
	Dir    string `yaml:"dir" mapstructure:"dir"`       // file 后端的数据目录
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
}

type MongoDBConfig struct {
	URI            string        `yaml:"uri" mapstructure:"uri"`
	Database       string        `yaml:"database" mapstructure:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

type EditorConfig struct {
	// EventLogSize 是内存事件日志保留的最近事件条数。
	EventLogSize int `yaml:"event_log_size" mapstructure:"event_log_size"`
}
