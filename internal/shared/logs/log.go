package logs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"MapForge/internal/shared/config"
)

var logger *zap.Logger = zap.NewNop()

// Logger 返回全局 logger，供 logx 适配器等需要原生 *zap.Logger 的地方使用。
func Logger() *zap.Logger {
	return logger
}

// Init 初始化全局 logger：控制台彩色输出，配置了 file_dir 时同时写
// <file_dir>/<appName>.log（JSON、lumberjack 切割）。重复调用会替换全局 logger。
func Init(appName string, cfg config.LogConfig) error {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	// AtomicLevel 留给将来动态调级
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalColorLevelEncoder))
	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig(zapcore.CapitalLevelEncoder))

	consoleSyncer := zapcore.Lock(os.Stderr)
	core := zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel)
	if cfg.FileDir != "" {
		// 两路 core 分开编码，避免把 ANSI 颜色写进日志文件
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(jsonEncoder, zapcore.AddSync(fileWriter(appName, cfg)), atomicLevel),
		)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	old := logger
	logger = zap.New(core, opts...).Named(appName)
	if old != nil {
		_ = old.Sync()
	}
	return nil
}

func encoderConfig(level zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    level,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func fileWriter(appName string, cfg config.LogConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.FileDir, appName+".log"),
		MaxSize:    max(1, cfg.MaxSize), // MB
		MaxBackups: max(0, cfg.MaxBackups),
		MaxAge:     max(0, cfg.MaxAge), // 天
		Compress:   cfg.Compress,
	}
}

// 包级辅助函数：logger 初始为 no-op，未 Init 时调用不会 panic。

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// DPanic 在开发模式下触发 panic，生产模式只记 ERROR。
func DPanic(msg string, fields ...zap.Field) {
	logger.DPanic(msg, fields...)
}

func Panic(msg string, fields ...zap.Field) {
	logger.Panic(msg, fields...)
}

// Fatal 记录后以退出码 1 终止进程。
func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
