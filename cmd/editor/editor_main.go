package main

import (
	"MapForge/internal/shared/infrastructure/db"
	sharedmongo "MapForge/internal/shared/infrastructure/mongo"
	"MapForge/internal/shared/logs"
	"MapForge/internal/shared/serverconfig"
	transporthttp "MapForge/internal/shared/transport/http"
	"MapForge/internal/shared/transport/ws"
	"MapForge/internal/terrain/app"
	terrainevents "MapForge/internal/terrain/infra/events"
	filerepo "MapForge/internal/terrain/infra/persistence/file"
	"MapForge/internal/terrain/infra/persistence/model"
	mongorepo "MapForge/internal/terrain/infra/persistence/mongodb"
	mysqlrepo "MapForge/internal/terrain/infra/persistence/mysql"
	"MapForge/internal/terrain/interfaces"
	"MapForge/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	serverconfig.Load()
	if err := logs.Init("editor", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))

	baseLogger := logx.NewZapLogger(logs.Logger())

	repo, closeStorage := openStorage()
	defer closeStorage()

	hub := ws.NewHub(baseLogger)
	defer hub.Close()

	memLog := terrainevents.NewMemoryLog(serverconfig.Conf.Editor.EventLogSize)
	sink := terrainevents.NewMultiSink(
		terrainevents.NewLoggerSink(baseLogger),
		memLog,
		terrainevents.NewHubSink(hub),
	)
	editor := app.NewEditorService(repo, sink)

	serverCfg := serverconfig.Conf.HTTPServer
	host := serverCfg.Host
	if host == "" {
		host = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", host, serverCfg.Port)

	httpServer := transporthttp.NewHttpServer(addr, nil, baseLogger)
	editorModule := interfaces.New(editor, memLog, baseLogger)
	editorModule.Register(httpServer.Engine().Group("/api"))

	wsServer := ws.NewServer(hub, baseLogger)
	httpServer.Engine().Any("/ws/events", gin.WrapH(wsServer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("editor server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	timeout := serverCfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}

// openStorage 按配置选择仓储后端，返回仓储和资源清理函数。
func openStorage() (app.TerrainRepo, func()) {
	cfg := serverconfig.Conf.Storage
	switch cfg.Driver {
	case "mysql":
		gdb, err := db.Open(serverconfig.Conf.MySQL)
		if err != nil {
			logs.Fatal("open mysql failed", zap.Error(err))
		}
		if err := gdb.AutoMigrate(&model.TerrainRow{}); err != nil {
			logs.Fatal("migrate terrain table failed", zap.Error(err))
		}
		return mysqlrepo.NewTerrainRepo(gdb), func() {}
	case "mongodb":
		client, err := sharedmongo.Open(serverconfig.Conf.MongoDB, logs.Logger())
		if err != nil {
			logs.Fatal("open mongodb failed", zap.Error(err))
		}
		cleanup := func() {
			_ = client.Disconnect(context.Background())
		}
		return mongorepo.NewTerrainRepo(client.Database(serverconfig.Conf.MongoDB.Database)), cleanup
	default:
		dir := cfg.Dir
		if dir == "" {
			dir = "data/maps"
		}
		repo, err := filerepo.NewTerrainRepo(dir)
		if err != nil {
			logs.Fatal("open map dir failed", zap.Error(err))
		}
		return repo, func() {}
	}
}
