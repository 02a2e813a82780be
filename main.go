package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"riskscorer/internal/config"
	"riskscorer/internal/errorx"
	"riskscorer/internal/handler"
	"riskscorer/internal/svc"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/riskscorer.yaml", "the config file")

func main() {
	flag.Parse()

	// .env 可选, 不存在时直接用进程环境变量
	_ = godotenv.Load()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf, rest.WithCors(c.CorsOrigins...))
	defer server.Stop()

	errorx.Register()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	// 设置优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	fmt.Printf("explorer backend: %s, narrative enrichment: %v\n", c.Explorer.Backend, c.Narrative.EnrichInsights)

	go func() {
		server.Start()
	}()

	<-quit
	fmt.Println("\nshutting down...")
}
