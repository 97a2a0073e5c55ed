// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"github.com/RayDR/YelpOut/app/api/planner/internal/bootstrap"
	"github.com/RayDR/YelpOut/app/api/planner/internal/config"
	"github.com/RayDR/YelpOut/app/api/planner/internal/handler"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/planner-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	stopAsynq := bootstrap.StartAsynq(ctx)
	defer stopAsynq()

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
