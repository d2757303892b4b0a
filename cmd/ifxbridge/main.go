package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meoying/ifxbridge/internal/catalog"
	"github.com/meoying/ifxbridge/internal/datasource"
	"github.com/meoying/ifxbridge/internal/datasource/single"
	ifxlog "github.com/meoying/ifxbridge/internal/driver/informix/log"
	"github.com/meoying/ifxbridge/internal/registry"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	cfile := pflag.String("config",
		"config/config.yaml", "配置文件路径")
	pflag.Parse()
	viper.SetConfigType("yaml")

	viper.SetConfigFile(*cfile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("初始化读取配置文件失败 %w", err))
	}
	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		panic(fmt.Errorf("解析配置文件失败 %w", err))
	}

	// Informix 的驱动要由宿主应用提前注册进 database/sql，
	// 这里只按配置里的名字打开。注册表显式构造后往下传，不搞全局变量
	r := registry.New()
	r.Register(cfg.Driver, func(dsn string) (datasource.DataSource, error) {
		return single.OpenDB(cfg.Driver, dsn)
	})
	ds, err := r.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		panic(err)
	}
	ds = ifxlog.NewDataSource(ds, ifxlog.WithLogger(slog.Default()))
	defer func() { _ = ds.Close() }()

	// 连通性检查顺便数一下业务表
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tables, err := catalog.NewReader(ds).Tables(ctx)
	if err != nil {
		panic(err)
	}
	slog.Info("连接成功", "表数量", len(tables))
}
