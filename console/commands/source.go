package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ctfang/command"
	"github.com/go-home-admin/apidoc/console/commands/endpoint"
	"github.com/go-home-admin/apidoc/parser"
)

// 生成和检查共用的接口来源参数
func sourceOptions() []command.ArgParam {
	return []command.ArgParam{
		{
			Name:        "source",
			Description: "接口清单文件",
			Default:     "@root/api/endpoints.yaml",
		},
		{
			Name:        "dir",
			Description: "声明目录, 每个yaml文件是一个接口",
			Default:     "",
		},
		{
			Name:        "config",
			Description: "数据库配置文件",
			Default:     "@root/config/database.yaml",
		},
		{
			Name:        "conn",
			Description: "连接名称, 设置后从数据库表读取接口",
			Default:     "",
		},
		{
			Name:        "table",
			Description: "保存接口声明的表",
			Default:     endpoint.DefaultTable,
		},
		{
			Name:        "title",
			Description: "文档标题, 默认 APP_NAME 或 go.mod 的 module",
			Default:     "",
		},
		{
			Name:        "version",
			Description: "文档版本, 默认 APP_VERSION",
			Default:     "",
		},
	}
}

// 接口来源, 路径已经替换过 @root
type sourceConfig struct {
	Source  string
	Dir     string
	Config  string
	Conn    string
	Table   string
	Title   string
	Version string
}

func newSourceConfig(input command.Input) sourceConfig {
	return sourceConfig{
		Source:  input.GetOption("source"),
		Dir:     input.GetOption("dir"),
		Config:  input.GetOption("config"),
		Conn:    input.GetOption("conn"),
		Table:   input.GetOption("table"),
		Title:   input.GetOption("title"),
		Version: input.GetOption("version"),
	}
}

// load 按来源收集接口, 标题和版本依次取参数、环境变量、go.mod
func (c sourceConfig) load(ctx context.Context) (*endpoint.Project, error) {
	root := getRootPath()
	loadEnv(root)

	var project *endpoint.Project
	switch {
	case c.Conn != "":
		endpoints, err := loadTable(ctx, c.Config, c.Conn, c.Table)
		if err != nil {
			return nil, err
		}
		project = endpoint.NewProject("", "", endpoints)
	case c.Source != "" && parser.IsExist(c.Source):
		p, err := endpoint.LoadManifest(c.Source)
		if err != nil {
			return nil, err
		}
		project = p
	case c.Dir != "":
		project = endpoint.NewProject("", "", nil)
	default:
		return nil, fmt.Errorf("接口清单 %s 不存在, 也没有指定 dir 或 conn", c.Source)
	}

	if c.Dir != "" {
		endpoints, err := endpoint.LoadDir(c.Dir)
		if err != nil {
			return nil, err
		}
		project.Append(endpoints...)
	}

	project.Override(c.Title, c.Version)
	project.Fill(os.Getenv("APP_NAME"), os.Getenv("APP_VERSION"))
	if parser.IsExist(root + "/go.mod") {
		project.Fill(getModModule(), "")
	}

	return project, nil
}

func loadTable(ctx context.Context, config, conn, table string) ([]*endpoint.Endpoint, error) {
	connections, err := loadConnections(config)
	if err != nil {
		return nil, err
	}
	conf, ok := connections[conn]
	if !ok {
		return nil, fmt.Errorf("%s: 没有连接 %s", config, conn)
	}

	db, err := endpoint.Open(conf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", conn, err)
	}
	defer db.Close()

	return db.Endpoints(ctx, table)
}
