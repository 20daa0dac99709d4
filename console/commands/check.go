package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ctfang/command"
	"github.com/go-home-admin/apidoc/openapi"
	"github.com/logrusorgru/aurora/v3"
	"github.com/sirupsen/logrus"
)

// CheckCommand @Bean
type CheckCommand struct{}

func (CheckCommand) Configure() command.Configure {
	return command.Configure{
		Name:        "check:declaration",
		Description: "检查每个接口的声明是否能解析",
		Input: command.Argument{
			Option: sourceOptions(),
		},
	}
}

func (CheckCommand) Execute(input command.Input) {
	input = repRootPath(input)

	project, err := newSourceConfig(input).load(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("读取接口失败")
	}

	if failed := checkEndpoints(logrus.StandardLogger(), project.Endpoints(), os.Stdout); failed > 0 {
		os.Exit(1)
	}
}

// checkEndpoints 逐个输出 PASS/FAIL/NONE, 返回失败数量
func checkEndpoints(log logrus.FieldLogger, endpoints []openapi.Endpoint, w io.Writer) int {
	var pass, failed, none int
	for _, e := range endpoints {
		var status aurora.Value
		switch {
		case e.Declaration() == nil:
			status = aurora.Faint("NONE")
			none++
		default:
			if _, ok := openapi.ParseDeclaration(log, e.URLPath(), e.Declaration()); ok {
				status = aurora.Green("PASS")
				pass++
			} else {
				status = aurora.Red("FAIL")
				failed++
			}
		}
		fmt.Fprintf(w, "[%s] %-4s %s\n", status, e.Method(), e.URLPath())
	}

	fmt.Fprintf(w, "pass: %d, fail: %d, none: %d\n", pass, failed, none)
	return failed
}
