package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctfang/command"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-home-admin/apidoc/openapi"
	"github.com/goccy/go-json"
	"github.com/logrusorgru/aurora/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// OpenapiCommand @Bean
type OpenapiCommand struct{}

func (OpenapiCommand) Configure() command.Configure {
	return command.Configure{
		Name:        "make:openapi",
		Description: "根据接口声明生成 openapi 3 文档",
		Input: command.Argument{
			Option: append(sourceOptions(), command.ArgParam{
				Name:        "out",
				Description: "生成文件, .yaml/.yml 后缀输出 yaml",
				Default:     "@root/web/openapi.json",
			}),
			Has: []command.ArgParam{
				{
					Name:        "--validate",
					Description: "校验生成的文档",
				},
			},
		},
	}
}

func (OpenapiCommand) Execute(input command.Input) {
	input = repRootPath(input)
	ctx := context.Background()
	out := input.GetOption("out")

	project, err := newSourceConfig(input).load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("读取接口失败")
	}

	doc, err := openapi.NewBuilder().Build(ctx, project)
	if err != nil {
		logrus.WithError(err).Fatal("生成文档失败")
	}

	if input.GetHas("--validate") {
		if err = doc.Validate(ctx); err != nil {
			fmt.Println(aurora.Red("[FAIL]"), err)
			os.Exit(1)
		}
	}

	data, err := encodeDocument(doc, out)
	if err != nil {
		logrus.WithError(err).Fatal("编码文档失败")
	}
	if err = os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		logrus.WithError(err).Fatal("创建目录失败")
	}
	if err = os.WriteFile(out, data, 0644); err != nil {
		logrus.WithError(err).Fatal("写入文件失败")
	}

	fmt.Printf("%s %s, paths: %d, schemas: %d\n",
		aurora.Green("[OK]"), out, doc.Paths.Len(), len(doc.Components.Schemas))
}

// encodeDocument 按输出文件后缀编码, 默认 json
func encodeDocument(doc *openapi3.T, out string) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".yaml", ".yml":
		// json 也是 yaml, 经 MapSlice 转一次保留字段顺序
		m := yaml.MapSlice{}
		if err = yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return yaml.Marshal(m)
	default:
		return append(data, '\n'), nil
	}
}
