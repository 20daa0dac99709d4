package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctfang/command"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func repRootPath(input command.Input) command.Input {
	root := getRootPath()

	for str, li := range input.Option {
		for i, s := range li {
			li[i] = strings.Replace(s, "@root", root, 1)
		}
		input.Option[str] = li
	}

	return input
}

// 加载根目录的 .env, 文件不存在不影响继续执行
func loadEnv(root string) {
	err := godotenv.Load(root + "/.env")
	if err != nil {
		logrus.WithField("path", root+"/.env").Debug("文件不存在, 无法加载环境变量")
	}
}

// loadConnections 读取 database.yaml 的 connections, 先替换 env("KEY", default)
func loadConnections(file string) (map[string]map[interface{}]interface{}, error) {
	fileContext, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	fileContext = SetEnv(fileContext)

	m := make(map[string]interface{})
	if err = yaml.Unmarshal(fileContext, &m); err != nil {
		return nil, fmt.Errorf("配置解析错误 %s: %w", file, err)
	}
	connections, ok := m["connections"].(map[interface{}]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: connections is not a mapping", file)
	}

	got := make(map[string]map[interface{}]interface{}, len(connections))
	for s, confT := range connections {
		conf, ok := confT.(map[interface{}]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: connection %v is not a mapping", file, s)
		}
		got[fmt.Sprint(s)] = conf
	}
	return got, nil
}

// SetEnv 对字符串内容进行替换环境变量
func SetEnv(fileContext []byte) []byte {
	str := string(fileContext)
	arr := strings.Split(str, "\n")

	for _, s := range arr {
		if !strings.Contains(s, " env(\"") {
			continue
		}
		arr2 := strings.SplitN(s, ": ", 2)
		if len(arr2) != 2 {
			continue
		}
		nS := arr2[1]
		st, et := GetBrackets(nS, '"', '"')
		if et <= st {
			continue
		}
		key := nS[st+1 : et]
		nS = strings.TrimSpace(nS[et+1:])
		nS = strings.Trim(nS, ")") // 得到 ,"val" or ,val

		// 尝试获取默认值
		val := ""
		valIsStr := false
		if len(nS) > 1 && nS[0:1] == "," {
			nS = strings.TrimSpace(nS[1:])
			if nS != "" && nS[0:1] == "\"" {
				// 使用双引号括起来的就是字符串
				valIsStr = true
				st, et = GetBrackets(nS, '"', '"')
				if et > st {
					val = nS[st+1 : et]
				}
			} else {
				val = nS
			}
		}

		envVal, has := os.LookupEnv(key)
		if has {
			val = envVal
		}

		if !valIsStr {
			// 默认情况, 把值粘贴到yaml, 类型自动识别
			str = strings.Replace(str, s, arr2[0]+": "+val, 1)
		} else {
			// 如果有默认值, 根据默认值识别类型
			str = strings.Replace(str, s, arr2[0]+": \""+val+"\"", 1)
		}
	}

	return []byte(str)
}

// GetBrackets 第一对括号的位置, start 和 end 相同时就是第一对引号
func GetBrackets(str string, start, end int32) (int, int) {
	var startInt, endInt int

	bCount := 0
	for i, w := range str {
		if bCount == 0 {
			if w == start {
				startInt = i
				bCount++
			}
		} else {
			switch w {
			case end:
				bCount--
				if bCount <= 0 {
					endInt = i
					return startInt, endInt
				}
			case start:
				bCount++
			}
		}
	}

	return startInt, endInt
}
