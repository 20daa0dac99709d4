package parser

import (
	"strings"
	"unicode"
)

func InArrString(str string, arr []string) bool {
	for _, s := range arr {
		if s == str {
			return true
		}
	}
	return false
}

// StringToUpperCamel 任意分隔的字符串转大驼峰
//
// 非字母数字的字符都视为分隔符, 另外在小写到大写、连续大写到大写加小写处断词,
// 每个词首字母大写其余小写: "Response_users/list-all" => "ResponseUsersListAll",
// "HTTPServer" => "HttpServer", "Response_1_2_3" => "Response123".
func StringToUpperCamel(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func splitWords(s string) []string {
	words := make([]string, 0)
	r := []rune(s)
	start := -1
	for i := 0; i < len(r); i++ {
		c := r[i]
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			if start >= 0 {
				words = append(words, string(r[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := r[i-1]
		lowerUpper := unicode.IsLower(prev) && unicode.IsUpper(c)
		acronym := unicode.IsUpper(prev) && unicode.IsUpper(c) && i+1 < len(r) && unicode.IsLower(r[i+1])
		if lowerUpper || acronym {
			words = append(words, string(r[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(r[start:]))
	}
	return words
}
