package openapi

import (
	"fmt"
	"strconv"
)

// Kind 声明树节点类型
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindBool
	KindInt
	KindFloat
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "absent"
	}
}

// Value is one node of a decoded declaration tree. The zero Value is the
// absent marker: every accessor on it, or on a node of the wrong shape,
// returns the absent marker again instead of failing.
type Value struct {
	kind Kind
	str  string
	b    bool
	i    int64
	f    float64
	seq  []Value
	m    map[string]Value
}

// NewValue 把 yaml.v2 解出来的 interface{} 转换成 Value
func NewValue(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: KindNull}
	case Value:
		return t
	case string:
		return Value{kind: KindString, str: t}
	case bool:
		return Value{kind: KindBool, b: t}
	case int:
		return Value{kind: KindInt, i: int64(t)}
	case int64:
		return Value{kind: KindInt, i: t}
	case uint64:
		return Value{kind: KindInt, i: int64(t)}
	case float32:
		return Value{kind: KindFloat, f: float64(t)}
	case float64:
		return Value{kind: KindFloat, f: t}
	case []interface{}:
		seq := make([]Value, len(t))
		for i, item := range t {
			seq[i] = NewValue(item)
		}
		return Value{kind: KindSequence, seq: seq}
	case map[interface{}]interface{}:
		out := Value{kind: KindMapping, m: make(map[string]Value, len(t))}
		for k, item := range t {
			out.m[mappingKey(k)] = NewValue(item)
		}
		return out
	case map[string]interface{}:
		out := Value{kind: KindMapping, m: make(map[string]Value, len(t))}
		for k, item := range t {
			out.m[k] = NewValue(item)
		}
		return out
	default:
		return Value{kind: KindString, str: fmt.Sprint(t)}
	}
}

// yaml 的 key 可以是任意标量, 统一转成字符串
func mappingKey(k interface{}) string {
	switch t := k.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

func (v Value) IsMapping() bool {
	return v.kind == KindMapping
}

func (v Value) IsString() bool {
	return v.kind == KindString
}

// Get returns the value stored under key, or the absent marker when v is not
// a mapping or has no such key.
func (v Value) Get(key string) Value {
	if v.kind != KindMapping {
		return Value{}
	}
	return v.m[key]
}

// Path 逐级 Get
func (v Value) Path(keys ...string) Value {
	for _, key := range keys {
		v = v.Get(key)
	}
	return v
}

func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// StrOr 不是字符串时返回默认值
func (v Value) StrOr(def string) string {
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) Sequence() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}
