package endpoint

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Dialect string

const (
	DialectMysql Dialect = "mysql"
	DialectPgsql Dialect = "pgsql"
)

// DefaultTable 保存接口声明的表
const DefaultTable = "api_endpoints"

// DB 从数据库表读取接口及其声明
//
//	url_path    varchar  not null
//	method      varchar  not null  -- get / post
//	tag         varchar  null
//	declaration text     null      -- yaml, null 表示没有声明
type DB struct {
	db      *sql.DB
	dialect Dialect
}

// Open 按连接配置的 driver 打开
func Open(conf map[interface{}]interface{}) (*DB, error) {
	switch Dialect(fmt.Sprint(conf["driver"])) {
	case DialectMysql:
		return NewMysql(conf)
	case DialectPgsql:
		return NewPgsql(conf)
	default:
		return nil, fmt.Errorf("unsupported driver %v", conf["driver"])
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func quoteTable(dialect Dialect, table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		switch dialect {
		case DialectMysql:
			parts[i] = "`" + strings.ReplaceAll(p, "`", "``") + "`"
		default:
			parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
		}
	}
	return strings.Join(parts, ".")
}

func selectEndpointsSQL(dialect Dialect, table string) string {
	return "SELECT url_path, method, tag, declaration FROM " + quoteTable(dialect, table) + " ORDER BY url_path, method"
}

// Endpoints 读取表里的全部接口
func (d *DB) Endpoints(ctx context.Context, table string) ([]*Endpoint, error) {
	if table == "" {
		table = DefaultTable
	}
	rows, err := d.db.QueryContext(ctx, selectEndpointsSQL(d.dialect, table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	return scanEndpoints(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanEndpoints(rows rowScanner) ([]*Endpoint, error) {
	got := make([]*Endpoint, 0)
	for rows.Next() {
		var (
			urlPath     string
			method      string
			tag         sql.NullString
			declaration sql.NullString
		)
		if err := rows.Scan(&urlPath, &method, &tag, &declaration); err != nil {
			return nil, err
		}
		m, err := ParseMethod(method)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", urlPath, err)
		}
		var decl *string
		if declaration.Valid {
			s := declaration.String
			decl = &s
		}
		got = append(got, NewEndpoint(urlPath, m, tag.String, decl))
	}
	return got, rows.Err()
}
