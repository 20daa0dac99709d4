package endpoint

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-home-admin/home/bootstrap/services"
	_ "github.com/go-sql-driver/mysql"
)

func mysqlDSN(conf map[interface{}]interface{}) string {
	config := services.NewConfig(conf)
	return fmt.Sprintf(
		"%s:%s@tcp(%s)/%s",
		config.GetString("username", "root"),
		config.GetString("password", "123456"),
		config.GetString("host", "localhost:"+config.GetString("port", "3306")),
		config.GetString("database", "demo"),
	)
}

// NewMysql 按 database.yaml 里的一个 mysql 连接打开连接池
func NewMysql(conf map[interface{}]interface{}) (*DB, error) {
	db, err := sql.Open("mysql", mysqlDSN(conf))
	if err != nil {
		return nil, err
	}
	// See "Important settings" section.
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	return &DB{db: db, dialect: DialectMysql}, nil
}
