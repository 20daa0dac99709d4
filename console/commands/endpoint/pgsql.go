package endpoint

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-home-admin/home/bootstrap/services"
	_ "github.com/lib/pq"
)

func pgsqlDSN(conf map[interface{}]interface{}) string {
	config := services.NewConfig(conf)
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.GetString("username", "root"),
		config.GetString("password", "123456"),
		config.GetString("host", "localhost"),
		config.GetInt("port", 5432),
		config.GetString("database", "demo"),
		config.GetString("sslmode", "disable"),
	)
}

// NewPgsql 按 database.yaml 里的一个 pgsql 连接打开连接池
func NewPgsql(conf map[interface{}]interface{}) (*DB, error) {
	db, err := sql.Open("postgres", pgsqlDSN(conf))
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	return &DB{db: db, dialect: DialectPgsql}, nil
}
