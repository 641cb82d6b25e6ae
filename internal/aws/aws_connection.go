package aws

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// DBI는 세션 저장소용 MySQL 접속 정보입니다.
type DBI struct {
	User     string
	Password string
	Endpoint string
	Port     int
	Database string
}

// CreateConnection은 세션 저장소가 사용할 MySQL 커넥션 풀을 생성합니다.
func CreateConnection(i DBI) (*sqlx.DB, error) {
	// DSN (Data Source Name)
	// (세션 만료 시각 비교를 위해 parseTime=true 필수)
	DSN := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		i.User, i.Password, i.Endpoint, i.Port, i.Database)

	// sqlx.Connect
	db, err := sqlx.Connect("mysql", DSN)
	if err != nil {
		return nil, err
	}

	// 세션 조회/갱신만 하므로 풀은 작게 유지합니다.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}
