package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS showcase_status (
	id     TEXT PRIMARY KEY,
	status INTEGER NOT NULL
)`

// SQLiteStore 基于 SQLite 的状态表（纯 Go 驱动，无需 cgo）
// 适合已经使用 SQLite 保存数据的宿主应用
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore 打开（必要时创建）SQLite 状态表
//
// 参数：
//   - path: 数据库文件路径，":memory:" 表示内存数据库
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// 单连接：内存数据库每个连接都是独立的库
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create showcase_status table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get 读取状态，查询失败或值损坏时返回 StatusNeverStarted
func (s *SQLiteStore) Get(id string) int {
	var status int
	err := s.db.QueryRow(`SELECT status FROM showcase_status WHERE id = ?`, id).Scan(&status)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[SQLiteStore] Warning: failed to read status %q: %v", id, err)
		}
		return StatusNeverStarted
	}
	return normalizeStatus(status)
}

// Set 写入状态
func (s *SQLiteStore) Set(id string, status int) {
	_, err := s.db.Exec(`INSERT INTO showcase_status (id, status) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET status = excluded.status`, id, status)
	if err != nil {
		log.Printf("[SQLiteStore] Warning: failed to write status %q: %v", id, err)
	}
}

// Clear 清除所有状态
func (s *SQLiteStore) Clear() {
	if _, err := s.db.Exec(`DELETE FROM showcase_status`); err != nil {
		log.Printf("[SQLiteStore] Warning: failed to clear statuses: %v", err)
	}
}

// Close 关闭数据库
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
