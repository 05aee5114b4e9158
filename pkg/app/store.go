package app

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/showcase/pkg/storage"
	"github.com/decker502/showcase/pkg/utils"
)

// 状态存储后端名称（-store 参数的取值）
const (
	StoreGdata  = "gdata"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// nopCloser 不需要关闭的存储
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore 按名称打开单次状态存储
//
// gdata 打开失败时降级为内存模式（与设置管理器相同的处理），不返回错误。
//
// 参数：
//   - kind: StoreGdata / StoreSQLite / StoreMemory，为空时使用 gdata
//   - appName: 应用名，决定 gdata 目录和 SQLite 文件名
//
// 返回：
//   - storage.StatusStore: 状态存储
//   - io.Closer: 退出时关闭
//   - error: 未知的后端名称或 SQLite 打开失败
func OpenStore(kind, appName string) (storage.StatusStore, io.Closer, error) {
	switch kind {
	case StoreGdata, "":
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
		}
		store, err := storage.OpenGdataStore(appName)
		if err != nil {
			log.Printf("[App] Warning: %v, single-use state will not persist", err)
			return storage.NewGdataStore(nil), nopCloser{}, nil
		}
		return store, nopCloser{}, nil

	case StoreSQLite:
		path := filepath.Join(utils.StorageRoot(), appName+".db")
		store, err := storage.OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[App] Using SQLite status store: %s", path)
		return store, store, nil

	case StoreMemory:
		return storage.NewMemoryStore(), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("unknown status store %q (want %s, %s or %s)", kind, StoreGdata, StoreSQLite, StoreMemory)
}
