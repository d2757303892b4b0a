package registry

import (
	"fmt"
	"sync"

	"github.com/meoying/ifxbridge/internal/datasource"
)

// Factory 按 DSN 建出一个 DataSource
type Factory func(dsn string) (datasource.DataSource, error)

// Registry 显式的连接器注册表。
// 在进程启动时构造一个实例往下传，不要做成包级全局变量。
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

func (r *Registry) Open(name, dsn string) (datasource.DataSource, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("未注册的连接器 %s", name)
	}
	return f(dsn)
}
