// Package mirror 是 Store 的持久化镜像：每个集合一个 key，值为 JSON 序列化结果。
// 后端可插拔（sqlite / redis / gorm / 内存），对 Store 只暴露 KV 语义。
package mirror

import "context"

type Mirror interface {
	// Load 返回 (值, 是否存在, 错误)；不存在不是错误
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
