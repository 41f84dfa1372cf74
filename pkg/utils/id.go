package utils

import "github.com/google/uuid"

// NewID 生成不透明字符串 ID（替代旧版时间戳 ID，避免同毫秒碰撞）
func NewID() string { return uuid.NewString() }
