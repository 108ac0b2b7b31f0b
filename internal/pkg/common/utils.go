package common

import (
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID，用於請求追蹤
func GenerateUUID() string {
	return uuid.New().String()
}
