package service

import (
	"sync"
)

// FeedService 数据变更通知。
// 用单调递增的版本号替代推送式实时监听：每次写入后版本号加一，
// 前端轮询 /api/changes 比对版本，变化时重新拉取完整快照。
type FeedService struct {
	mu      sync.Mutex
	version int64
}

// NewFeedService 创建变更通知服务
func NewFeedService() *FeedService {
	return &FeedService{}
}

// Bump 数据发生变更，递增版本号
func (s *FeedService) Bump() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	return s.version
}

// Version 当前版本号
func (s *FeedService) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
