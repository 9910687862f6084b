package summary

import (
	"sync"
)

// editState 每个购物车的条目编辑状态（Viewing/Editing）。
// 纯界面状态，不持久化，进程结束即消失。
type editState struct {
	mu      sync.Mutex
	editing map[string]map[string]bool // cartKey -> productID -> editing
}

func newEditState() *editState {
	return &editState{editing: make(map[string]map[string]bool)}
}

// begin 将条目置为编辑态
func (s *editState) begin(cartKey, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing[cartKey] == nil {
		s.editing[cartKey] = make(map[string]bool)
	}
	s.editing[cartKey][productID] = true
}

// finish 将条目恢复查看态
func (s *editState) finish(cartKey, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.editing[cartKey], productID)
}

// isEditing 判断条目是否处于编辑态
func (s *editState) isEditing(cartKey, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editing[cartKey][productID]
}
