package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "rpgproto"

// GameState 跨场景共享的全局状态
// 由 app 在启动时创建后传给各个场景
type GameState struct {
	gdataManager    *gdata.Manager
	settingsManager *SettingsManager
}

// NewGameState 打开 gdata 存储并加载设置
// 存储不可用时（沙盒、只读文件系统）进入降级模式，设置只保存在内存中
func NewGameState(appName string) *GameState {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[GameState] Warning: gdata unavailable: %v (settings will not persist)", err)
		manager = nil
	}

	return &GameState{
		gdataManager:    manager,
		settingsManager: NewSettingsManager(manager),
	}
}

// GetGdataManager 返回 gdata 管理器，降级模式下为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}
