package entities

import (
	"fmt"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
)

// NewBow 创建弓实体
// 弓从配置的起始位置出发，初始状态为 Idle，箭矢装满，向下移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 已验证的游戏配置
//
// 返回:
//   - ecs.EntityID: 创建的弓实体ID
//   - error: 参数无效时返回错误
func NewBow(em *ecs.EntityManager, cfg *config.ArcheryConfig) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: cfg.Bow.StartX,
		Y: cfg.Bow.StartY,
	})

	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Bow.Width,
		Height: cfg.Bow.Height,
	})

	em.AddComponent(entityID, &components.BowComponent{
		State:         components.BowIdle,
		Ammo:          cfg.Bow.MaxAmmo,
		MaxAmmo:       cfg.Bow.MaxAmmo,
		VerticalSpeed: cfg.Bow.VerticalSpeed,
	})

	return entityID, nil
}
