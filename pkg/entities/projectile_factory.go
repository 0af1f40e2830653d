package entities

import (
	"fmt"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
)

// NewArrow 创建箭矢实体
// 箭矢从弓的当前位置射出，初速度为 (force, 0)
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（碰撞盒与视觉尺寸）
//   - startX, startY: 发射位置（弓的当前位置）
//   - force: 发射力度，即初始水平速度（像素/tick）
//   - tick: 发射时的会话 tick
//
// 返回:
//   - ecs.EntityID: 创建的箭矢实体ID
//   - error: 参数无效时返回错误
func NewArrow(em *ecs.EntityManager, cfg *config.ArcheryConfig, startX, startY, force float64, tick uint64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: startX,
		Y: startY,
	})

	em.AddComponent(entityID, &components.VelocityComponent{
		VX: force,
		VY: 0,
	})

	em.AddComponent(entityID, &components.HitboxComponent{
		OffsetX: cfg.Projectile.Hitbox.X,
		OffsetY: cfg.Projectile.Hitbox.Y,
		Width:   cfg.Projectile.Hitbox.Width,
		Height:  cfg.Projectile.Hitbox.Height,
	})

	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Projectile.Width,
		Height: cfg.Projectile.Height,
	})

	em.AddComponent(entityID, &components.ProjectileComponent{
		Alive:     true,
		Zone:      components.ZoneNone,
		Force:     force,
		SpawnTick: tick,
	})

	return entityID, nil
}
