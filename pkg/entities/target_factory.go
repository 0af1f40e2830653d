package entities

import (
	"fmt"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
)

// NewTarget 创建靶实体
// 区域坐标由 锚点 + 相对偏移 计算得到，并按 ZoneKind 下标存放，
// 与配置文件中的书写顺序无关
func NewTarget(em *ecs.EntityManager, cfg *config.ArcheryConfig) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("config cannot be nil")
	}

	target := &components.TargetComponent{}
	filled := make(map[components.ZoneKind]bool, len(components.ZonePriority))

	for _, zc := range cfg.Target.Zones {
		kind, ok := components.ParseZoneKind(zc.Name)
		if !ok {
			return ecs.InvalidEntity, fmt.Errorf("unknown target zone %q", zc.Name)
		}
		target.Zones[kind] = components.Zone{
			Kind: kind,
			Rect: components.Rect{
				X: cfg.Target.AnchorX + zc.Rect.X,
				Y: cfg.Target.AnchorY + zc.Rect.Y,
				W: zc.Rect.Width,
				H: zc.Rect.Height,
			},
			Score: zc.Score,
		}
		filled[kind] = true
	}

	for _, kind := range components.ZonePriority {
		if !filled[kind] {
			return ecs.InvalidEntity, fmt.Errorf("target zone %q missing", kind)
		}
	}

	entityID := em.CreateEntity()
	bounds := target.Bounds()

	em.AddComponent(entityID, &components.PositionComponent{X: bounds.X, Y: bounds.Y})
	em.AddComponent(entityID, &components.SpriteSizeComponent{Width: bounds.W, Height: bounds.H})
	em.AddComponent(entityID, target)

	return entityID, nil
}
