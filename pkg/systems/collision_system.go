package systems

import (
	"log"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/ecs"
)

// Hit 一次计分命中
type Hit struct {
	Arrow ecs.EntityID
	Zone  components.ZoneKind
	Score int
}

// ResolveZone 按固定优先级（靶心 -> 中环 -> 外环）返回第一个与碰撞盒相交的区域
//
// 区域可以互相重叠，无论 Zones 中如何存放，靶心总是优先于中环和外环。
func ResolveZone(hitbox components.Rect, target components.TargetComponent) (components.Zone, bool) {
	for _, kind := range components.ZonePriority {
		zone := target.Zone(kind)
		if zone.Rect.Intersects(hitbox) {
			return zone, true
		}
	}
	return components.Zone{Kind: components.ZoneNone}, false
}

// CollisionSystem 箭矢与靶的命中检测
type CollisionSystem struct {
	em *ecs.EntityManager
}

// NewCollisionSystem 创建命中检测系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 检测所有飞行中的箭矢
//
// 靶以值传入，系统只读取区域几何，箭矢上不保存对靶的引用。
// 命中后：速度冻结为 (0,0)，记录得分，标记失效并删除。
//
// 返回:
//   - []Hit: 本 tick 的所有命中，调用方据此累计分数
func (s *CollisionSystem) Update(target components.TargetComponent) []Hit {
	var hits []Hit

	arrows := ecs.GetEntitiesWith4[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.HitboxComponent,
	](s.em)

	for _, id := range arrows {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if !proj.Alive || proj.Frozen {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.em, id)

		zone, ok := ResolveZone(hitbox.Rect(pos), target)
		if !ok {
			continue
		}

		vel.VX, vel.VY = 0, 0
		proj.Frozen = true
		proj.Alive = false
		proj.ScoreAwarded = zone.Score
		proj.Zone = zone.Kind
		s.em.DestroyEntity(id)

		hits = append(hits, Hit{Arrow: id, Zone: zone.Kind, Score: zone.Score})
		log.Printf("[CollisionSystem] 箭矢 %d 命中 %s 区域，得分 %d", id, zone.Kind, zone.Score)
	}

	return hits
}
