package systems

import (
	"log"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/ecs"
)

// ProjectileSystem 箭矢弹道积分
//
// 每 tick 对每支飞行中的箭矢：
//  1. 垂直速度加上重力增量（水平速度不变，无阻力）
//  2. 按更新后的速度移动位置（碰撞盒随位置计算）
//  3. X 超过区域宽度或 Y 超过区域高度时判定脱靶并标记删除
type ProjectileSystem struct {
	em      *ecs.EntityManager
	gravity float64
	width   float64
	height  float64
}

// NewProjectileSystem 创建弹道系统
//
// 参数:
//   - em: 会话持有的实体管理器
//   - gravity: 每 tick 垂直速度增量
//   - width, height: 游戏区域尺寸
func NewProjectileSystem(em *ecs.EntityManager, gravity, width, height float64) *ProjectileSystem {
	return &ProjectileSystem{
		em:      em,
		gravity: gravity,
		width:   width,
		height:  height,
	}
}

// Update 推进所有箭矢一个 tick，返回本 tick 脱靶的箭矢
func (s *ProjectileSystem) Update() []ecs.EntityID {
	var missed []ecs.EntityID

	arrows := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em)
	for _, id := range arrows {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			continue
		}

		if !proj.Alive {
			// 失效的箭矢在失效的同一 tick 就已标记删除，不应再被查询到
			ContractViolation("dead projectile %d received an update", id)
			continue
		}
		if proj.Frozen {
			continue
		}

		Integrate(pos, vel, s.gravity)

		if s.OutOfBounds(pos) {
			proj.Alive = false
			s.em.DestroyEntity(id)
			missed = append(missed, id)
			log.Printf("[ProjectileSystem] 箭矢 %d 飞出区域 (%.1f, %.1f)，标记删除", id, pos.X, pos.Y)
		}
	}

	return missed
}

// OutOfBounds 位置越过右边界或下边界
func (s *ProjectileSystem) OutOfBounds(pos *components.PositionComponent) bool {
	return pos.X > s.width || pos.Y > s.height
}

// Integrate 显式欧拉积分一步：先更新速度，再用新速度更新位置
func Integrate(pos *components.PositionComponent, vel *components.VelocityComponent, gravity float64) {
	vel.VY += gravity
	pos.X += vel.VX
	pos.Y += vel.VY
}
