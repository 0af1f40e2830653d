package game

import (
	"github.com/google/uuid"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/ecs"
)

// ProjectileView 渲染层看到的一支箭
type ProjectileView struct {
	ID     ecs.EntityID
	X, Y   float64
	VX, VY float64
	Visual components.Rect // 贴图矩形
	Hitbox components.Rect // 箭头碰撞盒
	Force  float64
}

// ZoneView 渲染层看到的一个靶区域
type ZoneView struct {
	Kind  components.ZoneKind
	Rect  components.Rect
	Score int
}

// Snapshot 某个 tick 结束后的只读状态
// 渲染层（ebiten / 终端 / 无头模拟）只依赖快照，不接触实体管理器
type Snapshot struct {
	SessionID uuid.UUID
	Tick      uint64

	Score      int
	ShotsFired int
	Misses     int
	Hits       map[components.ZoneKind]int

	BowX, BowY float64
	BowWidth   float64
	BowHeight  float64
	BowState   components.BowState
	BowVisual  components.BowVisual
	BowNotch   int
	Ammo       int
	MaxAmmo    int

	Projectiles []ProjectileView
	Zones       []ZoneView

	Over bool
}

// Snapshot 生成当前状态的快照
func (s *Session) Snapshot() Snapshot {
	bow, pos := s.bow()

	hits := make(map[components.ZoneKind]int, len(s.hits))
	for k, v := range s.hits {
		hits[k] = v
	}

	projectiles := s.Projectiles()
	return Snapshot{
		SessionID:   s.id,
		Tick:        s.ticks,
		Score:       s.score,
		ShotsFired:  s.shotsFired,
		Misses:      s.misses,
		Hits:        hits,
		BowX:        pos.X,
		BowY:        pos.Y,
		BowWidth:    s.cfg.Bow.Width,
		BowHeight:   s.cfg.Bow.Height,
		BowState:    bow.State,
		BowVisual:   bow.Visual(),
		BowNotch:    bow.Notch,
		Ammo:        bow.Ammo,
		MaxAmmo:     bow.MaxAmmo,
		Projectiles: projectiles,
		Zones:       s.TargetZones(),
		Over:        bow.State == components.BowDepleted && len(projectiles) == 0,
	}
}
