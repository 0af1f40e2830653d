package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
	"github.com/decker502/archery/pkg/entities"
	"github.com/decker502/archery/pkg/systems"
)

// Session 一局射箭游戏
//
// Session 独占自己的实体管理器和所有系统，不依赖任何全局状态；
// 同一进程中可以同时存在多个互不影响的会话（例如测试中并行运行）。
//
// 每个 Tick 的顺序：
//  1. 将输入事件翻译为弓的输入，PAUSE/QUIT 只作为控制信号返回
//  2. 推进弓的状态机，必要时在弓的当前位置生成箭矢，然后移动弓
//  3. 推进所有飞行中的箭矢，出界的判定脱靶
//  4. 检测命中并累计分数
//  5. 删除本 tick 失效的实体
type Session struct {
	id  uuid.UUID
	cfg *config.ArcheryConfig
	em  *ecs.EntityManager

	bowID    ecs.EntityID
	targetID ecs.EntityID
	target   components.TargetComponent

	bowSystem        *systems.BowSystem
	projectileSystem *systems.ProjectileSystem
	collisionSystem  *systems.CollisionSystem

	ticks      uint64
	score      int
	shotsFired int
	misses     int
	hits       map[components.ZoneKind]int
	lastEffect systems.BowEffects
}

// NewSession 使用给定配置创建一局新游戏
//
// 配置会再次验证，非法配置直接拒绝，不会产生半初始化的会话。
func NewSession(cfg *config.ArcheryConfig) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("archery config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid archery config: %w", err)
	}

	em := ecs.NewEntityManager()

	bowID, err := entities.NewBow(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create bow: %w", err)
	}
	targetID, err := entities.NewTarget(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}
	target, ok := ecs.GetComponent[*components.TargetComponent](em, targetID)
	if !ok {
		return nil, fmt.Errorf("target entity %d has no target component", targetID)
	}

	s := &Session{
		id:               uuid.New(),
		cfg:              cfg,
		em:               em,
		bowID:            bowID,
		targetID:         targetID,
		target:           *target,
		bowSystem:        systems.NewBowSystem(em, cfg, bowID),
		projectileSystem: systems.NewProjectileSystem(em, cfg.Projectile.Gravity, cfg.Screen.Width, cfg.Screen.Height),
		collisionSystem:  systems.NewCollisionSystem(em),
		hits:             make(map[components.ZoneKind]int, len(components.ZonePriority)),
	}

	log.Printf("[Session] %s 创建: ammo=%d maxDrawTicks=%d cooldownTicks=%d",
		s.id, cfg.Bow.MaxAmmo, cfg.MaxDrawTicks(), cfg.CooldownTicks())
	return s, nil
}

// Tick 推进一个固定时间步
//
// 参数:
//   - events: 本 tick 收到的输入（按到达顺序），可以为空
//
// 返回:
//   - ControlSignal: 本批输入中的 PAUSE / QUIT（QUIT 优先）；
//     信号只通知输入层，本 tick 的模拟照常执行
func (s *Session) Tick(events []InputEvent) ControlSignal {
	s.ticks++

	signal := SignalNone
	var inputs []systems.BowInput
	for _, ev := range events {
		switch ev.Type {
		case InputDrawBegin:
			inputs = append(inputs, systems.BowInputDrawBegin)
		case InputRelease:
			inputs = append(inputs, systems.BowInputRelease)
		case InputPause:
			if signal != SignalQuit {
				signal = SignalPause
			}
		case InputQuit:
			signal = SignalQuit
		}
	}

	effects, arrows, err := s.bowSystem.Update(inputs, s.ticks)
	if err != nil {
		systems.ContractViolation("session %s bow update failed: %v", s.id, err)
	}
	s.lastEffect = effects
	s.shotsFired += len(arrows)

	s.misses += len(s.projectileSystem.Update())

	for _, hit := range s.collisionSystem.Update(s.target) {
		s.score += hit.Score
		s.hits[hit.Zone]++
		log.Printf("[Session] %s tick %d: +%d (%s), score=%d", s.id, s.ticks, hit.Score, hit.Zone, s.score)
	}

	s.em.RemoveMarkedEntities()

	if effects.Transitioned() && effects.To == components.BowDepleted {
		log.Printf("[Session] %s 弹药耗尽，共射出 %d 支箭", s.id, s.shotsFired)
	}
	return signal
}

// ID 会话唯一标识
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config 会话使用的配置（只读）
func (s *Session) Config() *config.ArcheryConfig {
	return s.cfg
}

// Ticks 已执行的 tick 数
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Score 当前总分
func (s *Session) Score() int {
	return s.score
}

// ShotsFired 已射出的箭数
func (s *Session) ShotsFired() int {
	return s.shotsFired
}

// Misses 出界的箭数
func (s *Session) Misses() int {
	return s.misses
}

// Hits 命中指定区域的次数
func (s *Session) Hits(kind components.ZoneKind) int {
	return s.hits[kind]
}

// LastEffects 最近一次 Tick 中弓的副作用（渲染层据此决定是否重绘弓）
func (s *Session) LastEffects() systems.BowEffects {
	return s.lastEffect
}

func (s *Session) bow() (*components.BowComponent, *components.PositionComponent) {
	bow, ok := ecs.GetComponent[*components.BowComponent](s.em, s.bowID)
	if !ok {
		systems.ContractViolation("session %s lost its bow entity", s.id)
		return &components.BowComponent{}, &components.PositionComponent{}
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.bowID)
	return bow, pos
}

// BowState 弓的当前状态
func (s *Session) BowState() components.BowState {
	bow, _ := s.bow()
	return bow.State
}

// BowVisual 弓的外观
func (s *Session) BowVisual() components.BowVisual {
	bow, _ := s.bow()
	return bow.Visual()
}

// BowNotch 弓弦档位
func (s *Session) BowNotch() int {
	bow, _ := s.bow()
	return bow.Notch
}

// BowPosition 弓左上角坐标
func (s *Session) BowPosition() (x, y float64) {
	_, pos := s.bow()
	return pos.X, pos.Y
}

// Ammo 剩余箭数
func (s *Session) Ammo() int {
	bow, _ := s.bow()
	return bow.Ammo
}

// IsOver 弹药耗尽且没有箭还在飞行
func (s *Session) IsOver() bool {
	return s.BowState() == components.BowDepleted && len(s.Projectiles()) == 0
}

// Projectiles 飞行中的箭矢（按生成顺序）
func (s *Session) Projectiles() []ProjectileView {
	ids := ecs.GetEntitiesWith4[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.HitboxComponent,
	](s.em)

	views := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if !proj.Alive {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.em, id)

		view := ProjectileView{
			ID:     id,
			X:      pos.X,
			Y:      pos.Y,
			VX:     vel.VX,
			VY:     vel.VY,
			Hitbox: hitbox.Rect(pos),
			Force:  proj.Force,
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteSizeComponent](s.em, id); ok {
			view.Visual = sprite.Rect(pos)
		}
		views = append(views, view)
	}
	return views
}

// TargetZones 靶的三个区域（按命中优先级）
func (s *Session) TargetZones() []ZoneView {
	views := make([]ZoneView, 0, len(components.ZonePriority))
	for _, kind := range components.ZonePriority {
		zone := s.target.Zone(kind)
		views = append(views, ZoneView{Kind: zone.Kind, Rect: zone.Rect, Score: zone.Score})
	}
	return views
}
