package systems

import (
	"fmt"
	"log"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
	"github.com/decker502/archery/pkg/entities"
)

// BowInput 弓状态机关心的输入
type BowInput int

const (
	// BowInputDrawBegin 按下拉弓键
	BowInputDrawBegin BowInput = iota
	// BowInputRelease 松开拉弓键
	BowInputRelease
)

// BowParams 状态机需要的常量（由配置换算而来）
type BowParams struct {
	MaxDrawTicks  int
	CooldownTicks int
	ForceMin      float64
	ForceMax      float64
	DrawNotches   int
}

// NewBowParams 从配置换算状态机常量
func NewBowParams(cfg *config.ArcheryConfig) BowParams {
	return BowParams{
		MaxDrawTicks:  cfg.MaxDrawTicks(),
		CooldownTicks: cfg.CooldownTicks(),
		ForceMin:      cfg.Bow.ForceMin,
		ForceMax:      cfg.Bow.ForceMax,
		DrawNotches:   cfg.Bow.DrawNotches,
	}
}

// BowEffects 一次状态推进产生的副作用
type BowEffects struct {
	// Shots 本 tick 射出的每支箭的力度
	// 冷却时间为 0 时同一批输入中可能先后射出多支
	Shots  []float64
	Redraw bool // 弓的外观发生了变化（状态切换或弓弦档位变化）

	From components.BowState
	To   components.BowState
}

// Fired 本 tick 是否射出了箭
func (e BowEffects) Fired() bool {
	return len(e.Shots) > 0
}

// Transitioned 本 tick 是否发生了状态切换
func (e BowEffects) Transitioned() bool {
	return e.From != e.To
}

// StepBow 弓状态机的转移函数
//
// 先按顺序处理本 tick 的输入，再执行当前状态的每 tick 逻辑。
// 本 tick 刚进入的状态不执行每 tick 逻辑，因此：
//   - 按下后第 N 个 tick 松开时 DrawTicks == min(N-1, MaxDrawTicks)
//   - 同一批输入里先按下再松开会以 DrawTicks == 0（最小力度）射出
//
// 状态：
//   - Idle:     DrawBegin 且 Ammo > 0 -> Drawing
//   - Drawing:  每 tick DrawTicks++（上限 MaxDrawTicks）；Release -> 射出，Ammo > 0 ? Cooldown : Depleted
//   - Cooldown: 每 tick CooldownTicks--，归零 -> Idle
//   - Depleted: 终止状态，忽略所有输入，垂直速度固定为 0
func StepBow(bow components.BowComponent, inputs []BowInput, p BowParams) (components.BowComponent, BowEffects) {
	effects := BowEffects{From: bow.State}
	changed := false

	for _, in := range inputs {
		before := bow.State
		switch bow.State {
		case components.BowIdle:
			if in == BowInputDrawBegin && bow.Ammo > 0 {
				enterDrawing(&bow)
			}
		case components.BowDrawing:
			if in == BowInputRelease {
				fire(&bow, p, &effects)
			}
		}
		if bow.State != before {
			changed = true
		}
	}

	if !changed {
		tickState(&bow, p, &effects)
	}

	effects.To = bow.State
	if changed || effects.Transitioned() {
		effects.Redraw = true
	}
	return bow, effects
}

func enterDrawing(bow *components.BowComponent) {
	bow.State = components.BowDrawing
	bow.DrawTicks = 0
	bow.Notch = 0
}

func enterCooldown(bow *components.BowComponent, p BowParams) {
	if p.CooldownTicks <= 0 {
		bow.State = components.BowIdle
		bow.CooldownTicks = 0
		return
	}
	bow.State = components.BowCooldown
	bow.CooldownTicks = p.CooldownTicks
}

func enterDepleted(bow *components.BowComponent) {
	bow.State = components.BowDepleted
	bow.VerticalSpeed = 0
}

// fire 松弦射出
// 进入 Drawing 的前提是 Ammo > 0，这里再次检查只为尽早暴露调用方错误
func fire(bow *components.BowComponent, p BowParams, effects *BowEffects) {
	if bow.Ammo <= 0 {
		ContractViolation("bow released with %d ammo", bow.Ammo)
		return
	}

	effects.Shots = append(effects.Shots, DrawForce(bow.DrawTicks, p.MaxDrawTicks, p.ForceMin, p.ForceMax))

	bow.Ammo--
	bow.DrawTicks = 0
	bow.Notch = 0

	if bow.Ammo > 0 {
		enterCooldown(bow, p)
	} else {
		enterDepleted(bow)
	}
}

func tickState(bow *components.BowComponent, p BowParams, effects *BowEffects) {
	switch bow.State {
	case components.BowDrawing:
		if bow.DrawTicks < p.MaxDrawTicks {
			bow.DrawTicks++
		}
		// 只有档位变化时才需要重绘
		notch := DrawNotch(bow.DrawTicks, p.MaxDrawTicks, p.DrawNotches)
		if notch != bow.Notch {
			bow.Notch = notch
			effects.Redraw = true
		}
	case components.BowCooldown:
		bow.CooldownTicks--
		if bow.CooldownTicks <= 0 {
			bow.CooldownTicks = 0
			bow.State = components.BowIdle
		}
	case components.BowDepleted:
		bow.VerticalSpeed = 0
	}
}

// MoveBow 弓在上下边界之间往返移动
// 先移动再检查：越过上边界或 (screenHeight - bowHeight) 时速度反向
func MoveBow(pos *components.PositionComponent, bow *components.BowComponent, screenHeight, bowHeight float64) {
	if bow.State == components.BowDepleted {
		bow.VerticalSpeed = 0
		return
	}

	pos.Y += bow.VerticalSpeed
	if pos.Y < 0 || pos.Y > screenHeight-bowHeight {
		bow.VerticalSpeed = -bow.VerticalSpeed
	}
}

// BowSystem 驱动会话中唯一的弓实体
// 每 tick：推进状态机 -> 在弓的当前位置生成箭矢 -> 移动弓
type BowSystem struct {
	em     *ecs.EntityManager
	cfg    *config.ArcheryConfig
	params BowParams
	bowID  ecs.EntityID
}

// NewBowSystem 创建弓系统
//
// 参数:
//   - em: 会话持有的实体管理器
//   - cfg: 已验证的配置
//   - bowID: 弓实体ID
func NewBowSystem(em *ecs.EntityManager, cfg *config.ArcheryConfig, bowID ecs.EntityID) *BowSystem {
	return &BowSystem{
		em:     em,
		cfg:    cfg,
		params: NewBowParams(cfg),
		bowID:  bowID,
	}
}

// Params 返回状态机常量
func (s *BowSystem) Params() BowParams {
	return s.params
}

// Update 推进一个 tick
//
// 参数:
//   - inputs: 本 tick 的输入（按到达顺序）
//   - tick: 当前会话 tick，记录到新生成的箭矢上
//
// 返回:
//   - BowEffects: 本 tick 的副作用
//   - []ecs.EntityID: 本 tick 新生成的箭矢
//   - error: 弓实体缺失或箭矢创建失败
func (s *BowSystem) Update(inputs []BowInput, tick uint64) (BowEffects, []ecs.EntityID, error) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.bowID)
	if !ok {
		return BowEffects{}, nil, fmt.Errorf("bow entity %d has no position", s.bowID)
	}
	bow, ok := ecs.GetComponent[*components.BowComponent](s.em, s.bowID)
	if !ok {
		return BowEffects{}, nil, fmt.Errorf("bow entity %d has no bow component", s.bowID)
	}

	next, effects := StepBow(*bow, inputs, s.params)
	*bow = next

	if effects.Transitioned() {
		log.Printf("[BowSystem] %s -> %s (ammo=%d)", effects.From, effects.To, bow.Ammo)
	}

	var arrows []ecs.EntityID
	for _, force := range effects.Shots {
		id, err := entities.NewArrow(s.em, s.cfg, pos.X, pos.Y, force, tick)
		if err != nil {
			return effects, arrows, fmt.Errorf("failed to spawn arrow: %w", err)
		}
		arrows = append(arrows, id)
		log.Printf("[BowSystem] 射出箭矢 %d: force=%.2f pos=(%.1f, %.1f)", id, force, pos.X, pos.Y)
	}

	MoveBow(pos, bow, s.cfg.Screen.Height, s.cfg.Bow.Height)

	return effects, arrows, nil
}
