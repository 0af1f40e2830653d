package components

// ProjectileComponent 箭矢的生命周期状态
//
// 状态流转：
//
//	飞行中 (Alive, !Frozen) -> 出界 (!Alive)
//	飞行中 (Alive, !Frozen) -> 命中 (!Alive, Frozen, ScoreAwarded > 0)
//
// 一旦 Alive 变为 false 就不会再恢复，也不会再次计分。
type ProjectileComponent struct {
	Alive        bool     // 是否仍在飞行
	Frozen       bool     // 命中后速度冻结为 (0,0)，位置不再更新
	ScoreAwarded int      // 命中得分，未命中为 0
	Zone         ZoneKind // 命中的区域，仅在 ScoreAwarded > 0 时有效
	Force        float64  // 发射力度（即初始水平速度）
	SpawnTick    uint64   // 发射时的会话 tick
}
