package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ArcheryConfig 射箭小游戏的全部可调参数
//
// 时间相关参数以秒为单位配置，运行时通过 ticksPerSecond 换算为 tick 数，
// 因此修改 tick 频率会同时改变拉弓手感和冷却长度。
//
// 配置文件位置: data/archery.yaml
type ArcheryConfig struct {
	// TicksPerSecond 固定步长游戏循环的频率
	TicksPerSecond int `yaml:"ticksPerSecond"`

	// Screen 游戏区域尺寸，箭矢越过右边界或下边界即判定脱靶
	Screen ScreenConfig `yaml:"screen"`

	// Bow 弓的参数
	Bow BowConfig `yaml:"bow"`

	// Projectile 箭矢参数
	Projectile ProjectileConfig `yaml:"projectile"`

	// Target 靶的参数
	Target TargetConfig `yaml:"target"`
}

// ScreenConfig 游戏区域尺寸（像素）
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BowConfig 弓的参数
type BowConfig struct {
	StartX          float64 `yaml:"startX"`          // 初始X坐标
	StartY          float64 `yaml:"startY"`          // 初始Y坐标
	Width           float64 `yaml:"width"`           // 视觉宽度
	Height          float64 `yaml:"height"`          // 视觉高度，用于下边界反弹
	VerticalSpeed   float64 `yaml:"verticalSpeed"`   // 垂直移动速度（像素/tick）
	DrawTimeSeconds float64 `yaml:"drawTimeSeconds"` // 拉满弓所需时间（秒）
	CooldownSeconds float64 `yaml:"cooldownSeconds"` // 射出后的冷却时间（秒）
	ForceMin        float64 `yaml:"forceMin"`        // 最小发射力度（像素/tick）
	ForceMax        float64 `yaml:"forceMax"`        // 最大发射力度（像素/tick）
	MaxAmmo         int     `yaml:"maxAmmo"`         // 每局箭矢数
	DrawNotches     int     `yaml:"drawNotches"`     // 弓弦弯曲的视觉档位数
}

// ProjectileConfig 箭矢参数
type ProjectileConfig struct {
	Gravity float64    `yaml:"gravity"` // 每个 tick 垂直速度的增量
	Width   float64    `yaml:"width"`   // 视觉宽度
	Height  float64    `yaml:"height"`  // 视觉高度
	Hitbox  RectConfig `yaml:"hitbox"`  // 碰撞盒，X/Y 为相对箭矢位置的偏移
}

// TargetConfig 靶的参数
//
// 区域坐标相对于锚点（参考布局中锚点为屏幕右下角）。
// 区域可以互相重叠，命中判定始终按 inner -> middle -> outer 顺序进行，与配置顺序无关。
type TargetConfig struct {
	AnchorX float64      `yaml:"anchorX"`
	AnchorY float64      `yaml:"anchorY"`
	Zones   []ZoneConfig `yaml:"zones"`
}

// ZoneConfig 单个计分区域
type ZoneConfig struct {
	Name  string     `yaml:"name"` // inner / middle / outer
	Rect  RectConfig `yaml:"rect"`
	Score int        `yaml:"score"`
}

// RectConfig 矩形配置
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// 合法的区域名称
var zoneNames = []string{"inner", "middle", "outer"}

// DefaultArcheryConfig 返回参考布局的默认配置
func DefaultArcheryConfig() *ArcheryConfig {
	return &ArcheryConfig{
		TicksPerSecond: 30,
		Screen: ScreenConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Bow: BowConfig{
			StartX:          20,
			StartY:          0,
			Width:           40,
			Height:          100,
			VerticalSpeed:   5,
			DrawTimeSeconds: 0.7,
			CooldownSeconds: 1.0,
			ForceMin:        10,
			ForceMax:        50,
			MaxAmmo:         5,
			DrawNotches:     4,
		},
		Projectile: ProjectileConfig{
			Gravity: 1,
			Width:   60,
			Height:  10,
			Hitbox:  RectConfig{X: 50, Y: 2, Width: 10, Height: 6},
		},
		Target: TargetConfig{
			AnchorX: GameWindowWidth,
			AnchorY: GameWindowHeight,
			Zones: []ZoneConfig{
				{Name: "inner", Rect: RectConfig{X: -50, Y: -185, Width: 20, Height: 30}, Score: 3},
				{Name: "middle", Rect: RectConfig{X: -55, Y: -220, Width: 30, Height: 100}, Score: 2},
				{Name: "outer", Rect: RectConfig{X: -60, Y: -260, Width: 40, Height: 180}, Score: 1},
			},
		},
	}
}

// LoadArcheryConfig 从文件加载射箭配置
//
// 参数:
//   - path: 配置文件路径（如 "data/archery.yaml"）
//
// 返回:
//   - *ArcheryConfig: 加载并验证通过的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadArcheryConfig(path string) (*ArcheryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archery config: %w", err)
	}
	return ParseArcheryConfig(data)
}

// ParseArcheryConfig 从 YAML 数据解析射箭配置
//
// 未出现在 YAML 中的字段保留 DefaultArcheryConfig 的值，
// 因此配置文件可以只覆盖需要调整的参数。
func ParseArcheryConfig(data []byte) (*ArcheryConfig, error) {
	cfg := DefaultArcheryConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse archery config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid archery config: %w", err)
	}

	return cfg, nil
}

// MaxDrawTicks 拉满弓所需的 tick 数（秒数 × tick 频率，四舍五入）
func (c *ArcheryConfig) MaxDrawTicks() int {
	return secondsToTicks(c.Bow.DrawTimeSeconds, c.TicksPerSecond)
}

// CooldownTicks 冷却持续的 tick 数
func (c *ArcheryConfig) CooldownTicks() int {
	return secondsToTicks(c.Bow.CooldownSeconds, c.TicksPerSecond)
}

func secondsToTicks(seconds float64, ticksPerSecond int) int {
	return int(math.Round(seconds * float64(ticksPerSecond)))
}

// Validate 验证配置有效性
//
// 配置错误在初始化时暴露，运行时不做兜底：
//   - tick 频率、屏幕尺寸、弓尺寸必须为正
//   - 拉弓时间换算后至少 1 个 tick，冷却不能为负
//   - 0 <= forceMin <= forceMax
//   - 箭矢数、视觉档位数为正，重力不能为负
//   - 碰撞盒尺寸为正
//   - 靶必须恰好包含 inner / middle / outer 三个区域，得分为正
func (c *ArcheryConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.1fx%.1f", c.Screen.Width, c.Screen.Height)
	}

	if err := c.validateBow(); err != nil {
		return err
	}

	if c.Projectile.Gravity < 0 {
		return fmt.Errorf("projectile gravity must not be negative, got %.2f", c.Projectile.Gravity)
	}
	if c.Projectile.Hitbox.Width <= 0 || c.Projectile.Hitbox.Height <= 0 {
		return fmt.Errorf("projectile hitbox size must be positive, got %.1fx%.1f",
			c.Projectile.Hitbox.Width, c.Projectile.Hitbox.Height)
	}

	return c.validateZones()
}

func (c *ArcheryConfig) validateBow() error {
	b := c.Bow
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("bow size must be positive, got %.1fx%.1f", b.Width, b.Height)
	}
	if b.Height >= c.Screen.Height {
		return fmt.Errorf("bow height %.1f must be smaller than screen height %.1f", b.Height, c.Screen.Height)
	}
	if b.VerticalSpeed < 0 {
		return fmt.Errorf("bow verticalSpeed must not be negative, got %.2f", b.VerticalSpeed)
	}
	if c.MaxDrawTicks() <= 0 {
		return fmt.Errorf("bow drawTimeSeconds %.3f yields zero draw ticks at %d ticks/s",
			b.DrawTimeSeconds, c.TicksPerSecond)
	}
	if b.CooldownSeconds < 0 {
		return fmt.Errorf("bow cooldownSeconds must not be negative, got %.3f", b.CooldownSeconds)
	}
	if b.ForceMin < 0 {
		return fmt.Errorf("bow forceMin must not be negative, got %.2f", b.ForceMin)
	}
	if b.ForceMin > b.ForceMax {
		return fmt.Errorf("bow force range invalid: min(%.2f) > max(%.2f)", b.ForceMin, b.ForceMax)
	}
	if b.MaxAmmo <= 0 {
		return fmt.Errorf("bow maxAmmo must be positive, got %d", b.MaxAmmo)
	}
	if b.DrawNotches <= 0 {
		return fmt.Errorf("bow drawNotches must be positive, got %d", b.DrawNotches)
	}
	return nil
}

func (c *ArcheryConfig) validateZones() error {
	if len(c.Target.Zones) != len(zoneNames) {
		return fmt.Errorf("target must define exactly %d zones, got %d", len(zoneNames), len(c.Target.Zones))
	}

	seen := make(map[string]bool, len(zoneNames))
	for _, z := range c.Target.Zones {
		if !isZoneName(z.Name) {
			return fmt.Errorf("unknown target zone %q", z.Name)
		}
		if seen[z.Name] {
			return fmt.Errorf("duplicate target zone %q", z.Name)
		}
		seen[z.Name] = true

		if z.Rect.Width <= 0 || z.Rect.Height <= 0 {
			return fmt.Errorf("zone %q size must be positive, got %.1fx%.1f", z.Name, z.Rect.Width, z.Rect.Height)
		}
		if z.Score <= 0 {
			return fmt.Errorf("zone %q score must be positive, got %d", z.Name, z.Score)
		}
	}
	return nil
}

// ZoneByName 按名称查找区域配置
func (c *ArcheryConfig) ZoneByName(name string) (ZoneConfig, bool) {
	for _, z := range c.Target.Zones {
		if z.Name == name {
			return z, true
		}
	}
	return ZoneConfig{}, false
}

func isZoneName(name string) bool {
	for _, n := range zoneNames {
		if n == name {
			return true
		}
	}
	return false
}
