package entities

import (
	"testing"

	"github.com/decker502/archery/pkg/components"
	"github.com/decker502/archery/pkg/config"
	"github.com/decker502/archery/pkg/ecs"
)

// TestNewBow 测试弓实体创建
func TestNewBow(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArcheryConfig()

	bowID, err := NewBow(em, cfg)
	if err != nil {
		t.Fatalf("NewBow() error = %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, bowID)
	if !ok {
		t.Fatal("Bow entity should have PositionComponent")
	}
	if pos.X != cfg.Bow.StartX || pos.Y != cfg.Bow.StartY {
		t.Errorf("Expected bow at (%.1f, %.1f), got (%.1f, %.1f)", cfg.Bow.StartX, cfg.Bow.StartY, pos.X, pos.Y)
	}

	bow, ok := ecs.GetComponent[*components.BowComponent](em, bowID)
	if !ok {
		t.Fatal("Bow entity should have BowComponent")
	}
	if bow.State != components.BowIdle {
		t.Errorf("Expected initial state Idle, got %s", bow.State)
	}
	if bow.Ammo != cfg.Bow.MaxAmmo {
		t.Errorf("Expected ammo %d, got %d", cfg.Bow.MaxAmmo, bow.Ammo)
	}
	if bow.VerticalSpeed != cfg.Bow.VerticalSpeed {
		t.Errorf("Expected vertical speed %.1f, got %.1f", cfg.Bow.VerticalSpeed, bow.VerticalSpeed)
	}

	if _, err := NewBow(nil, cfg); err == nil {
		t.Error("Expected error for nil entity manager")
	}
	if _, err := NewBow(em, nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

// TestNewTarget 测试靶实体创建：区域坐标 = 锚点 + 偏移，并按优先级下标存放
func TestNewTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArcheryConfig()
	// 打乱配置顺序，存放位置仍由区域名称决定
	cfg.Target.Zones[0], cfg.Target.Zones[2] = cfg.Target.Zones[2], cfg.Target.Zones[0]

	targetID, err := NewTarget(em, cfg)
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](em, targetID)
	if !ok {
		t.Fatal("Target entity should have TargetComponent")
	}

	for _, kind := range components.ZonePriority {
		zc, _ := cfg.ZoneByName(kind.String())
		zone := target.Zone(kind)

		if zone.Kind != kind {
			t.Errorf("Expected zone kind %s, got %s", kind, zone.Kind)
		}
		if zone.Score != zc.Score {
			t.Errorf("Zone %s: expected score %d, got %d", kind, zc.Score, zone.Score)
		}
		wantX := cfg.Target.AnchorX + zc.Rect.X
		wantY := cfg.Target.AnchorY + zc.Rect.Y
		if zone.Rect.X != wantX || zone.Rect.Y != wantY {
			t.Errorf("Zone %s: expected origin (%.1f, %.1f), got (%.1f, %.1f)", kind, wantX, wantY, zone.Rect.X, zone.Rect.Y)
		}
	}

	if _, ok := ecs.GetComponent[*components.SpriteSizeComponent](em, targetID); !ok {
		t.Error("Target entity should have SpriteSizeComponent")
	}
}

// TestNewTarget_MissingZone 缺少区域时拒绝创建
func TestNewTarget_MissingZone(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultArcheryConfig()
	cfg.Target.Zones = cfg.Target.Zones[:2]

	if _, err := NewTarget(em, cfg); err == nil {
		t.Error("Expected error for missing zone")
	}
	if em.Count() != 0 {
		t.Errorf("No entity should be created on error, got %d", em.Count())
	}
}

// TestNewArrow 测试箭矢实体创建
func TestNewArrow(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		startY float64
		force  float64
	}{
		{"最小力度", 20, 0, 10},
		{"最大力度", 20, 300, 50},
		{"屏幕底部", 20, 550, 30},
	}

	cfg := config.DefaultArcheryConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()

			arrowID, err := NewArrow(em, cfg, tt.startX, tt.startY, tt.force, 7)
			if err != nil {
				t.Fatalf("NewArrow() error = %v", err)
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, arrowID)
			if !ok {
				t.Fatal("Arrow should have PositionComponent")
			}
			if pos.X != tt.startX || pos.Y != tt.startY {
				t.Errorf("Expected position (%.1f, %.1f), got (%.1f, %.1f)", tt.startX, tt.startY, pos.X, pos.Y)
			}

			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, arrowID)
			if !ok {
				t.Fatal("Arrow should have VelocityComponent")
			}
			if vel.VX != tt.force || vel.VY != 0 {
				t.Errorf("Expected velocity (%.1f, 0), got (%.1f, %.1f)", tt.force, vel.VX, vel.VY)
			}

			hitbox, ok := ecs.GetComponent[*components.HitboxComponent](em, arrowID)
			if !ok {
				t.Fatal("Arrow should have HitboxComponent")
			}
			if hitbox.OffsetX != cfg.Projectile.Hitbox.X || hitbox.Width != cfg.Projectile.Hitbox.Width {
				t.Errorf("Unexpected hitbox %+v", hitbox)
			}

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, arrowID)
			if !ok {
				t.Fatal("Arrow should have ProjectileComponent")
			}
			if !proj.Alive || proj.Frozen || proj.ScoreAwarded != 0 {
				t.Errorf("Expected fresh projectile, got %+v", proj)
			}
			if proj.SpawnTick != 7 {
				t.Errorf("Expected spawn tick 7, got %d", proj.SpawnTick)
			}
		})
	}
}
