package config

import (
	"reflect"
	"testing"
)

func TestDefaultDifficultiesValid(t *testing.T) {
	cfg := DefaultDifficulties()
	if err := validateDifficulties(cfg); err != nil {
		t.Errorf("Default difficulties should be valid: %v", err)
	}
	if len(cfg.Difficulties) != 5 {
		t.Errorf("Expected 5 difficulty presets, got %d", len(cfg.Difficulties))
	}
}

func TestDifficultyIDsSortedByOrder(t *testing.T) {
	cfg := DefaultDifficulties()

	got := cfg.IDs()
	want := []string{"CADET", "PILOT", "COMMANDER", "ACE", "LEGEND"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDifficultyGetFallsBackToDefault(t *testing.T) {
	cfg := DefaultDifficulties()

	diff := cfg.Get("NO_SUCH_DIFFICULTY")
	if diff.Name != "Commander" {
		t.Errorf("Expected fallback to default Commander, got %q", diff.Name)
	}
}

func TestValidateDifficultiesRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DifficultyConfig)
	}{
		{"空配置", func(c *DifficultyConfig) { c.Difficulties = nil }},
		{"默认难度未定义", func(c *DifficultyConfig) { c.Default = "MISSING" }},
		{"默认难度为空", func(c *DifficultyConfig) { c.Default = "" }},
		{"速度倍率非正", func(c *DifficultyConfig) {
			d := c.Difficulties["ACE"]
			d.EnemySpeedMult = 0
			c.Difficulties["ACE"] = d
		}},
		{"得分倍率非正", func(c *DifficultyConfig) {
			d := c.Difficulties["CADET"]
			d.ScoreMult = -1
			c.Difficulties["CADET"] = d
		}},
		{"名称为空", func(c *DifficultyConfig) {
			d := c.Difficulties["PILOT"]
			d.Name = ""
			c.Difficulties["PILOT"] = d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDifficulties()
			tt.mutate(cfg)
			if err := validateDifficulties(cfg); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
