package game

import "testing"

// 降级模式（gdataManager 为 nil）下设置管理器应正常工作且不报错

func TestSettingsManagerDefaults(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("Failed to create settings manager: %v", err)
	}

	settings := sm.GetSettings()
	if settings.Difficulty != "COMMANDER" {
		t.Errorf("Expected default difficulty COMMANDER, got %q", settings.Difficulty)
	}
	if settings.MusicVolume != 0.7 || settings.SoundVolume != 0.8 {
		t.Errorf("Unexpected default volumes: music=%g sound=%g", settings.MusicVolume, settings.SoundVolume)
	}
	if !settings.MusicEnabled || !settings.SoundEnabled {
		t.Error("Audio should be enabled by default")
	}
	if settings.Fullscreen || settings.ShowFPS {
		t.Error("Fullscreen and FPS display should be off by default")
	}
}

func TestSettingsSetters(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetDifficulty("LEGEND")
	sm.SetFullscreen(true)
	sm.SetShowFPS(true)

	settings := sm.GetSettings()
	if settings.Difficulty != "LEGEND" {
		t.Errorf("Expected LEGEND, got %q", settings.Difficulty)
	}
	if !settings.Fullscreen || !settings.ShowFPS {
		t.Error("Fullscreen and ShowFPS should be enabled")
	}
}

func TestVolumeClamping(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
	}

	for _, tt := range tests {
		sm.SetMusicVolume(tt.input)
		if got := sm.GetSettings().MusicVolume; got != tt.want {
			t.Errorf("SetMusicVolume(%g): expected %g, got %g", tt.input, tt.want, got)
		}
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%g): expected %g, got %g", tt.input, tt.want, got)
		}
	}
}

func TestSaveInDegradedModeDoesNotFail(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	if err := sm.Save(); err != nil {
		t.Errorf("Save without storage should be a no-op, got %v", err)
	}

	if err := sm.Load(); err != nil {
		t.Errorf("Load without storage should be a no-op, got %v", err)
	}
}
