package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contactbook.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Display.ClearScreen {
		t.Error("default clear_screen = false, want true")
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("default color = %q, want %q", cfg.Display.Color, "auto")
	}
	if cfg.Display.HeaderWidth != 50 {
		t.Errorf("default header width = %d, want 50", cfg.Display.HeaderWidth)
	}
	if !cfg.Display.Pager {
		t.Error("default pager = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
display:
  clear_screen: false
  color: never
  header_width: 72
  pager: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{Display: Display{ClearScreen: false, Color: "never", HeaderWidth: 72, Pager: false}}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/contactbook.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "{{invalid yaml")
	if _, err := Load(path); err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, `
display:
  colour: never
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should return error for unknown field 'colour'")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	path := writeConfig(t, `
display:
  pager: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Pager {
		t.Error("pager = true, want false")
	}
	// Unset fields should retain defaults.
	if !cfg.Display.ClearScreen {
		t.Error("clear_screen lost its default")
	}
	if cfg.Display.HeaderWidth != 50 {
		t.Errorf("header width = %d, want default 50", cfg.Display.HeaderWidth)
	}
}

func TestLoadLayered_Priority(t *testing.T) {
	// Setup: user config sets color and width, project config overrides width.
	userCfg := writeConfig(t, `
display:
  color: always
  header_width: 60
`)
	projectCfg := writeConfig(t, `
display:
  header_width: 80
`)

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Color from user config (project doesn't set it).
	if cfg.Display.Color != "always" {
		t.Errorf("color = %q, want %q", cfg.Display.Color, "always")
	}
	// Width from project config (overrides user).
	if cfg.Display.HeaderWidth != 80 {
		t.Errorf("header width = %d, want 80", cfg.Display.HeaderWidth)
	}
	// Pager retains default when neither layer sets it.
	if !cfg.Display.Pager {
		t.Error("pager lost its default")
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	path := writeConfig(t, "# just a comment\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "NO_COLOR disables color",
			envs: map[string]string{"NO_COLOR": "1"},
			check: func(t *testing.T, c Config) {
				if c.Display.Color != "never" {
					t.Errorf("color = %q, want %q", c.Display.Color, "never")
				}
			},
		},
		{
			name: "CONTACTBOOK_COLOR wins over NO_COLOR",
			envs: map[string]string{"NO_COLOR": "1", "CONTACTBOOK_COLOR": "always"},
			check: func(t *testing.T, c Config) {
				if c.Display.Color != "always" {
					t.Errorf("color = %q, want %q", c.Display.Color, "always")
				}
			},
		},
		{
			name: "CONTACTBOOK_PAGER overrides pager",
			envs: map[string]string{"CONTACTBOOK_PAGER": "false"},
			check: func(t *testing.T, c Config) {
				if c.Display.Pager {
					t.Error("pager = true, want false")
				}
			},
		},
		{
			name: "CONTACTBOOK_CLEAR_SCREEN overrides clear_screen",
			envs: map[string]string{"CONTACTBOOK_CLEAR_SCREEN": "0"},
			check: func(t *testing.T, c Config) {
				if c.Display.ClearScreen {
					t.Error("clear_screen = true, want false")
				}
			},
		},
		{
			name:    "invalid CONTACTBOOK_PAGER returns error",
			envs:    map[string]string{"CONTACTBOOK_PAGER": "sometimes"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NO_COLOR", "CONTACTBOOK_COLOR", "CONTACTBOOK_PAGER", "CONTACTBOOK_CLEAR_SCREEN"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "unknown color",
			modify:  func(c *Config) { c.Display.Color = "rainbow" },
			wantErr: true,
		},
		{
			name:    "empty color",
			modify:  func(c *Config) { c.Display.Color = "" },
			wantErr: true,
		},
		{
			name:    "header too narrow",
			modify:  func(c *Config) { c.Display.HeaderWidth = MinHeaderWidth - 1 },
			wantErr: true,
		},
		{
			name:   "header at minimum",
			modify: func(c *Config) { c.Display.HeaderWidth = MinHeaderWidth },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
