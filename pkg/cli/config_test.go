package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	return cfg
}

func TestLoadConfig_CreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestConfig_AddAndResolveContext(t *testing.T) {
	cfg := testConfig(t)

	err := cfg.AddContext("prod", &Context{
		AWSProfile: "bedrock-prod",
		Region:     "us-west-2",
		OutputDir:  "renders",
	})
	if err != nil {
		t.Fatalf("AddContext error: %v", err)
	}

	ctx, err := cfg.ResolveContext("prod")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Name != "prod" {
		t.Errorf("Name = %q, want %q", ctx.Name, "prod")
	}
	if ctx.AWSProfile != "bedrock-prod" || ctx.Region != "us-west-2" || ctx.OutputDir != "renders" {
		t.Errorf("context = %+v", ctx)
	}
}

func TestConfig_ResolveContext_NoCurrent(t *testing.T) {
	cfg := testConfig(t)

	ctx, err := cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx != nil {
		t.Errorf("ResolveContext with no current context = %+v, want nil", ctx)
	}
}

func TestConfig_ResolveContext_Unknown(t *testing.T) {
	cfg := testConfig(t)
	if _, err := cfg.ResolveContext("nope"); err == nil {
		t.Fatal("ResolveContext accepted an unknown context name")
	}
}

func TestConfig_UseContext(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.AddContext("dev", &Context{AWSProfile: "dev"}); err != nil {
		t.Fatal(err)
	}

	if err := cfg.UseContext("dev"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}

	ctx, err := cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx == nil || ctx.Name != "dev" {
		t.Errorf("current context = %+v, want dev", ctx)
	}
}

func TestConfig_UseContext_Unknown(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.UseContext("nope"); err == nil {
		t.Fatal("UseContext accepted an unknown context name")
	}
}

func TestConfig_DeleteContext(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.AddContext("dev", &Context{}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.UseContext("dev"); err != nil {
		t.Fatal(err)
	}

	if err := cfg.DeleteContext("dev"); err != nil {
		t.Fatalf("DeleteContext error: %v", err)
	}
	if cfg.CurrentContext != "" {
		t.Errorf("CurrentContext = %q after deleting it, want empty", cfg.CurrentContext)
	}
	if err := cfg.DeleteContext("dev"); err == nil {
		t.Fatal("DeleteContext succeeded twice")
	}
}

func TestConfig_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddContext("prod", &Context{AWSProfile: "p", Model: "stability.stable-diffusion-xl"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.UseContext("prod"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.CurrentContext != "prod" {
		t.Errorf("CurrentContext = %q, want prod", reloaded.CurrentContext)
	}
	ctx, err := reloaded.GetContext("prod")
	if err != nil {
		t.Fatal(err)
	}
	if ctx.AWSProfile != "p" || ctx.Model != "stability.stable-diffusion-xl" {
		t.Errorf("context = %+v", ctx)
	}
}

func TestConfig_ListContexts(t *testing.T) {
	cfg := testConfig(t)
	if names := cfg.ListContexts(); len(names) != 0 {
		t.Errorf("ListContexts = %v, want empty", names)
	}
	if err := cfg.AddContext("a", &Context{}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddContext("b", &Context{}); err != nil {
		t.Fatal(err)
	}
	if names := cfg.ListContexts(); len(names) != 2 {
		t.Errorf("ListContexts = %v, want 2 names", names)
	}
}
