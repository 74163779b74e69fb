// Package outputtest provides shared test utilities for output plugins.
package outputtest

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wex/internal/output"
	"github.com/jmylchreest/wex/internal/tokens"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(output.NewThemeData(CreateTestDocument(), "tokens.json"))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateEmptyDocument", func(t *testing.T) {
		if _, err := p.Generate(output.NewThemeData(tokens.NewDocument(), "empty.json")); err != nil {
			t.Errorf("Generate() with empty document error = %v", err)
		}
	})

	t.Run("GenerateNilDocument", func(t *testing.T) {
		_, err := p.Generate(nil)
		if !errors.Is(err, output.ErrNilDocument) {
			t.Errorf("Generate(nil) error = %v, want ErrNilDocument", err)
		}
	})
}

// TestLoggingPlugin tests logger injection if the plugin supports it.
func TestLoggingPlugin(t *testing.T, p any) {
	lp, ok := p.(output.LoggingPlugin)
	if !ok {
		t.Skip("Plugin does not implement SetLogger")
	}

	t.Run("SetLogger", func(_ *testing.T) {
		// Just test that it doesn't panic.
		lp.SetLogger(hclog.NewNullLogger())
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlags []string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		for _, name := range expectedFlags {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("RegisterFlags() did not register %s flag", name)
			}
		}
	})
}

// CreateTestDocument creates a small two-mode token document for testing.
func CreateTestDocument() *tokens.Document {
	doc := tokens.NewDocument()
	doc.Set(tokens.Light, "--surface-default", "0 0% 100%")
	doc.Set(tokens.Light, "--text-default", "210 17% 10%")
	doc.Set(tokens.Light, "--color-blue-500", "208 100% 32%")
	doc.Set(tokens.Light, "--color-blue-50", "208 100% 97%")
	doc.Set(tokens.Dark, "--surface-default", "210 17% 10%")
	doc.Set(tokens.Dark, "--text-default", "210 20% 98%")
	doc.Set(tokens.Dark, "--color-blue-500", "208 100% 66%")
	doc.Set(tokens.Dark, "--color-blue-50", "208 100% 97%")
	return doc
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestLoggingPlugin(t, p)
	TestFlags(t, p, config.ExpectedFlags)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
	ExpectedFlags []string // Flags RegisterFlags() must add
}
