package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "kitchenctl" {
		t.Errorf("Expected Use to be 'kitchenctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	if rootCmd.RunE == nil {
		t.Error("Expected the root command to start the dashboard")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "kitchenctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	expected := "kitchenctl version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected version output %q, got %q", expected, buf.String())
	}
}

func TestSubcommands(t *testing.T) {
	foundCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range []string{"dashboard", "render", "version"} {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "debug", "light", "section"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag --%s", name)
		}
	}
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, debugMode, lightMode, startSection = "", false, false, ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := runRoot(t, "render", "--section", "Employees", "--width", "100")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"THE NINE TAILS KITCHEN", "Alice Johnson", "All Rights Reserved."} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected render output to contain %q. Got: %q", want, out)
		}
	}
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	content := `fixtures:
  menu:
    - id: 1
      name: Miso Soup
      price: "4.25"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "render", "--config", path, "--section", "Menu", "--light")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Miso Soup") || !strings.Contains(out, "$4.25") {
		t.Errorf("Expected configured menu in output. Got: %q", out)
	}
}

func TestRenderCommand_BadConfig(t *testing.T) {
	_, err := runRoot(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
	if !strings.Contains(err.Error(), "failed to initialize application") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("9.9.9")
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "kitchenctl version 9.9.9\n" {
		t.Errorf("Unexpected version output %q", out)
	}
}
