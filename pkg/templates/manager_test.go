package templates

import (
	"os"
	"strings"
	"testing"

	"github.com/betoh/informalidad-fiscal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "")
	os.Exit(m.Run())
}

func TestNewManager(t *testing.T) {
	m, err := NewManager("testdata")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if !m.TemplateExists("saludo.tmpl") {
		t.Error("saludo.tmpl should be loaded")
	}
	if m.TemplateExists("no_such.tmpl") {
		t.Error("TemplateExists should report false for unknown templates")
	}
}

func TestNewManager_EmptyDir(t *testing.T) {
	if _, err := NewManager(t.TempDir()); err == nil {
		t.Error("NewManager on a directory without templates should fail")
	}
}

func TestExecuteTemplate(t *testing.T) {
	m, err := NewManager("testdata")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	out, err := m.ExecuteTemplate("saludo.tmpl", struct{ Name string }{"Beto"})
	if err != nil {
		t.Fatalf("ExecuteTemplate failed: %v", err)
	}
	if strings.TrimSpace(out) != "Hola Beto" {
		t.Errorf("output = %q, want Hola Beto", out)
	}

	if _, err := m.ExecuteTemplate("no_such.tmpl", nil); err == nil {
		t.Error("ExecuteTemplate with an unknown name should fail")
	}
}

func TestTemplateFuncs(t *testing.T) {
	m, err := NewManager("testdata")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	data := struct {
		Money       float64
		Share       float64
		Coefficient float64
	}{
		Money:       25450300,
		Share:       0.6524,
		Coefficient: -0.0497,
	}

	out, err := m.ExecuteTemplate("formato.tmpl", data)
	if err != nil {
		t.Fatalf("ExecuteTemplate failed: %v", err)
	}

	parts := strings.Split(strings.TrimSpace(out), "|")
	if len(parts) != 3 {
		t.Fatalf("output = %q, want three fields", out)
	}
	if parts[0] != "$25,450,300" {
		t.Errorf("money = %q, want $25,450,300", parts[0])
	}
	if parts[1] != "65.2%" {
		t.Errorf("pct = %q, want 65.2%%", parts[1])
	}
	if parts[2] != "-0.0497" {
		t.Errorf("coefficient = %q, want -0.0497", parts[2])
	}
}
