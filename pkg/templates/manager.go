package templates

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/pkg/logger"
)

// Manager loads and renders the report templates from a directory.
type Manager struct {
	templates *template.Template
	directory string
}

// GetDefaultFuncMap returns the helper functions available to templates.
func GetDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"printf": fmt.Sprintf,
		"money": func(v float64) string {
			// Thousands-separated, no decimals, the way the source report
			// prints quarterly means in millions of MXN.
			s := fmt.Sprintf("%.0f", v)
			var out []byte
			for i, c := range []byte(s) {
				if i > 0 && (len(s)-i)%3 == 0 && c != '-' {
					out = append(out, ',')
				}
				out = append(out, c)
			}
			return "$" + string(out)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		"float": func(val interface{}) float64 {
			switch v := val.(type) {
			case float64:
				return v
			case float32:
				return float64(v)
			case int:
				return float64(v)
			default:
				if dec, ok := val.(interface{ InexactFloat64() float64 }); ok {
					return dec.InexactFloat64()
				}
				return 0
			}
		},
	}
}

// NewManager creates and loads all *.tmpl files from the directory.
func NewManager(templatesDir string) (*Manager, error) {
	tmpl := template.New("root").Funcs(GetDefaultFuncMap())

	pattern := filepath.Join(templatesDir, "*.tmpl")
	tmpl, err := tmpl.ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates from %s: %w", templatesDir, err)
	}

	count := len(tmpl.Templates())
	if count <= 1 { // "root" itself doesn't count
		return nil, fmt.Errorf("no templates found in %s", templatesDir)
	}

	logger.Debug("templates loaded",
		zap.Int("count", count),
		zap.String("directory", templatesDir),
	)

	return &Manager{templates: tmpl, directory: templatesDir}, nil
}

// ExecuteTemplate renders a template by name.
func (m *Manager) ExecuteTemplate(name string, data interface{}) (string, error) {
	tmpl := m.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// TemplateExists reports whether a template is loaded.
func (m *Manager) TemplateExists(name string) bool {
	return m.templates.Lookup(name) != nil
}
