package site

import (
	"fmt"
	"html/template"
	"io/fs"

	"github.com/spriy4nshu/portfolio/internal/content"
	"github.com/spriy4nshu/portfolio/internal/motion"
)

// IndexTemplate is the name of the page template.
const IndexTemplate = "index.html"

// Funcs returns the template functions for the given options.
func Funcs(opts Options) template.FuncMap {
	api := opts.APIURL
	if api == "" {
		api = opts.BasePath
	}
	return template.FuncMap{
		"url":    func(p string) string { return Join(opts.BasePath, p) },
		"api":    func(p string) string { return Join(api, p) },
		"reveal": revealAttrs,
		"words": func(text string, delay float64, once bool) []motion.Word {
			return motion.Words(text, delay, once)
		},
		"tags": func(p content.Project, n int) map[string]any {
			shown, rest := p.VisibleTags(n)
			return map[string]any{"Shown": shown, "Rest": rest}
		},
		"seconds": motion.Seconds,
		"spring":  springStyle,
		"dict":    dict,
	}
}

// springStyle exposes a named spring as CSS custom properties.
func springStyle(name string) (template.CSS, error) {
	var s motion.Spring
	switch name {
	case "confirm":
		s = motion.ConfirmPop
	case "focus":
		s = motion.FocusSpring
	case "field":
		s = motion.FieldSpring
	default:
		return "", fmt.Errorf("unknown spring %q", name)
	}
	return template.CSS(fmt.Sprintf("--spring-duration:%s;--spring-ease:%s", motion.Seconds(s.Settle()), s.Easing())), nil
}

// dict builds a map from alternating keys and values, for passing several
// values to a nested template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// revealAttrs looks up a reveal preset by name. Indexed presets take the
// element position(s) as extra arguments.
func revealAttrs(name string, idx ...int) (template.HTMLAttr, error) {
	at := func(n int) int {
		if n < len(idx) {
			return idx[n]
		}
		return 0
	}

	var r motion.Reveal
	switch name {
	case "hero-title":
		r = motion.HeroTitle
	case "hero-buttons":
		r = motion.HeroButtons
	case "nav":
		r = motion.NavBar
	case "nav-item":
		r = motion.NavItemAt(at(0))
	case "paragraph":
		r = motion.ParagraphAt(at(0))
	case "project":
		r = motion.ProjectAt(at(0))
	case "skill-card":
		r = motion.SkillCardAt(at(0))
	case "skill-chip":
		r = motion.SkillChipAt(at(0), at(1))
	case "education":
		r = motion.EntryCard
	case "experience":
		r = motion.ExperienceAt(at(0))
	case "form":
		r = motion.FormBlock
	case "form-field":
		r = motion.FormFieldAt(at(0))
	case "footer-item":
		r = motion.FooterItemAt(at(0))
	case "footer-base":
		r = motion.FooterBase
	case "block":
		r = motion.Paragraph
	default:
		return "", fmt.Errorf("unknown reveal preset %q", name)
	}
	return r.Attrs(), nil
}

// Parse parses every template under templates/ in fsys.
func Parse(fsys fs.FS, opts Options) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs(opts)).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}
