package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const defaultLayout = "layouts/base.html"

// Rendered is the output of one template execution.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type parsedTemplate struct {
	subject   *texttemplate.Template
	body      *texttemplate.Template
	preheader string
}

// Renderer turns markdown templates with YAML frontmatter into HTML wrapped
// in a layout. Templates are looked up per language first
// ("fr/order_confirmation.md") and then at the root ("order_confirmation.md").
type Renderer struct {
	fsys   fs.FS
	md     goldmark.Markdown
	layout string

	mu        sync.RWMutex
	templates map[string]*parsedTemplate
	layouts   map[string]*template.Template
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLayout overrides the layout path, "layouts/base.html" by default.
func WithLayout(name string) RendererOption {
	return func(r *Renderer) {
		if name != "" {
			r.layout = name
		}
	}
}

// NewRenderer creates a renderer reading templates from fsys.
func NewRenderer(fsys fs.FS, opts ...RendererOption) *Renderer {
	r := &Renderer{
		fsys:      fsys,
		layout:    defaultLayout,
		md:        goldmark.New(goldmark.WithExtensions(extension.Table, extension.Linkify)),
		templates: make(map[string]*parsedTemplate),
		layouts:   make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render executes template name for lang with data.
// The plain text part is the executed markdown before HTML conversion.
func (r *Renderer) Render(lang, name string, data any) (*Rendered, error) {
	tmpl, err := r.template(lang, name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := tmpl.body.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	var subject bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("%w: %s subject: %w", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	layout, err := r.layoutTemplate()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := layout.Execute(&out, map[string]any{
		"Lang":      lang,
		"Subject":   subject.String(),
		"Preheader": tmpl.preheader,
		"Content":   template.HTML(content.String()),
	}); err != nil {
		return nil, fmt.Errorf("%w: layout: %w", ErrRenderFailed, err)
	}

	return &Rendered{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    out.String(),
		Text:    md.String(),
	}, nil
}

func (r *Renderer) template(lang, name string) (*parsedTemplate, error) {
	candidates := []string{name}
	if lang != "" {
		candidates = []string{path.Join(lang, name), name}
	}

	for _, p := range candidates {
		r.mu.RLock()
		t, ok := r.templates[p]
		r.mu.RUnlock()
		if ok {
			return t, nil
		}

		content, err := fs.ReadFile(r.fsys, p)
		if err != nil {
			continue
		}

		t, err = parse(p, content)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.templates[p] = t
		r.mu.Unlock()
		return t, nil
	}

	return nil, fmt.Errorf("%w: %s (lang %q)", ErrTemplateNotFound, name, lang)
}

func parse(name string, content []byte) (*parsedTemplate, error) {
	meta, body, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	subject, err := texttemplate.New(name + ":subject").Parse(meta.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %s subject: %w", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	return &parsedTemplate{subject: subject, body: tmpl, preheader: meta.Preheader}, nil
}

func (r *Renderer) layoutTemplate() (*template.Template, error) {
	r.mu.RLock()
	l, ok := r.layouts[r.layout]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}

	content, err := fs.ReadFile(r.fsys, r.layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLayoutNotFound, r.layout, err)
	}

	l, err = template.New(r.layout).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: layout %s: %w", ErrRenderFailed, r.layout, err)
	}

	r.mu.Lock()
	r.layouts[r.layout] = l
	r.mu.Unlock()
	return l, nil
}
