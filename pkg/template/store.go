package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Template is one reusable message template. Body is HTML; placeholder
// tokens inside subject and body are left unresolved.
type Template struct {
	Name    string
	Subject string
	Type    string
	Body    string
}

// frontmatter is the YAML header of a template file.
type frontmatter struct {
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
	Type    string `yaml:"type"`
}

// Store holds the loaded templates, keyed by name. It is immutable after
// Load and safe for concurrent use.
type Store struct {
	templates map[string]Template
	names     []string
}

// Load reads every .md file in dir (non-recursive) from fsys and parses it
// into a Template. A file without a name in its frontmatter uses its
// filename without extension; two files resolving to the same name are
// rejected.
func Load(fsys fs.FS, dir string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template dir %q: %w", dir, err)
	}

	md := goldmark.New()
	s := &Store{templates: make(map[string]Template)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %q: %w", entry.Name(), err)
		}

		tpl, err := parse(md, raw)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", entry.Name(), err)
		}
		if tpl.Name == "" {
			tpl.Name = strings.TrimSuffix(entry.Name(), ".md")
		}
		if _, exists := s.templates[tpl.Name]; exists {
			return nil, fmt.Errorf("template %q: %w: %s", entry.Name(), ErrDuplicateName, tpl.Name)
		}

		s.templates[tpl.Name] = tpl
		s.names = append(s.names, tpl.Name)
	}

	sort.Strings(s.names)
	return s, nil
}

// parse splits frontmatter from body and converts the markdown body to HTML.
func parse(md goldmark.Markdown, content []byte) (Template, error) {
	delimiter := []byte("---")

	var meta frontmatter
	body := content

	if bytes.HasPrefix(content, delimiter) {
		rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
		end := bytes.Index(rest, delimiter)
		if end < 0 {
			return Template{}, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
		if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
			return Template{}, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
		body = bytes.TrimLeft(rest[end+len(delimiter):], "\r\n")
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return Template{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return Template{
		Name:    meta.Name,
		Subject: meta.Subject,
		Type:    meta.Type,
		Body:    strings.TrimSpace(html.String()),
	}, nil
}

// Get returns the template with the given name.
func (s *Store) Get(name string) (Template, error) {
	tpl, ok := s.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return tpl, nil
}

// Names returns all template names, sorted.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
