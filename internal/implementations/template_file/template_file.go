package templatefile

import (
	"context"
	"errors"
	"fmt"
	"forumaccount/internal/core/domain/content"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTemplate = errors.New("invalid template")

type file struct {
	Templates []entry `yaml:"templates"`
}

type entry struct {
	Key   string `yaml:"key"`
	Topic string `yaml:"topic"`
	Body  string `yaml:"body"`
}

// Load reads templates from a YAML document of the form
//
//	templates:
//	  - key: email-pass
//	    topic: "{forum} password reset"
//	    body: "..."
func Load(r io.Reader) ([]content.Template, error) {
	var f file
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode templates: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Templates))
	templates := make([]content.Template, 0, len(f.Templates))
	for i, t := range f.Templates {
		key := strings.TrimSpace(t.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: template #%d has no key", ErrInvalidTemplate, i+1)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidTemplate, key)
		}
		if t.Topic == "" || t.Body == "" {
			return nil, fmt.Errorf("%w: template %q must have topic and body", ErrInvalidTemplate, key)
		}
		seen[key] = struct{}{}
		templates = append(templates, content.Template{Key: content.Key(key), Topic: t.Topic, Body: t.Body})
	}
	return templates, nil
}

func LoadFile(path string) ([]content.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Import upserts every template into repository and returns how many were saved.
func Import(ctx context.Context, repository content.Repository, templates []content.Template) (int, error) {
	for i, t := range templates {
		if err := repository.Upsert(ctx, t); err != nil {
			return i, fmt.Errorf("could not import template %q: %w", t.Key, err)
		}
	}
	return len(templates), nil
}
