// Package content holds the public marketing pages shipped with the binary.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/examdesk-api/internal/dto"
)

//go:embed site.yaml
var siteYAML []byte

type document struct {
	Pages []dto.SitePage `yaml:"pages"`
}

// Pages parses the embedded site content, keyed by slug.
func Pages() (map[string]dto.SitePage, error) {
	return parse(siteYAML)
}

func parse(raw []byte) (map[string]dto.SitePage, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	pages := make(map[string]dto.SitePage, len(doc.Pages))
	for _, p := range doc.Pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("site page %q has no slug", p.Title)
		}
		if _, dup := pages[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate site page %q", p.Slug)
		}
		pages[p.Slug] = p
	}
	return pages, nil
}
