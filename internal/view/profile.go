package view

import (
	"sort"

	"portfolio-web/internal/domain"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks lista los enlaces no vacios: primero las plataformas
// conocidas en orden fijo, luego el resto alfabeticamente.
func SocialLinks(p domain.Profile) []SocialLink {
	out := make([]SocialLink, 0, len(p.SocialLinks))
	known := make(map[string]bool, len(domain.SocialPlatforms))
	for _, platform := range domain.SocialPlatforms {
		known[platform] = true
		if url := p.SocialLinks[platform]; url != "" {
			out = append(out, SocialLink{Platform: platform, URL: url})
		}
	}

	var extra []string
	for platform, url := range p.SocialLinks {
		if !known[platform] && url != "" {
			extra = append(extra, platform)
		}
	}
	sort.Strings(extra)
	for _, platform := range extra {
		out = append(out, SocialLink{Platform: platform, URL: p.SocialLinks[platform]})
	}
	return out
}
