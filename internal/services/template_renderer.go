package services

import (
	"regexp"
	"strings"

	"contract-studio/internal/entities"
)

var placeholderRegexp = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.-]+)\s*\}\}`)

// RenderReport - результат подстановки вместе со статистикой по плейсхолдерам.
type RenderReport struct {
	Text       string   `json:"text"`
	Resolved   []string `json:"resolved"`
	Unresolved []string `json:"unresolved"`
	TokenCount int      `json:"token_count"`
}

type TemplateRenderer struct {
	resolver *PlaceholderResolver
}

func NewTemplateRenderer(resolver *PlaceholderResolver) *TemplateRenderer {
	return &TemplateRenderer{resolver: resolver}
}

// HasPlaceholders сообщает, есть ли в тексте хоть один токен {{ key }}.
func HasPlaceholders(text string) bool {
	return placeholderRegexp.MatchString(text)
}

// Render заменяет токены {{ key }} значениями из анкеты за один проход.
// Токен без данных остаётся в тексте как есть, поэтому повторный рендер ничего не меняет.
func (t *TemplateRenderer) Render(text string, rec entities.Record) RenderReport {
	report := RenderReport{Resolved: []string{}, Unresolved: []string{}}
	seen := make(map[string]bool)

	report.Text = placeholderRegexp.ReplaceAllStringFunc(text, func(token string) string {
		report.TokenCount++
		key := NormalizePlaceholderKey(placeholderRegexp.FindStringSubmatch(token)[1])

		value := t.resolver.Resolve(key, rec)
		if !seen[key] {
			seen[key] = true
			if strings.TrimSpace(value) == "" {
				report.Unresolved = append(report.Unresolved, key)
			} else {
				report.Resolved = append(report.Resolved, key)
			}
		}

		if strings.TrimSpace(value) == "" {
			return token
		}
		return value
	})
	return report
}

// RenderText - Render без статистики.
func (t *TemplateRenderer) RenderText(text string, rec entities.Record) string {
	return t.Render(text, rec).Text
}
