package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// DigestItem is one story in the rendered email.
type DigestItem struct {
	Category    string
	Title       string
	URL         string
	Source      string
	PublishedAt time.Time
	Summary     string
}

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; max-width: 640px; margin: 0 auto; color: #1a1a1a;">
  <h1 style="font-size: 22px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px;">Your 3 Things</h1>
  <p style="color: #666; font-size: 13px;">Markets &amp; Economy &middot; {{.Date}}</p>
  {{range .Items}}
  <div style="margin: 24px 0;">
    <div style="font-size: 11px; letter-spacing: 1px; text-transform: uppercase; color: #8a6d3b;">{{.Category}}</div>
    <h2 style="font-size: 17px; margin: 4px 0;"><a href="{{.URL}}" style="color: #1a1a1a;">{{.Title}}</a></h2>
    <div style="font-size: 12px; color: #666;">{{.Meta}}</div>
    <div style="font-size: 14px; line-height: 1.5; margin-top: 8px;">{{.SummaryHTML}}</div>
  </div>
  {{end}}
  <p style="font-size: 11px; color: #999; border-top: 1px solid #ddd; padding-top: 8px;">You are receiving this because you subscribed to the daily brief.</p>
</body>
</html>
`))

type digestView struct {
	Date  string
	Items []digestItemView
}

type digestItemView struct {
	Category    string
	Title       string
	URL         string
	Meta        string
	SummaryHTML template.HTML
}

// BuildDigestHTML renders the digest email body.
func BuildDigestHTML(date time.Time, items []DigestItem) (string, error) {
	view := digestView{Date: date.Format("Monday, January 2, 2006")}
	for _, item := range items {
		view.Items = append(view.Items, digestItemView{
			Category:    item.Category,
			Title:       item.Title,
			URL:         item.URL,
			Meta:        itemMeta(item),
			SummaryHTML: summaryHTML(item.Summary),
		})
	}

	var b strings.Builder
	if err := digestTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return b.String(), nil
}

func itemMeta(item DigestItem) string {
	meta := item.Source
	if !item.PublishedAt.IsZero() {
		if meta != "" {
			meta += " · "
		}
		meta += item.PublishedAt.Format("Jan 2, 15:04 MST")
	}
	return meta
}

// summaryHTML escapes the model output and converts its line structure to
// markup, bolding the closing "So what?" takeaway.
func summaryHTML(summary string) template.HTML {
	var lines []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		escaped := template.HTMLEscapeString(line)
		if strings.HasPrefix(strings.ToLower(line), "so what?") {
			escaped = "<strong>" + escaped + "</strong>"
		}
		lines = append(lines, escaped)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}
