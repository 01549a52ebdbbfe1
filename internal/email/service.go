package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "£" + d.StringFixed(2)
	},
	"hours": func(d decimal.Decimal) string {
		return d.StringFixed(1)
	},
	"date": func(t time.Time) string {
		return t.Format("2 January 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("Monday 2 January at 15:04")
	},
}

// Service renders templated emails and hands them to a Sender.
type Service struct {
	sender      Sender
	fromAddress string
	fromName    string
	templates   map[string]*template.Template
}

// NewService parses the embedded templates. Each content template is
// parsed together with the shared layout.
func NewService(sender Sender, fromAddress, fromName string) (*Service, error) {
	names, err := templateNames()
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Service{
		sender:      sender,
		fromAddress: fromAddress,
		fromName:    fromName,
		templates:   templates,
	}, nil
}

func templateNames() ([]string, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read email templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Name() != "layout.html" {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Compose renders t into an Email addressed to to. The sender name is
// the configured default; callers may override fields before sending.
func (s *Service) Compose(to string, t Template) (*Email, error) {
	htmlBody, textBody, err := s.renderTemplate(t.TemplateName(), t)
	if err != nil {
		return nil, err
	}

	return &Email{
		To:       []string{to},
		From:     s.fromAddress,
		FromName: s.fromName,
		Subject:  t.Subject(),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// Send delivers e, filling the default sender when e leaves it empty.
func (s *Service) Send(ctx context.Context, e *Email) (string, error) {
	if e.From == "" {
		e.From = s.fromAddress
	}
	if e.FromName == "" {
		e.FromName = s.fromName
	}
	if e.TextBody == "" && e.HTMLBody != "" {
		e.TextBody = generatePlainText(e.HTMLBody)
	}
	return s.sender.Send(ctx, e)
}

func (s *Service) renderTemplate(templateName string, data interface{}) (string, string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", "", ErrTemplateNotFound(templateName)
	}

	var htmlBuf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&htmlBuf, "email_layout", data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	htmlBody := htmlBuf.String()
	return htmlBody, generatePlainText(htmlBody), nil
}

// generatePlainText creates a simple plain text version from HTML
func generatePlainText(html string) string {
	replacer := strings.NewReplacer(
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
		"</p>", "\n\n",
		"</div>", "\n",
		"</h1>", "\n\n",
		"</h2>", "\n\n",
		"</h3>", "\n\n",
		"</blockquote>", "\n",
	)
	text := replacer.Replace(html)

	var b strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	text = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#34;", "\"",
		"&#39;", "'",
	).Replace(b.String())

	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
