package convert

import (
	"regexp"
	"strings"
)

// Rule is one substitution step. Later rules see the output of earlier ones.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Replace receives the text produced by the previous rule.
	Replace func(re *regexp.Regexp, text string) string
}

// Converter applies its rules in order.
type Converter struct {
	rules []Rule
}

// Default is the shared preview converter.
//
//nolint:gochecknoglobals // Rules are immutable after init.
var Default = New()

// New returns a Converter with the preview rule set.
func New() *Converter {
	return &Converter{rules: defaultRules()}
}

// ToHTML converts source with the default rule set.
func ToHTML(source string) string {
	return Default.Convert(source)
}

// Rules returns the rule names in application order.
func (c *Converter) Rules() []string {
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		names = append(names, r.Name)
	}
	return names
}

// Convert runs every rule over source and wraps the result in a paragraph.
func (c *Converter) Convert(source string) string {
	text := source
	for _, r := range c.rules {
		text = r.Replace(r.Pattern, text)
	}
	return "<p>" + text + "</p>"
}

func defaultRules() []Rule {
	return []Rule{
		replaceAll("h3", `(?m)^### (.+)$`, "<h3>${1}</h3>"),
		replaceAll("h2", `(?m)^## (.+)$`, "<h2>${1}</h2>"),
		replaceAll("h1", `(?m)^# (.+)$`, "<h1>${1}</h1>"),
		replaceAll("strong", `\*\*(.+?)\*\*`, "<strong>${1}</strong>"),
		replaceAll("em", `\*(.+?)\*`, "<em>${1}</em>"),
		replaceAll("code", "`([^`]+)`", "<code>${1}</code>"),
		replaceAll("li", `(?m)^- (.+)$`, "<li>${1}</li>"),
		{
			Name:    "ul",
			Pattern: regexp.MustCompile(`(?s)<li>.*</li>`),
			Replace: wrapFirstList,
		},
		replaceAll("blockquote", `(?m)^> (.+)$`, "<blockquote>${1}</blockquote>"),
		{
			Name:    "paragraph",
			Pattern: regexp.MustCompile(`\n\n`),
			Replace: func(_ *regexp.Regexp, text string) string {
				return strings.ReplaceAll(text, "\n\n", "</p><p>")
			},
		},
	}
}

func replaceAll(name, pattern, template string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(pattern),
		Replace: func(re *regexp.Regexp, text string) string {
			return re.ReplaceAllString(text, template)
		},
	}
}

// wrapFirstList wraps a single span, from the first <li> to the last </li>,
// in <ul>. Separate lists share that one wrapper.
func wrapFirstList(re *regexp.Regexp, text string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}

	items := itemBreak.ReplaceAllString(text[loc[0]:loc[1]], "</li><li>")
	return text[:loc[0]] + "<ul>" + items + "</ul>" + text[loc[1]:]
}

//nolint:gochecknoglobals // Compiled once.
var itemBreak = regexp.MustCompile(`</li>\r?\n<li>`)
