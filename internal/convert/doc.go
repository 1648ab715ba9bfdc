// Package convert turns preview source text into an HTML fragment.
//
// The conversion is a fixed, ordered list of regular expression
// substitutions applied to the whole text. It is not a Markdown parser:
// raw HTML passes through unescaped and nested or adjacent markers are not
// disambiguated.
package convert
