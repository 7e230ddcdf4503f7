package sentiment

import (
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown and strips the resulting HTML so
// only the readable text remains.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer()))
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(html.UnescapeString(stripped)), " ")

	return plainText
}

func IsMarkdownName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// plainRenderer leaves quotes and dashes alone; smartypants would turn
// "it's" into a curly apostrophe the lexicon does not know.
func plainRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
}
