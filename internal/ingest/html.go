package ingest

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var tripleNewlinePattern = regexp.MustCompile(`\n{3,}`)

// ParseHTML extracts an article from an HTML document. It is
// best-effort and never fails: missing pieces degrade to "Untitled
// Post" / "No content extracted" placeholders. sourceURL, when set, is
// used to resolve relative image URLs against the page origin.
func ParseHTML(htmlText string, sourceURL string) *Article {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return &Article{Title: "Untitled Post", Content: "No content extracted"}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = "Untitled Post"
	}

	description, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	description = strings.TrimSpace(description)

	fragment := doc.Find("article").First()
	if fragment.Length() == 0 {
		fragment = doc.Find("main").First()
	}
	if fragment.Length() == 0 {
		fragment = doc.Find(`div[class*="content"]`).First()
	}
	if fragment.Length() == 0 {
		fragment = doc.Find("body").First()
	}

	content := ""
	if fragment.Length() > 0 {
		content = renderFragmentMDX(fragment.Nodes[0])
	}
	if content == "" {
		content = "No content extracted"
	}

	var images []string
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		resolved := resolveImageURL(src, sourceURL)
		if strings.HasPrefix(resolved, "http") {
			images = append(images, resolved)
		}
	})

	if description == "" {
		description = FirstParagraph(content, descriptionMaxLength)
	}

	return &Article{
		Title:       title,
		Description: description,
		Content:     content,
		Images:      images,
	}
}

// resolveImageURL makes a relative image URL absolute against the
// source page's origin. Unparseable URLs come back unchanged and are
// filtered out by the http-prefix check above.
func resolveImageURL(src, sourceURL string) string {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "http") || sourceURL == "" {
		return src
	}
	base, err := url.Parse(sourceURL)
	if err != nil || base.Host == "" {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	return origin.ResolveReference(ref).String()
}

// renderFragmentMDX walks the fragment's node tree and emits MDX:
// headings demoted one level (h1 becomes ##), paragraphs, links,
// images, lists, bold and italics. script/style subtrees are dropped
// and any other tag contributes only its text.
func renderFragmentMDX(root *html.Node) string {
	var b strings.Builder
	walkMDX(&b, root)
	out := tripleNewlinePattern.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out)
}

func walkMDX(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "h1":
			writeHeading(b, "## ", n)
			return
		case "h2":
			writeHeading(b, "### ", n)
			return
		case "h3":
			writeHeading(b, "#### ", n)
			return
		case "p":
			walkChildren(b, n)
			b.WriteString("\n\n")
			return
		case "a":
			b.WriteString("[")
			walkChildren(b, n)
			b.WriteString("](" + nodeAttr(n, "href") + ")")
			return
		case "img":
			b.WriteString("![" + nodeAttr(n, "alt") + "](" + nodeAttr(n, "src") + ")")
			return
		case "ul", "ol":
			b.WriteString("\n")
			walkChildren(b, n)
			b.WriteString("\n")
			return
		case "li":
			b.WriteString("- ")
			walkChildren(b, n)
			b.WriteString("\n")
			return
		case "strong", "b":
			b.WriteString("**")
			walkChildren(b, n)
			b.WriteString("**")
			return
		case "em", "i":
			b.WriteString("*")
			walkChildren(b, n)
			b.WriteString("*")
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}

	walkChildren(b, n)
}

func walkChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkMDX(b, c)
	}
}

func writeHeading(b *strings.Builder, prefix string, n *html.Node) {
	var inner strings.Builder
	walkChildren(&inner, n)
	text := strings.TrimSpace(inner.String())
	if text == "" {
		return
	}
	b.WriteString("\n" + prefix + text + "\n")
}

func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
