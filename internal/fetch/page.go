package fetch

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]{2,}`)
	titlePattern        = regexp.MustCompile(`^-+\s*(.*?)\s*-+$`)
)

// Page is a puzzle description converted to markdown.
type Page struct {
	Title    string
	Markdown string
	// Answers already accepted for this account, in part order.
	Answers []string
}

// ParsePage extracts the puzzle articles and accepted answers from a
// puzzle page.
func ParsePage(htmlContent string) (Page, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse page: %w", err)
	}

	var page Page
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "article" && hasClass(n, "day-desc"):
				if page.Title == "" {
					page.Title = articleTitle(n)
				}
				extractText(n, &sb, false, 0)
				sb.WriteString("\n\n")
				return
			case n.Data == "p":
				if answer, ok := answerIn(n); ok {
					page.Answers = append(page.Answers, answer)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	page.Markdown = cleanMarkdown(sb.String())
	if page.Markdown == "" {
		return Page{}, fmt.Errorf("page has no puzzle description")
	}
	return page, nil
}

// answerIn recognises "Your puzzle answer was <code>N</code>."
func answerIn(p *html.Node) (string, bool) {
	if !strings.HasPrefix(strings.TrimSpace(textOf(p)), "Your puzzle answer was") {
		return "", false
	}
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "code" {
			return strings.TrimSpace(textOf(c)), true
		}
	}
	return "", false
}

func articleTitle(article *html.Node) string {
	for c := article.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "h2" {
			title := strings.TrimSpace(textOf(c))
			if m := titlePattern.FindStringSubmatch(title); m != nil {
				return m[1]
			}
			return title
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textOf(c))
	}
	return sb.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func extractText(n *html.Node, sb *strings.Builder, inPre bool, depth int) {
	if depth > 50 {
		return
	}

	switch n.Type {
	case html.TextNode:
		if inPre {
			sb.WriteString(n.Data)
			return
		}
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return
		}
		if strings.TrimLeft(n.Data, " \t\n") != n.Data {
			sb.WriteString(" ")
		}
		sb.WriteString(text)
		if strings.TrimRight(n.Data, " \t\n") != n.Data {
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "h2":
			sb.WriteString("\n\n## ")
		case "p":
			sb.WriteString("\n\n")
		case "li":
			sb.WriteString("\n- ")
		case "pre":
			sb.WriteString("\n\n```\n")
			inPre = true
		case "code":
			if !inPre {
				sb.WriteString("`")
			}
		case "em":
			if !inPre {
				sb.WriteString("**")
			}
		case "a":
			if href := getAttr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
				sb.WriteString("[")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, inPre, depth+1)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "h2":
			sb.WriteString("\n\n")
		case "pre":
			if !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString("```\n\n")
		case "code":
			if !inPre {
				sb.WriteString("`")
			}
		case "em":
			if !inPre {
				sb.WriteString("**")
			}
		case "a":
			if href := getAttr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
				fmt.Fprintf(sb, "](%s)", href)
			}
		}
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// cleanMarkdown collapses blank runs and trailing spaces. Lines inside code
// fences keep their leading whitespace.
func cleanMarkdown(s string) string {
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	fenced := false
	for i, line := range lines {
		if strings.TrimSpace(line) == "```" {
			fenced = !fenced
			lines[i] = "```"
			continue
		}
		if fenced {
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}
		lines[i] = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
