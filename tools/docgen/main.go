// Command docgen renders the markdown pages under docs/ into a static
// reference site. Pages and their order come from docs/_sidebar.md; the
// surrounding HTML comes from docs/_template.html.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// navGroup is one labelled block of sidebar links.
type navGroup struct {
	Label string
	Items []navItem
}

// navItem is a single sidebar link, pointing at a source .md path.
type navItem struct {
	Title string
	Path  string
}

// backLink is the optional "← ..." link above the sidebar nav.
type backLink struct {
	Title string
	Href  string
}

// pageData is the template payload for one rendered page.
type pageData struct {
	Title    string
	Sidebar  template.HTML
	Content  template.HTML
	CSSPath  string
	RootPath string
}

func main() {
	docsDir := flag.String("docs", "docs", "path to the docs directory")
	tmplPath := flag.String("template", "", "path to the page template (default: <docs>/_template.html)")
	flag.Parse()

	if *tmplPath == "" {
		*tmplPath = filepath.Join(*docsDir, "_template.html")
	}

	sidebarData, err := os.ReadFile(filepath.Join(*docsDir, "_sidebar.md"))
	if err != nil {
		fatal("reading sidebar: %v", err)
	}
	groups, back := parseSidebar(string(sidebarData))

	tmplData, err := os.ReadFile(*tmplPath)
	if err != nil {
		fatal("reading template: %v", err)
	}
	tmpl, err := template.New("page").Parse(string(tmplData))
	if err != nil {
		fatal("parsing template: %v", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var pages []navItem
	for _, g := range groups {
		pages = append(pages, g.Items...)
	}

	for _, page := range pages {
		mdPath := filepath.Join(*docsDir, page.Path)
		mdData, err := os.ReadFile(mdPath)
		if err != nil {
			fatal("reading %s: %v", mdPath, err)
		}

		title := extractTitle(string(mdData))
		if title == "" {
			title = page.Title
		}

		var contentBuf bytes.Buffer
		if err := md.Convert(mdData, &contentBuf); err != nil {
			fatal("converting %s: %v", page.Path, err)
		}
		contentHTML := rewriteLinks(contentBuf.String())

		outPath := mdToHTMLPath(page.Path)
		outFile := filepath.Join(*docsDir, outPath)
		cssPath, rootPath := relativePaths(outPath)

		data := pageData{
			Title:    title,
			Sidebar:  template.HTML(renderSidebar(groups, back, page.Path, rootPath)),
			Content:  template.HTML(contentHTML),
			CSSPath:  cssPath,
			RootPath: rootPath,
		}

		var pageBuf bytes.Buffer
		if err := tmpl.Execute(&pageBuf, data); err != nil {
			fatal("executing template for %s: %v", page.Path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
			fatal("creating directory for %s: %v", outFile, err)
		}
		if err := os.WriteFile(outFile, pageBuf.Bytes(), 0o644); err != nil {
			fatal("writing %s: %v", outFile, err)
		}

		fmt.Printf("  generated %s\n", outPath)
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

var (
	sidebarLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	sidebarBoldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// parseSidebar reads the _sidebar.md format: bold lines open a group,
// indented links are its items, and a line containing "←" becomes the
// back link above the nav.
func parseSidebar(content string) ([]navGroup, backLink) {
	var groups []navGroup
	var back backLink
	var current *navGroup

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "-" {
			continue
		}

		isIndented := strings.HasPrefix(line, "  ")

		if strings.Contains(trimmed, "←") {
			if m := sidebarLinkRe.FindStringSubmatch(trimmed); m != nil {
				back = backLink{Title: m[1], Href: m[2]}
			}
			continue
		}

		if m := sidebarBoldRe.FindStringSubmatch(trimmed); m != nil && !isIndented {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &navGroup{Label: m[1]}
			continue
		}

		if m := sidebarLinkRe.FindStringSubmatch(trimmed); m != nil && isIndented && current != nil {
			current.Items = append(current.Items, navItem{Title: m[1], Path: m[2]})
		}
	}

	if current != nil {
		groups = append(groups, *current)
	}

	return groups, back
}

// extractTitle returns the text of the first # heading.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimPrefix(trimmed, "# ")
		}
	}
	return ""
}

// mdToHTMLPath maps a source .md path to its .html output path.
// README.md becomes index.html.
func mdToHTMLPath(mdPath string) string {
	dir := filepath.Dir(mdPath)
	base := filepath.Base(mdPath)

	var htmlName string
	if strings.EqualFold(base, "README.md") {
		htmlName = "index.html"
	} else {
		htmlName = strings.TrimSuffix(base, ".md") + ".html"
	}

	if dir == "." {
		return htmlName
	}
	return filepath.Join(dir, htmlName)
}

// relativePaths computes the CSS href and the prefix back to the docs root
// for a page at outPath. Pages in subdirectories need "../" prefixes.
func relativePaths(outPath string) (cssPath, rootPath string) {
	dir := filepath.Dir(outPath)
	if dir == "." {
		return "_docs.css", ""
	}
	depth := strings.Count(filepath.ToSlash(dir), "/") + 1
	prefix := strings.Repeat("../", depth)
	return prefix + "_docs.css", prefix
}

// mdToLinkPath maps a source .md path to the extensionless URL used in
// hrefs. README.md maps to its directory root.
func mdToLinkPath(mdPath string) string {
	htmlPath := mdToHTMLPath(mdPath)
	if filepath.Base(htmlPath) == "index.html" {
		dir := filepath.Dir(htmlPath)
		if dir == "." {
			return ""
		}
		return dir + "/"
	}
	return strings.TrimSuffix(htmlPath, ".html")
}

var linkHrefRe = regexp.MustCompile(`href="([^"]*\.md)(#[^"]*)?`)

// rewriteLinks replaces .md hrefs in rendered HTML with their extensionless
// URL equivalents, keeping fragments.
func rewriteLinks(htmlContent string) string {
	return linkHrefRe.ReplaceAllStringFunc(htmlContent, func(match string) string {
		m := linkHrefRe.FindStringSubmatch(match)
		fragment := ""
		if len(m) > 2 {
			fragment = m[2]
		}
		return `href="` + mdToLinkPath(m[1]) + fragment
	})
}

// renderSidebar generates the sidebar nav HTML, marking the current page.
func renderSidebar(groups []navGroup, back backLink, currentPath, rootPath string) string {
	var b strings.Builder

	if back.Href != "" {
		b.WriteString(fmt.Sprintf(`<a href="%s" class="back-link">%s</a>`+"\n", rootPath+back.Href, back.Title))
	}

	b.WriteString(`<nav class="sidebar-nav">` + "\n")
	for _, group := range groups {
		b.WriteString(fmt.Sprintf(`  <div class="nav-group-label">%s</div>`+"\n", group.Label))
		for _, item := range group.Items {
			href := rootPath + mdToLinkPath(item.Path)

			activeClass := ""
			if item.Path == currentPath {
				activeClass = " active"
			}

			b.WriteString(fmt.Sprintf(`  <a href="%s" class="nav-link%s">%s</a>`+"\n", href, activeClass, item.Title))
		}
	}
	b.WriteString("</nav>\n")

	return b.String()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
