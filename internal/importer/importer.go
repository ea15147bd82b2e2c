// Package importer rebuilds a project from an existing HTML document.
// Stylesheets are flattened onto each element by selector specificity with
// inline styles winning, local images are inlined as data URIs, scripts
// are collected into the global script, and the body element becomes the
// root component of the imported tree.
package importer

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pagestudio/local-app/internal/model"
)

// typeForTag inverts the component vocabulary: imported elements get the
// type whose blueprint renders their tag. Unrecognized tags come in as
// generic containers.
var typeForTag = map[string]string{
	"div":    "div",
	"p":      "text",
	"span":   "text",
	"h1":     "text",
	"h2":     "text",
	"h3":     "text",
	"h4":     "text",
	"h5":     "text",
	"h6":     "text",
	"button": "button",
	"img":    "img",
	"header": "header",
	"footer": "footer",
	"main":   "content",
	"svg":    "svg",
	"path":   "path",
	"g":      "path",
}

var (
	idSuffix = regexp.MustCompile(`^element-(\d+)$`)
	bgURL    = regexp.MustCompile(`url\((.*?)\)`)
)

// Importer carries the per-run state of one import: the parsed stylesheet,
// the collected scripts and the fallback id counter.
type Importer struct {
	basePath string

	rules   []styleRule
	css     strings.Builder
	scripts strings.Builder
	counter int
}

type styleRule struct {
	sel   cascadia.Sel
	decls []*css.Declaration
}

// ImportFile reads and imports an HTML document, resolving relative asset
// references against the document's directory.
func ImportFile(path string) (*model.Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read html file: %w", err)
	}
	return Import(string(content), filepath.Dir(path))
}

// Import parses an HTML document into a project. basePath anchors relative
// stylesheet, script and image references.
func Import(content, basePath string) (*model.Project, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	imp := &Importer{basePath: basePath, counter: 1}
	if head := findElement(doc, atom.Head); head != nil {
		imp.collectCSS(head)
	}
	imp.collectScripts(doc)
	if err := imp.compileRules(); err != nil {
		return nil, err
	}

	project := model.NewProject()
	project.GlobalCSS = imp.css.String()
	project.GlobalJS = imp.scripts.String()
	if body := findElement(doc, atom.Body); body != nil {
		if root := imp.parseElement(body); root != nil {
			project.Components = []*model.Component{root}
		}
	}
	project.NextID = imp.nextID(project)
	return project, nil
}

// collectCSS gathers the text of every head stylesheet, following local
// <link rel="stylesheet"> references.
func (imp *Importer) collectCSS(head *html.Node) {
	for n := head.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.DataAtom {
		case atom.Style:
			imp.css.WriteString(textContent(n))
			imp.css.WriteString("\n")
		case atom.Link:
			if attrValue(n, "rel") != "stylesheet" {
				continue
			}
			href := attrValue(n, "href")
			if href == "" || strings.HasPrefix(href, "http") {
				continue
			}
			if data, err := os.ReadFile(filepath.Join(imp.basePath, href)); err == nil {
				imp.css.Write(data)
				imp.css.WriteString("\n")
			}
		}
	}
}

// collectScripts pulls every script in the document into the global
// script, following local src references.
func (imp *Importer) collectScripts(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Script {
		src := attrValue(n, "src")
		switch {
		case src != "" && !strings.HasPrefix(src, "http"):
			if data, err := os.ReadFile(filepath.Join(imp.basePath, src)); err == nil {
				imp.scripts.Write(data)
				imp.scripts.WriteString("\n")
			}
		case src == "":
			if body := textContent(n); body != "" {
				imp.scripts.WriteString(body)
				imp.scripts.WriteString("\n")
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		imp.collectScripts(c)
	}
}

// compileRules turns the gathered stylesheet text into matchable selector
// rules. Selectors the matcher cannot compile are skipped; at-rules carry
// no per-element styles and are ignored.
func (imp *Importer) compileRules() error {
	sheet, err := parser.Parse(imp.css.String())
	if err != nil {
		return fmt.Errorf("failed to parse stylesheet: %w", err)
	}
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		for _, selector := range rule.Selectors {
			sel, err := cascadia.Parse(selector)
			if err != nil {
				continue
			}
			imp.rules = append(imp.rules, styleRule{sel: sel, decls: rule.Declarations})
		}
	}
	return nil
}

func (imp *Importer) parseElement(n *html.Node) *model.Component {
	tag := n.Data
	compType, ok := typeForTag[tag]
	if !ok {
		compType = "div"
	}
	id := attrValue(n, "id")
	if id == "" {
		id = fmt.Sprintf("%s-%d", compType, imp.counter)
		imp.counter++
	}

	c := model.NewComponent(id, compType, tag)
	c.Name = id
	c.Style = imp.computedStyle(n)

	if len(n.Attr) > 0 {
		c.Attributes = make(map[string]model.AttrValue, len(n.Attr))
	}
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if key == "id" || key == "style" {
			continue
		}
		if key == "class" {
			c.Attributes[key] = model.Tokens(strings.Fields(a.Val)...)
			continue
		}
		c.Attributes[key] = model.AttrValue{a.Val}
	}

	imp.inlineImages(c)

	var text []string
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if t := strings.TrimSpace(child.Data); t != "" {
				text = append(text, t)
			}
		case html.ElementNode:
			if child.DataAtom == atom.Script || child.DataAtom == atom.Style {
				continue
			}
			if sub := imp.parseElement(child); sub != nil {
				c.Children = append(c.Children, sub)
			}
		}
	}
	c.Text = strings.Join(text, " ")
	return c
}

// computedStyle flattens every matching stylesheet rule onto the element
// in specificity order and applies inline declarations last.
func (imp *Importer) computedStyle(n *html.Node) map[string]string {
	var matched []styleRule
	for _, rule := range imp.rules {
		if rule.sel.Match(n) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].sel.Specificity().Less(matched[j].sel.Specificity())
	})

	style := make(map[string]string)
	for _, rule := range matched {
		applyDeclarations(style, rule.decls)
	}
	if inline := attrValue(n, "style"); inline != "" {
		if decls, err := parser.ParseDeclarations(inline); err == nil {
			applyDeclarations(style, decls)
		}
	}
	return style
}

func applyDeclarations(style map[string]string, decls []*css.Declaration) {
	for _, d := range decls {
		style[model.KebabToCamel(d.Property)] = d.Value
	}
}

// inlineImages replaces local image references with data URIs so the
// imported project renders without the source directory.
func (imp *Importer) inlineImages(c *model.Component) {
	if c.Type == "img" {
		if src, ok := c.Attributes["src"]; ok {
			if data := imp.dataURI(src.String()); data != "" {
				c.Attributes["src"] = model.AttrValue{data}
			}
		}
	}
	bg := c.Style["backgroundImage"]
	if !strings.Contains(bg, "url(") {
		return
	}
	m := bgURL.FindStringSubmatch(bg)
	if m == nil {
		return
	}
	url := strings.Trim(m[1], `'"`)
	if data := imp.dataURI(url); data != "" {
		c.Style["backgroundImage"] = fmt.Sprintf("url('%s')", data)
	}
}

func (imp *Importer) dataURI(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "data:") {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(imp.basePath, ref))
	if err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

// nextID picks an id counter past every numeric suffix in the imported
// tree so ids created afterwards never collide.
func (imp *Importer) nextID(p *model.Project) int {
	next := 1
	p.Walk(func(c *model.Component) bool {
		if m := idSuffix.FindStringSubmatch(c.ID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
				next = n + 1
			}
		}
		return true
	})
	return next
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
