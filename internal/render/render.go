// Package render builds the HTML fragments the site embeds: article bodies
// with inline images and video descriptions with clickable links.
package render

import (
	"strings"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/daniilsolovey/innonews/internal/newsportal"
)

const (
	bodyClass        = "article-body"
	inlineImageClass = "article-inline-image"
	descriptionClass = "video-description"
)

// ArticleBody renders content with every [IMG:url] marker replaced by an image.
func ArticleBody(content string) g.Node {
	return Div(Class(bodyClass), g.Group(segments(newsportal.ExpandImages(content))))
}

// VideoDescription renders a description with its URLs as external links.
func VideoDescription(text string) g.Node {
	return Div(Class(descriptionClass), g.Group(segments(newsportal.LinkifyDescription(text))))
}

func segments(list []newsportal.Segment) []g.Node {
	nodes := make([]g.Node, 0, len(list))
	for _, s := range list {
		switch s.Kind {
		case newsportal.SegmentImage:
			nodes = append(nodes, Img(
				Class(inlineImageClass),
				Src(s.Value),
				Alt(""),
				g.Attr("loading", "lazy"),
			))
		case newsportal.SegmentLink:
			nodes = append(nodes, A(
				Href(s.Value),
				g.Attr("target", "_blank"),
				g.Attr("rel", "noopener noreferrer"),
				g.Text(s.Value),
			))
		default:
			nodes = append(nodes, g.Text(s.Value))
		}
	}
	return nodes
}

// String renders n to a string.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
