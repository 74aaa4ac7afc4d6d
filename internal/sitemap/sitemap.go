// Package sitemap renders the storefront's sitemaps.org document.
package sitemap

import (
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"github.com/emberwick/storefront-api/internal/catalog"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root <urlset> element.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one <url> entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Build lists the static pages, one shop page per category and one page per product.
func Build(baseURL string, products []catalog.Product, categories []string, now time.Time) URLSet {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	today := now.UTC().Format("2006-01-02")

	set := URLSet{XMLNS: namespace}
	add := func(path, lastMod, freq, priority string) {
		set.URLs = append(set.URLs, URL{Loc: base + path, LastMod: lastMod, ChangeFreq: freq, Priority: priority})
	}

	add("/", today, "daily", "1.0")
	add("/shop", today, "daily", "0.9")
	for _, name := range categories {
		if strings.TrimSpace(name) == "" || name == catalog.AllCategories {
			continue
		}
		add("/shop?category="+url.QueryEscape(name), today, "weekly", "0.7")
	}
	for _, p := range products {
		add("/products/"+url.PathEscape(p.ID), productLastMod(p, today), "weekly", "0.8")
	}
	add("/quiz", "", "monthly", "0.5")
	return set
}

// Marshal renders set with the XML declaration.
func Marshal(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func productLastMod(p catalog.Product, fallback string) string {
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	return fallback
}
