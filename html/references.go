package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Reference counts how often a URL occurs in one attribute of one element
// type, e.g. every <script src> in a document.
type Reference struct {
	Tag   string
	Attr  string
	Count int
}

// FindReferences tokenizes htmlContent and counts occurrences of url inside
// element attribute values, grouped by tag and attribute in document order.
// Occurrences in text, inline scripts and comments are not counted.
func FindReferences(htmlContent, url string) []Reference {
	if url == "" {
		return nil
	}

	var refs []Reference
	index := make(map[[2]string]int)

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way the document is done
			return refs
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				n := strings.Count(string(val), url)
				if n == 0 {
					continue
				}
				k := [2]string{tag, string(key)}
				if i, ok := index[k]; ok {
					refs[i].Count += n
					continue
				}
				index[k] = len(refs)
				refs = append(refs, Reference{Tag: tag, Attr: string(key), Count: n})
			}
		}
	}
}

// Total sums the counts of refs.
func Total(refs []Reference) int {
	total := 0
	for _, r := range refs {
		total += r.Count
	}
	return total
}
