// Package theme resolves symbolic color references against a theme document.
//
// A theme document is a nested mapping whose reserved "color" key declares
// named tone ladders. References take the form "name" (the base tone),
// "name|offset" (a signed distance from the base tone) or free text whose
// space-separated tokens may themselves be "name|offset" references:
//
//	doc := theme.NewDocument(map[string]any{
//		"color": map[string]any{
//			"primary": []any{"#82b6d4", "#5fa1c8", "#3c8dbc", "#32749a", "#275a78"},
//		},
//		"button": map[string]any{"background": "primary|1"},
//	}, "primary")
//
//	r, err := theme.New(doc, theme.WithMode(theme.ModeStrict))
//	if err != nil {
//		return err
//	}
//	bg, err := r.ResolveColor("primary|-1")       // "#5fa1c8"
//	style, err := r.ResolveStyle(r.GetStyle("button")) // {"background": "#32749a"}
//
// A Resolver never changes after New returns. Swapping themes means building a
// new Resolver and handing it to consumers.
package theme
