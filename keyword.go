package lex

import "github.com/turmeric-lang/lex/token"

// ResolveKeywords rewrites in place every token.Ident item whose text is a
// reserved word into the corresponding keyword token. It never changes the
// length or order of items.
//
func ResolveKeywords(items []Item) {
	for i := range items {
		items[i] = resolve(items[i])
	}
}

func resolve(i Item) Item {
	if i.Token != token.Ident {
		return i
	}
	if t := token.Lookup(i.Text); t != token.Ident {
		i.Token = t
		i.Text = ""
	}
	return i
}
