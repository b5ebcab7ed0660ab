package typemap

import "go/token"

var rustKeywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "break": {}, "const": {}, "continue": {},
	"dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {},
	"for": {}, "gen": {}, "if": {}, "impl": {}, "in": {}, "let": {},
	"loop": {}, "match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {},
	"ref": {}, "return": {}, "static": {}, "struct": {}, "trait": {}, "true": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
	"abstract": {}, "become": {}, "box": {}, "do": {}, "final": {}, "macro": {},
	"override": {}, "priv": {}, "try": {}, "typeof": {}, "unsized": {},
	"virtual": {}, "yield": {},
}

// Path keywords cannot be written as raw identifiers.
var rustPathKeywords = map[string]struct{}{
	"crate": {}, "self": {}, "Self": {}, "super": {},
}

// escapeRust turns a keyword into a raw identifier, or suffixes it with an
// underscore when Rust has no raw form for it.
func escapeRust(id string) string {
	if _, ok := rustPathKeywords[id]; ok {
		return id + "_"
	}
	if _, ok := rustKeywords[id]; ok {
		return "r#" + id
	}
	return id
}

func escapeGo(id string) string {
	if token.Lookup(id).IsKeyword() {
		return id + "_"
	}
	return id
}
