// Package lexer tokenizes a single filelist directive line.
//
// The token alphabet is fixed: the flags "+incdir+", "+define+", "-v" and "-y",
// the punctuation "=" and `"`, and path content matching
// [./_a-zA-Z][./_0-9a-zA-Z]*. Whitespace and "#" comments are discarded.
//
// Tokens are produced lazily by Lexer.Next. PeekingLexer adds the single token
// of lookahead the directive grammar needs.
package lexer
