// Package nestcfg parses the nestcfg configuration language: semicolon
// separated key=value pairs whose values are single-quoted strings,
// bracketed lists, or parenthesized nested objects.
//
//	retries=[( host='db-1'; max='3' );( host='db-2'; max='5' )];
//	banner='it\'s on';
//
// Keys start with a letter and continue with letters, digits, '-' or '_'.
// Inside strings a backslash escapes a quote or another backslash; nothing
// else. Whitespace around any token is ignored, trailing semicolons are
// tolerated, and lists and objects nest to arbitrary depth. Duplicate keys
// are preserved in source order, not merged.
//
// Grammar, informally:
//
//	pairs  := ws (pair (ws ';' ws pair)* (ws ';')?)?
//	pair   := identifier ws '=' ws value
//	value  := string | list | object
//	string := "'" ([^'\] | '\' ("'"|'\'))* "'"
//	list   := '[' ws (value (ws ';' ws value)* (ws ';')?)? ws ']'
//	object := '(' ws pairs? ws ')'
//
// Parse stops at the first byte it cannot attribute to a pair and hands
// that tail back to the caller, so trailing content is not by itself an
// error. Failures are ParseError values carrying the byte offset of the
// problem and a kind matchable with errors.Is against the Err sentinels.
package nestcfg
