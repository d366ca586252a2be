/*
Package fql parses the query language of a streaming record-scanning
tool: `SELECT f1, f2 WHERE <boolean expression>`.

A query selects a projection of field names and a WHERE predicate over
comparisons joined by AND/OR, with parentheses for grouping. Fields in a
record can be compared with the following operators: =, ==, !=, <>, <,
<=, >, >=.

Double quotes `"` delimit string literals, with JSON-style backslash
escaping (\", \\, \/, \b, \f, \n, \r, \t). Keywords (SELECT, WHERE, AND,
OR) are case-insensitive; && and || are accepted as synonyms for AND and
OR.

Comparisons are typed: the literal's variant (string or number) fixes
the comparison's variant, and a field of a different variant - or an
absent field - never matches. There is no cross-type promotion.

Example: SELECT name, age WHERE name = "alice" AND (age > 21 OR age < 5)

Parse produces a *Query pairing the projection with a PredicateNode
tree. Pair that with package recsparser to stream records out of the
wire format described there and evaluate the predicate against each one.
*/
package fql
