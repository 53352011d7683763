/*
Package miniyaml parses the restricted YAML subset used for front-matter
blocks: nested mappings expressed with 2-space indentation, whose values
are null, boolean, integer, or string scalars, or single-line flow lists
of such scalars.

The package offers two backends behind one contract:

1. Full parser pass-through (default build)

By default, Parse is a thin wrapper around a full-featured YAML parser
(github.com/goccy/go-yaml). Inputs restricted to the subset produce the
same document shape under either backend, but advanced syntax is also
accepted.

2. Restricted fallback (build tag "miniyaml_subset")

When built with the miniyaml_subset tag, Parse uses the self-contained
fallback parser and accepts only the subset grammar. ParseSubset exposes
the fallback directly in every build, and ActiveBackend reports which
implementation Parse dispatches to, so callers can decide whether
advanced syntax is safe to use upstream:

	doc, err := miniyaml.Parse(src)
	if err != nil {
		// handle error
	}
	if miniyaml.ActiveBackend() == miniyaml.BackendSubset {
		// only subset syntax was accepted
	}

The fallback is strict and all-or-nothing. Tabs in indentation and
indentation that is not a multiple of two spaces fail with
MalformedIndentation; lines that do not have the key: value shape fail
with UnsupportedSyntax; malformed double-quoted strings fail with
InvalidScalar. Every error carries the 1-based line number.

Known limitation: elements of a flow list are separated by a plain comma
split that does not respect quotes or nested brackets, so a quoted
element containing a comma is split apart. Lists are always flat; an
element is never itself a list or mapping.

Marshal and Encoder write a document back out in the subset grammar with
sorted keys, and SplitFrontMatter isolates a leading "---" delimited
block from a larger document.
*/
package miniyaml
