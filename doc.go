// Package docbind maps native record types to structured documents,
// declaratively:
//
// - A Converter is a pure bidirectional leaf mapping (decode may fail, encode
//   is total); new converters are derived only through Bimap/BimapE so the
//   round-trip law is preserved by construction.
// - A Format fixes a document container, its primitive leaf union and its
//   path addressing; DecodeAt is the single join point between structural
//   lookup and leaf/nested decoding.
// - A Schema is an ordered list of Property bindings for one record type.
//   Decode evaluates every binding and aggregates every failure into a
//   path-keyed Issues value; it never stops at the first problem. Encode is
//   total.
// - AnyValue/AnySchema erase the decoded type behind a closed Kind set for
//   uniform storage and introspection.
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the concrete document format under jsondoc/, leaf converters under
//   codec/, and the CLI under cmd/docbind.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := jsondoc.NewSchema[User](
//		jsondoc.Prop("name", docbind.NewPath("name"), codec.Text(),
//			func(u User) string { return u.Name },
//			func(u *User, v string) { u.Name = v },
//		),
//	)
//	u, err := schema.Decode(doc)
//	doc2 := schema.Encode(u)
package docbind
