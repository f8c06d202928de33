// Package domparser turns a simplified HTML document into a node tree.
//
// The accepted markup is a strict subset of HTML: start tags with optional
// name="value" attributes, matching end tags, and text. There are no
// self-closing tags, comments, doctypes or character entities, and every start
// tag must be closed by a matching end tag in stack order.
//
// Parsing happens in two layers:
//
//   - Tokenizer: scans the raw bytes and yields StartTag, EndTag and Text
//     tokens one at a time.
//   - Builder: consumes tokens and assembles Element and Text nodes using an
//     explicit stack of open elements.
//
// Tag and attribute names resolve against a small closed vocabulary. Names
// outside of it resolve to TagUnknown or AttrUnknown and keep their original
// text, so unrecognized markup still renders back out.
//
// Usage:
//
//	nodes, err := domparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	domparser.Dump(os.Stdout, nodes)
package domparser
