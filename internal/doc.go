// Package internal contains the core implementation packages for pencraft.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - node: the page tree (Frame, Text, IconRef) and its JSON encoding
//   - idalloc: prefixed id counters seeded from an existing document
//   - layout: the composer that builds stacks, boxes and tiled pages
//   - tokens: design token references written through unresolved
//   - registry: section keys mapped to builders, pages and prefixes
//   - sections: the built-in component showcase sections
//   - passes: named generation passes and their prerequisites
//   - store: loading, appending to, validating and writing the document
//   - services: the operations behind each CLI command
//   - schema: JSON Schema of the document
//   - config, logging, errors: the ambient stack
//   - watcher: debounced file watching for the watch command
//
// # Data Flow
//
// A run loads the document, seeds an allocator with every id in it, builds
// each requested section through a composer drawing from that allocator,
// locates every target page, appends, validates the whole document by
// encoding and decoding it, and only then writes the file once. Any failure
// before the write leaves the file on disk untouched.
//
// For detailed documentation, see the individual package documentation.
package internal
