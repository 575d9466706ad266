// Package domain contains the study records produced from a single model
// response: the structured summary and the flashcard deck. Records are built
// once and are read-only afterwards; the package has no dependency on any
// transport or terminal code.
package domain
