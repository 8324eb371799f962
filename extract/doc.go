// Package extract builds per-page token indexes from a source PDF.
//
// Extraction itself is delegated to github.com/ledongthuc/pdf, which yields
// positioned text at roughly character granularity. This package merges those
// fragments into word tokens, normalizes the text (NFKC, so ligatures such as
// ﬁ compare equal to their ASCII spellings), and sorts each page into visual
// reading order.
package extract
