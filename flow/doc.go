// Package flow lays answer text into the page.
//
// The flow writer wraps an answer to the width available after its caption
// keyword, bounds the writable box vertically against pre-existing content,
// writes the lines that the fill policy allows in place, and emits a
// continuation job for anything left over. The continuation manager consumes
// those jobs, inserting continuation pages into the document and flowing the
// remaining lines and images across them.
//
// All drawing goes through the [Device] interface; the package itself
// performs only coordinate arithmetic and never touches the PDF.
package flow
