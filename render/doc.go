// Package render materializes buffered drawing operations into a PDF file.
//
// The renderer implements the flow drawing device: layout code records text
// and image stamps against stable page handles, and Save resolves the handles
// to final page numbers, inserts the continuation pages, and stamps all
// content in one pass with pdfcpu.
package render
