// Package locate resolves anchor labels to caption keyword positions.
//
// Given a label such as "Q12" or "R7", the locator finds the page whose token
// index contains the label, then searches forward — within that page first,
// then through a bounded window of subsequent pages — for the nearest caption
// keyword ("Answer" for Q labels; "Compliancy" or "Answer" for R labels). The
// search window and its scoring are captured by [SearchBounds] so the bound
// is explicit and testable rather than a scatter of inline constants.
package locate
