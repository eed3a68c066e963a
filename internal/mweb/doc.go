// Package mweb answers questions about UnB courses, curricula and class
// offerings by scraping Matrícula Web.
//
// Every method follows the same shape:
//  1. turn the input into an endpoint and query parameters.
//  2. fetch the page, bounded by Options.Timeout.
//  3. run one or more extraction passes over the page (some passes run
//     over a section captured by a previous one).
//  4. group and assemble the captures into the returned record.
//
// A page that could not be fetched, or that no rule matches, gives an empty
// record and a nil error. A capture that should be a number but is not one
// is returned as an error wrapping assemble.ErrMalformedNumber, since it
// means a rule no longer agrees with the page layout.
package mweb
