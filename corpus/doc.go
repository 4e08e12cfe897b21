// Package corpus ingests reference text for bigram model building.
//
// It can fetch a book from a MediaWiki instance (the reference corpus is
// Karel Čapek's Krakatit on the Czech Wikisource) and reduce the parsed
// HTML to raw text, then hand off to cipher.Normalize + bigram.Build.
//
// The core engine never depends on this package; it is the ingestion
// collaborator that supplies corpus bytes in and consumes a reference
// model out.
package corpus
