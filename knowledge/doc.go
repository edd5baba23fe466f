// Package knowledge holds the static question/answer knowledge base the
// assistant matches against. A Base is loaded once at startup from a JSON
// document and is immutable afterwards; entries are identified by their
// position, which the similarity index uses to correlate vector rows.
//
// The on-disk format keeps the field names of the original data file
// ("question", "reponse", "tags") so existing knowledge files keep working.
package knowledge
