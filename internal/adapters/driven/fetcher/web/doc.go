// Package web provides a PageFetcher adapter that downloads pages over
// HTTP and reduces them to plain text. Links and images are removed
// entirely so navigation chrome does not pollute similarity scores.
package web
