// Package neuro provides an AnswerEngine adapter for a generative
// search bridge: an HTTP service that accepts a query and returns the
// rendered answer text of a Neuro-style answer engine.
package neuro
