// Package services implements the driving port interfaces.
// Services contain the core business logic: the citation analyzer and
// the TF-IDF comparator as pure, per-call computations, plus the audit
// orchestration over driven ports (adapters).
package services
