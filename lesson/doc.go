// Package lesson holds the static teaching material that accompanies each
// analysis: a short definition per concept, the conditions that decide it,
// an insight sentence, and the six-stage learning progression.
//
// The content follows Robin J. Wilson's "Introduction to Graph Theory".
// Analyzers attach Lookup(key).Insight to their explanations; callers may
// render the full Concept or the Progression as they see fit.
//
// Everything here is immutable: every accessor returns a fresh copy, so
// callers can modify results freely.
package lesson
