// Package newsbrief fetches news articles, extracts their title and body
// text from arbitrary HTML, and produces short summaries using a hosted
// language model when one is configured, or an extractive fallback when not.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, gin/).
package newsbrief
