// Package notebook assembles a bounded textual context from inline text,
// remote PDF files and remote web pages, and hands it to an answering
// capability together with a question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pdf/, gemini/).
package notebook
