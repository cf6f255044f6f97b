// Package readable isolates the substantive article content of a web
// page from its surrounding boilerplate (navigation, ads, menus,
// footers) and turns it into clean text, a capped list of related
// links found inside the content, and a typed block structure
// (headings, paragraphs, bullet lists, code) suitable for display.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g.,
// heuristic/, goquery/, http/).
package readable
