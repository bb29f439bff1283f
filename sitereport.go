// Package sitereport crawls a single web site breadth-first, extracts
// structured content from every page it reaches, and renders the collected
// pages as a report in one of several formats.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package sitereport
