// Package google implements the driven backend ports against the Google
// Sheets and Drive APIs. It owns credential resolution (the priority-ordered
// strategy chain), API client construction, and the translation between
// domain values and the v4/v3 wire types.
package google
