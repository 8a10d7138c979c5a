// Package mouse describes pointer input delivered by the canvas page.
//
// Events carry canvas coordinates (already converted from client pixels by
// the page) so tools never see screen geometry. Coordinates outside the
// canvas are passed through unchanged.
package mouse
