// Package glyph turns a volcano glyph kind into drawable geometry.
//
// Geometry is pure: [Geometry] returns polylines and elliptical arcs expressed
// as fractions of the requested size around a center point, with the base at
// the bottom and the apex at the top. Nothing here touches a drawing surface;
// renderers in package render consume the primitives together with a [Stroke]
// chosen once by the caller.
package glyph
