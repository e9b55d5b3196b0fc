// Package annotate renders classified change regions into a final composite
// figure: the second input image with category-colored region outlines, a
// title band, and a legend strip, serialized as PNG and base64.
//
// Every Annotate call owns its canvas and encoder buffer, so concurrent
// pipeline invocations cannot interfere with each other's drawing state.
package annotate
