// Package imaging provides the in-memory pixel grid used by the BMP codec and
// the geometric transforms applied to it.
//
// An Image is a row-major grid of 24-bit BGR pixels. Other packages reach
// pixels through exactly two bounds-checked accessors: PixelAt for a single
// pixel, and Row for a whole row at a time, which the codec uses to move
// rows to and from disk. Row hands out a slice capped at the row's width, so
// it can neither index nor append past that row. There is no other path into
// the backing storage.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Ownership
//
// An Image is owned by exactly one caller at a time. Create allocates it,
// Release returns its storage to the Allocator that produced it. Transforms
// such as Rotate90 never mutate or release their source; the caller releases
// the source once the transform has returned.
//
// # Empty Images
//
// The zero Image (width or height zero, no storage) is the empty sentinel.
// New and Rotate90 return it instead of an error when allocation fails or the
// input is itself empty, so callers must check IsEmpty after those calls.
//
// # Thread Safety
//
// Images are not safe for concurrent mutation. Read-only operations
// (PixelAt, Rotate90, ToNRGBA) may run concurrently on the same Image as long
// as nobody writes to it.
package imaging
