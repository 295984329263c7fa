// Package server implements a line-delimited JSON-RPC 2.0 tool server over
// stdio, exposing BMP inspection and rotation to MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - bmp_info: Header summary of a BMP file
//   - bmp_rotate: Rotate a BMP file by quarter turns and write the result
//   - bmp_sample_color: Color of one pixel
//   - bmp_crop: Rectangular or named region rendered as PNG
//   - bmp_preview: Whole image rendered as PNG
//   - bmp_compare: Pixel-by-pixel similarity of two BMP files
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process.
// bmp_rotate evicts its destination path so later calls see the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data.
package server
