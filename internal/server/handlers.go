package server

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ironsheep/bmp-rotate/internal/bmp"
	"github.com/ironsheep/bmp-rotate/internal/imaging"
	"github.com/ironsheep/bmp-rotate/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bmp_info", "bmp_rotate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Errorf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "bmp_info":
		return s.handleInfo(args)
	case "bmp_rotate":
		return s.handleRotate(args)
	case "bmp_sample_color":
		return s.handleSampleColor(args)
	case "bmp_crop":
		return s.handleCrop(args)
	case "bmp_preview":
		return s.handlePreview(args)
	case "bmp_compare":
		return s.handleCompare(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type infoArgs struct {
	Path   string `json:"path"`
	Decode bool   `json:"decode"`
}

func (s *Server) handleInfo(args json.RawMessage) (interface{}, error) {
	var a infoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return bmp.LoadInfo(s.cache, a.Path, a.Decode)
}

type rotateArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	Turns  *int   `json:"turns"`
}

func (s *Server) handleRotate(args json.RawMessage) (interface{}, error) {
	var a rotateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" || a.Output == "" {
		return nil, fmt.Errorf("path and output are required")
	}
	turns := 1
	if a.Turns != nil {
		turns = *a.Turns
	}

	res, err := pipeline.RotateFile(s.log, a.Path, a.Output, turns)
	// The output may have been replaced or removed either way.
	s.cache.Evict(a.Output)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    uint64 `json:"x"`
	Y    uint64 `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type cropArgs struct {
	Path   string  `json:"path"`
	Region string  `json:"region"`
	X1     int     `json:"x1"`
	Y1     int     `json:"y1"`
	X2     int     `json:"x2"`
	Y2     int     `json:"y2"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Region != "" {
		return imaging.CropQuadrant(img, a.Region, a.Scale)
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type previewArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

func (s *Server) handlePreview(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Preview(img, a.Scale)
}

type compareArgs struct {
	Path      string `json:"path"`
	OtherPath string `json:"other_path"`
}

func (s *Server) handleCompare(args json.RawMessage) (interface{}, error) {
	var a compareArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img1, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img2, err := s.cache.Load(a.OtherPath)
	if err != nil {
		return nil, err
	}
	return imaging.Compare(img1, img2)
}
