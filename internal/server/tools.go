package server

// Tool is a tool entry in the tools/list result.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a 24-bit uncompressed BMP file",
	}
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Scale factor for the PNG output (default 1.0); the scaled output may not exceed 64 Mi pixels",
		"default":     1.0,
	}
}

// GetToolDefinitions returns the schemas of every tool executeTool accepts.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "bmp_info",
			Description: "Read and validate the header of a BMP file and return its dimensions, row layout and sizes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"decode": map[string]interface{}{
						"type":        "boolean",
						"description": "Also decode the pixel data to verify it and cache the image",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bmp_rotate",
			Description: "Rotate a BMP file counter-clockwise by quarter turns and write the result as a new BMP file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the BMP file to write",
					},
					"turns": map[string]interface{}{
						"type":        "integer",
						"description": "Counter-clockwise quarter turns; negative turns rotate clockwise (default 1)",
						"default":     1,
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "bmp_sample_color",
			Description: "Get the color of the pixel at (x, y) as hex, RGB, raw BGR bytes and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    intProperty("X coordinate (0-based, from the left)"),
					"y":    intProperty("Y coordinate (0-based, from the top)"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "bmp_crop",
			Description: "Render a rectangular region (x1,y1)-(x2,y2) or a named region of a BMP file as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"region": map[string]interface{}{
						"type":        "string",
						"description": "Named region; overrides the coordinates when set",
						"enum": []string{
							"top-left", "top-right", "bottom-left", "bottom-right",
							"top-half", "bottom-half", "left-half", "right-half",
						},
					},
					"x1":    intProperty("Left edge X coordinate (inclusive)"),
					"y1":    intProperty("Top edge Y coordinate (inclusive)"),
					"x2":    intProperty("Right edge X coordinate (exclusive)"),
					"y2":    intProperty("Bottom edge Y coordinate (exclusive)"),
					"scale": scaleProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bmp_preview",
			Description: "Render a whole BMP file as base64-encoded PNG, optionally scaled.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"scale": scaleProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bmp_compare",
			Description: "Compare two BMP files pixel by pixel and report similarity, differing pixels and average color difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"other_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the BMP file to compare against",
					},
				},
				"required": []string{"path", "other_path"},
			},
		},
	}
}
