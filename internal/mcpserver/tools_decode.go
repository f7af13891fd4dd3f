package mcpserver

import (
	"context"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type decodeInput struct {
	Spec specInput `json:"spec"           jsonschema:"The OAS document to decode"`
	As   string    `json:"as,omitempty"   jsonschema:"Force a document format instead of detecting it: auto (default), v2 or v3"`
	Full bool      `json:"full,omitempty" jsonschema:"Also return the document re-encoded as JSON"`
}

type decodeOutput struct {
	Kind         string               `json:"kind"`
	Version      string               `json:"version"`
	OASVersion   string               `json:"oas_version"`
	Title        string               `json:"title"`
	Format       string               `json:"format"`
	Servers      []string             `json:"servers,omitempty"`
	Tags         []string             `json:"tags,omitempty"`
	Extensions   []string             `json:"extensions,omitempty"`
	Stats        parser.DocumentStats `json:"stats"`
	Warnings     []string             `json:"warnings,omitempty"`
	FullDocument string               `json:"full_document,omitempty"`
}

func handleDecode(_ context.Context, _ *mcp.CallToolRequest, input decodeInput) (*mcp.CallToolResult, decodeOutput, error) {
	extraOpts, err := kindOption(input.As)
	if err != nil {
		return errResult(err), decodeOutput{}, nil
	}

	result, err := input.Spec.resolve(extraOpts...)
	if err != nil {
		return errResult(err), decodeOutput{}, nil
	}

	doc := result.Document
	output := decodeOutput{
		Kind:       doc.Kind().String(),
		Version:    result.Version,
		OASVersion: result.OASVersion.String(),
		Title:      doc.Title(),
		Format:     string(result.SourceFormat),
		Stats:      result.Stats,
		Warnings:   result.Warnings,
	}

	var ext codec.Extensions
	if d, ok := doc.OAS2(); ok {
		ext = d.Extensions
		output.Tags = makeSlice[string](len(d.Tags))
		for _, tag := range d.Tags {
			if tag != nil {
				output.Tags = append(output.Tags, tag.Name)
			}
		}
	} else if d, ok := doc.OAS3(); ok {
		ext = d.Extensions
		output.Servers = makeSlice[string](len(d.Servers))
		for _, s := range d.Servers {
			if s != nil {
				output.Servers = append(output.Servers, s.URL)
			}
		}
		output.Tags = makeSlice[string](len(d.Tags))
		for _, tag := range d.Tags {
			if tag != nil {
				output.Tags = append(output.Tags, tag.Name)
			}
		}
	}
	if len(ext) > 0 {
		output.Extensions = ext.Keys()
	}

	if input.Full {
		data, err := parser.EncodeIndent(doc, "", "  ")
		if err != nil {
			return errResult(err), decodeOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
