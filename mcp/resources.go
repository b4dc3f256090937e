package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/anixcopiadora/docgen/doctpl"
)

const (
	templatesURI   = "docgen://templates"
	templatePrefix = templatesURI + "/"
)

// registerResources exposes the catalogue for clients that browse resources
// instead of calling tools. Schemas are YAML, which reads better in chat.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		templatesURI,
		"Document templates",
		mcp.WithResourceDescription("Ids and titles of every template, one per line"),
		mcp.WithMIMEType("text/plain"),
	), s.handleTemplatesResource)

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(
		templatePrefix+"{id}",
		"Template schema",
		mcp.WithTemplateDescription("Tabs and fields of one template with empty values"),
		mcp.WithTemplateMIMEType("application/yaml"),
	), s.handleTemplateResource)
}

func (s *Server) handleTemplatesResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var b strings.Builder
	for _, t := range s.gen.Registry().List() {
		status := ""
		if !t.Available() {
			status = " (em breve)"
		}
		fmt.Fprintf(&b, "%s\t%s%s\n", t.ID, t.Title, status)
	}
	return []mcp.ResourceContents{mcp.TextResourceContents{
		URI:      request.Params.URI,
		MIMEType: "text/plain",
		Text:     b.String(),
	}}, nil
}

func (s *Server) handleTemplateResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := strings.TrimPrefix(request.Params.URI, templatePrefix)
	tpl, err := s.gen.Template(id)
	if err != nil {
		return nil, err
	}
	text, err := yaml.Marshal(doctpl.Describe(tpl, doctpl.Values{}))
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return []mcp.ResourceContents{mcp.TextResourceContents{
		URI:      request.Params.URI,
		MIMEType: "application/yaml",
		Text:     string(text),
	}}, nil
}
