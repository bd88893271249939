package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/session"
)

// handleGenerateStore seeds a new builder session and returns its page.
func (s *Server) handleGenerateStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	storeName, err := request.RequireString("store_name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: store_name"), nil
	}
	templateID := request.GetString("template_id", "")

	s.session = session.New(templateID, storeName, s.engine)

	tmpl := s.session.Template()
	header := fmt.Sprintf("Generated %q from template %s (%s).\n\n", storeName, tmpl.ID, tmpl.Name)
	return mcp.NewToolResultText(header + s.session.Current()), nil
}

// handleEditStore applies a chat edit to the active session.
func (s *Server) handleEditStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}
	if s.session == nil {
		return mcp.NewToolResultError("no active store. Call generate_store first."), nil
	}

	res, err := s.session.ApplyIntent(ctx, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("edit failed: %v", err)), nil
	}

	return mcp.NewToolResultText(res.Message + "\n\n" + res.HTML), nil
}

// handleUndoEdit steps the session history back.
func (s *Server) handleUndoEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.session == nil {
		return mcp.NewToolResultError("no active store. Call generate_store first."), nil
	}
	doc, err := s.session.Undo()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc), nil
}

// handleRedoEdit steps the session history forward.
func (s *Server) handleRedoEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.session == nil {
		return mcp.NewToolResultError("no active store. Call generate_store first."), nil
	}
	doc, err := s.session.Redo()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc), nil
}

// handleListTemplates lists the catalog, optionally by category.
func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", catalog.AllCategory)
	templates := catalog.ByCategory(category)
	if len(templates) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No templates in category %q. Categories: %s",
			category, strings.Join(catalog.Categories(), ", "))), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d template(s):\n", len(templates)))
	for _, t := range templates {
		sb.WriteString(fmt.Sprintf("\n- %s (%s)\n  Category: %s | Store type: %s | Style: %s\n  %s\n",
			t.ID, t.Name, t.Category, t.StoreType, t.Theme.Style, t.Description))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchTemplates runs template search over the catalog index.
func (s *Server) handleSearchTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if s.searcher == nil {
		return mcp.NewToolResultError("template search is not configured"), nil
	}

	limit := request.GetInt("limit", 5)
	matches, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(matches) == 0 {
		return mcp.NewToolResultText("No matching templates. Try list_templates for the full catalog."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d match(es):\n", len(matches)))
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("\n--- Match %d ---\nID: %s\nName: %s\nCategory: %s\nSimilarity: %.1f%%\n%s\n",
			i+1, m.Template.ID, m.Template.Name, m.Template.Category, m.Similarity*100, m.Template.Description))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
