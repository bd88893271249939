package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateStoreTool defines the generate_store MCP tool.
var generateStoreTool = mcp.NewTool("generate_store",
	mcp.WithDescription("Generate a complete Arabic RTL storefront page from a template. Starts a new editing session and returns the HTML."),
	mcp.WithString("store_name",
		mcp.Required(),
		mcp.Description("The store's display name (Arabic welcome headline uses it)"),
	),
	mcp.WithString("template_id",
		mcp.Description("Template id from list_templates (default simple-shop)"),
	),
)

// editStoreTool defines the edit_store MCP tool.
var editStoreTool = mcp.NewTool("edit_store",
	mcp.WithDescription("Apply a natural-language edit (Arabic or English) to the current store page. Uses the AI assistant when configured, otherwise the built-in color rules."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The edit request, e.g. 'خلي الألوان ذهبية' or 'make it dark'"),
	),
)

// undoEditTool defines the undo_edit MCP tool.
var undoEditTool = mcp.NewTool("undo_edit",
	mcp.WithDescription("Undo the last edit to the current store page and return the previous version."),
)

// redoEditTool defines the redo_edit MCP tool.
var redoEditTool = mcp.NewTool("redo_edit",
	mcp.WithDescription("Redo an undone edit to the current store page."),
)

// listTemplatesTool defines the list_templates MCP tool.
var listTemplatesTool = mcp.NewTool("list_templates",
	mcp.WithDescription("List the curated store templates with their ids, categories, and store types."),
	mcp.WithString("category",
		mcp.Description("Arabic category name to filter by (default all)"),
	),
)

// searchTemplatesTool defines the search_templates MCP tool.
var searchTemplatesTool = mcp.NewTool("search_templates",
	mcp.WithDescription("Find templates matching a free-text description of the store."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Description of the store, e.g. 'متجر مجوهرات فاخر'"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results (default 5)"),
	),
)
