// Package mcp exposes the fridge inventory over the Model Context Protocol:
// two inventory tools, a recipe tool, and the widget UI resource, bound to
// HTTP with the SDK's streamable transport.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"frigo/internal/fridge"
	"frigo/internal/models"
	"frigo/internal/monitoring"
	"frigo/internal/recipes"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "fridge-widget-server"
	serverVersion = "1.0.0"

	widgetResourceURI = "ui://fridge-widget"
)

// Server wires the inventory store, recipe suggester and metrics into an
// MCP server.
type Server struct {
	store      *fridge.Store
	suggester  *recipes.Suggester
	metrics    *monitoring.Collector
	baseURL    string
	onMutation func(models.Fridge)

	mcpServer *mcp.Server
}

// Config carries the server's collaborators. OnMutation, when set, is called
// with a fresh snapshot after every successful mutation (the API layer uses
// it to push updates to connected widgets).
type Config struct {
	Store      *fridge.Store
	Suggester  *recipes.Suggester
	Metrics    *monitoring.Collector
	BaseURL    string
	OnMutation func(models.Fridge)
}

// NewServer builds the MCP server and registers all tools and resources.
func NewServer(cfg Config) *Server {
	s := &Server{
		store:      cfg.Store,
		suggester:  cfg.Suggester,
		metrics:    cfg.Metrics,
		baseURL:    cfg.BaseURL,
		onMutation: cfg.OnMutation,
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "show_fridge",
		Description: "Display the contents of the fridge stored on the server in an interactive widget",
		Meta:        mcp.Meta{"openai/outputTemplate": widgetResourceURI},
	}, s.showFridge)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add_fridge_item",
		Description: "Add a new item to the fridge inventory",
	}, s.addFridgeItem)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "suggest_recipes",
		Description: "Suggest recipes based on what is currently in the fridge, preferring items that expire soon",
	}, s.suggestRecipes)

	srv.AddResource(&mcp.Resource{
		URI:         widgetResourceURI,
		Name:        "Fridge Widget",
		Description: "Interactive widget displaying fridge contents",
		MIMEType:    "text/html+skybridge",
	}, s.readWidgetResource)

	s.mcpServer = srv
	return s
}

// HTTPHandler returns the streamable HTTP handler for the /mcp endpoint.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// ShowFridgeInput is empty: the tool takes no arguments.
type ShowFridgeInput struct{}

// ShowFridgeOutput is the structured payload of show_fridge.
type ShowFridgeOutput struct {
	Fridge models.Fridge `json:"fridge"`
}

func (s *Server) showFridge(ctx context.Context, req *mcp.CallToolRequest, _ ShowFridgeInput) (*mcp.CallToolResult, ShowFridgeOutput, error) {
	snapshot := s.store.Snapshot()
	out := ShowFridgeOutput{Fridge: snapshot}

	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, ShowFridgeOutput{}, fmt.Errorf("marshaling fridge snapshot: %w", err)
	}

	s.metrics.RecordToolCall("show_fridge", "ok")

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(text)},
			&mcp.EmbeddedResource{
				Resource: &mcp.ResourceContents{
					URI:      "ui://widget",
					MIMEType: "text/html",
					Text:     WidgetHTML(s.baseURL),
				},
			},
		},
	}, out, nil
}

// AddFridgeItemInput mirrors the domain validation rules in its schema so
// well-behaved clients reject bad input before it travels; the store
// re-validates regardless.
type AddFridgeItemInput struct {
	Name           string  `json:"name" jsonschema:"Name of the item to add"`
	Category       string  `json:"category" jsonschema:"Category of the item (dairy, meat, seafood, vegetables, fruits, beverages, condiments, leftovers, eggs, bakery, frozen, other)"`
	Quantity       float64 `json:"quantity" jsonschema:"Quantity value (must be positive)"`
	Unit           string  `json:"unit" jsonschema:"Unit of measurement (count, g, kg, ml, l, oz, lb, package, container)"`
	ZoneID         string  `json:"zoneId,omitempty" jsonschema:"Optional zone ID where the item should be stored (defaults based on category)"`
	ExpirationDate string  `json:"expirationDate,omitempty" jsonschema:"ISO 8601 datetime when the item expires (optional)"`
	Notes          string  `json:"notes,omitempty" jsonschema:"Additional notes about the item (optional)"`
	Barcode        string  `json:"barcode,omitempty" jsonschema:"Product barcode (optional)"`
}

// AddFridgeItemOutput is the structured payload of add_fridge_item.
type AddFridgeItemOutput struct {
	Success bool          `json:"success"`
	Item    models.Item   `json:"item"`
	Fridge  models.Fridge `json:"fridge"`
}

func (s *Server) addFridgeItem(ctx context.Context, req *mcp.CallToolRequest, in AddFridgeItemInput) (*mcp.CallToolResult, AddFridgeItemOutput, error) {
	item, zone, err := s.store.AddItem(fridge.AddItemRequest{
		Name:           in.Name,
		Category:       models.ItemCategory(in.Category),
		Quantity:       in.Quantity,
		Unit:           models.QuantityUnit(in.Unit),
		ZoneID:         in.ZoneID,
		ExpirationDate: in.ExpirationDate,
		Notes:          in.Notes,
		Barcode:        in.Barcode,
	})
	if err != nil {
		s.metrics.RecordToolCall("add_fridge_item", "error")
		return errorResult(err), AddFridgeItemOutput{}, nil
	}

	snapshot := s.store.Snapshot()
	s.metrics.RecordToolCall("add_fridge_item", "ok")
	s.metrics.RecordItemAdded(string(item.Category), snapshot.ItemCount())
	if s.onMutation != nil {
		s.onMutation(snapshot)
	}

	out := AddFridgeItemOutput{Success: true, Item: item, Fridge: snapshot}
	text := fmt.Sprintf("Successfully added %q to the fridge. The item has been placed in %s with status: %s.",
		item.Name, zone.Name, item.Status)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, out, nil
}

// SuggestRecipesInput narrows the recipe request.
type SuggestRecipesInput struct {
	Prompt     string `json:"prompt,omitempty" jsonschema:"Optional free-form request, e.g. 'something vegetarian'"`
	MaxRecipes int    `json:"maxRecipes,omitempty" jsonschema:"Maximum number of recipes to suggest (default 3)"`
}

// SuggestRecipesOutput is the structured payload of suggest_recipes.
type SuggestRecipesOutput struct {
	Recipes string `json:"recipes"`
}

func (s *Server) suggestRecipes(ctx context.Context, req *mcp.CallToolRequest, in SuggestRecipesInput) (*mcp.CallToolResult, SuggestRecipesOutput, error) {
	suggestions, err := s.suggester.Suggest(ctx, s.store.Snapshot(), in.Prompt, in.MaxRecipes)
	if err != nil {
		s.metrics.RecordToolCall("suggest_recipes", "error")
		return errorResult(err), SuggestRecipesOutput{}, nil
	}

	s.metrics.RecordToolCall("suggest_recipes", "ok")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: suggestions}},
	}, SuggestRecipesOutput{Recipes: suggestions}, nil
}

func (s *Server) readWidgetResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      widgetResourceURI,
				MIMEType: "text/html+skybridge",
				Text:     WidgetHTML(s.baseURL),
			},
		},
	}, nil
}

// errorResult turns a domain error into a tool-level error result. A
// validation failure names the offending field so the caller can fix it.
func errorResult(err error) *mcp.CallToolResult {
	msg := err.Error()
	if ve, ok := fridge.AsValidationError(err); ok {
		msg = fmt.Sprintf("validation failed on field %q: %s", ve.Field, ve.Reason)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
