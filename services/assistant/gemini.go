package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const createOrderFunction = "createOrder"

// GeminiClient implements ModelClient against the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a Gemini-backed model client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

// createOrderTool declares the single callable function the model may use
// to commit a booking.
func createOrderTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        createOrderFunction,
			Description: "Creates a new equipment rental order when the user explicitly requests to book or rent specific equipment for a specific duration.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"equipmentName": {
						Type:        genai.TypeString,
						Description: "The name of the equipment to be booked (e.g., 'Tractor with Rotavator', 'Seeder'). Must match one of the equipment names from the available list.",
					},
					"bookingHrs": {
						Type:        genai.TypeNumber,
						Description: "The number of hours the user wants to rent the equipment. Must be greater than 0.",
					},
				},
				Required: []string{"equipmentName", "bookingHrs"},
			},
		}},
	}
}

// RequestIntent sends one utterance with the catalog grounding prompt and
// reduces the response to a function call or free text.
func (g *GeminiClient) RequestIntent(ctx context.Context, systemPrompt, utterance string) (*ModelReply, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.Tools = []*genai.Tool{createOrderTool()}
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(utterance))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			switch p := part.(type) {
			case genai.FunctionCall:
				if p.Name != createOrderFunction {
					continue
				}
				name, _ := p.Args["equipmentName"].(string)
				return &ModelReply{Call: &BookingCall{
					EquipmentName: name,
					BookingHrs:    argHours(p.Args["bookingHrs"]),
				}}, nil
			case genai.Text:
				if string(p) != "" {
					return &ModelReply{Text: string(p)}, nil
				}
			}
		}
	}

	// Neither a function call nor text: the caller treats this as unclear.
	return &ModelReply{}, nil
}

// argHours coerces the bookingHrs argument, which arrives as a JSON number.
func argHours(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
