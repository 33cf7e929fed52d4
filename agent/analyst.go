package agent

import (
	"context"
	"fmt"

	"github.com/zkcross/launchpad"
	"github.com/zkcross/launchpad/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user is here primarily to understand token offerings on the launchpad:
			which sales are open, how oversubscription affects their allocation, and
			the current state of their own positions.

			Devise a plan of questions for the experts and come up with the best
			response to the user's request. Check the launchpad state first instead
			of asking the user for figures the Analyst can read directly.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert that grounds answers in public
// information through search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher, well aware of token launches,
		crypto projects and the institutions behind them.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher. You can search and find anything related to
			token projects, markets and launches. You leverage Google Search to
			ground your assertions, and you know how to relate the latest news to
			the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert that reads the launchpad state. Its
// tools are strictly read-only: they render the current snapshot and
// never send commands.
func NewAnalyst(source func() launchpad.Snapshot) *Expert {
	lib := []Function{boardFunc(source), offeringFunc(source), portfolioFunc(source)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the launchpad's synchronized state:
		the offerings board, individual offering terms with allocation previews,
		and the user's portfolio of positions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's view of the launchpad.
				You know how to use the Tools to extract relevant information:
				  - the offerings board
				  - one offering's terms and allocation preview
				  - the user's portfolio and transaction history
				Amounts are in USDT units, times are in 5-second rollup ticks.
				You never execute transactions; you only read and explain.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func boardFunc(source func() launchpad.Snapshot) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Board",
			Description: "Board lists every offering on the launchpad with its status, raise progress and investor count.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all offerings.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snap := source()
			return success(id, "Board", renderer.BoardMarkdown(&snap))
		},
	}
}

func offeringFunc(source func() launchpad.Snapshot) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Offering",
			Description: `Offering shows one offering's full terms: target, supply,
			token price, individual cap and sale window. An optional investment
			amount adds an allocation preview for that stake.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id": {
						Type:        genai.TypeString,
						Description: "The offering id as shown on the board.",
					},
					"investment": {
						Type:        genai.TypeString,
						Description: "Optional investment amount in USDT units to preview an allocation for.",
					},
				},
				Required: []string{"id"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted offering detail report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			offeringID, ok := args["id"].(string)
			if !ok {
				return failure(id, "Offering", fmt.Errorf("argument 'id' is not a string but %T", args["id"]))
			}
			snap := source()
			off, ok := snap.Offering(offeringID)
			if !ok {
				return failure(id, "Offering", fmt.Errorf("no offering %q on the board", offeringID))
			}
			var investment launchpad.Amount
			if raw, has := args["investment"]; has {
				s, ok := raw.(string)
				if !ok {
					return failure(id, "Offering", fmt.Errorf("argument 'investment' is not a string but %T", raw))
				}
				var err error
				if investment, err = launchpad.ParseAmount(s); err != nil {
					return failure(id, "Offering", fmt.Errorf("argument 'investment': %w", err))
				}
			}
			return success(id, "Offering", renderer.RenderOffering(renderer.NewOfferingView(off, investment)))
		},
	}
}

func portfolioFunc(source func() launchpad.Snapshot) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Portfolio",
			Description: `Portfolio shows the user's balance, positions with their
			projected allocations, and the merged transaction history.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted portfolio report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snap := source()
			return success(id, "Portfolio", renderer.PortfolioMarkdown(&snap))
		},
	}
}
