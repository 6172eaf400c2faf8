package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
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

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small vehicle rental office. He is here primarily to ask about the
			cash income of his vehicles and the traffic fines he has to track.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Amounts are in euro.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewBookkeeper returns the expert in charge of the income book persisted
// under dataDir.
func NewBookkeeper(dataDir string) *Expert {
	lib := []Function{incomeSummary(dataDir), incomeList(dataDir)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the office's income book:
		the vehicles and the cash income recorded against them. Ask him for totals per vehicle,
		totals per category, or the raw income records of a month.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of a small vehicle rental office. You know the income book:
				every vehicle and every cash income recorded against it. Use the available tools to
				read the book, never invent figures. Categories are derived from the income notes:
				Noleggio (rental), Vendita (sale), Servizio (service), Carburante (fuel), Altro.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewClerk returns the expert in charge of the fine register persisted
// under dataDir.
func NewClerk(dataDir string) *Expert {
	lib := []Function{fineList(dataDir)}

	return &Expert{
		Name: "Clerk",
		Description: `This is the Clerk. He keeps the traffic fine register: which driver
		(by fiscal code) got which fine, for what amount, and whether it was paid.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the clerk keeping the traffic fine register of a small vehicle rental
				office. Use the available tools to read the register, never invent figures.
				Fines are attached to a driver's 16-character Italian fiscal code.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// parseMonth reads the optional "month" argument. Absent means all months.
func parseMonth(args map[string]any) (fleetbook.Month, error) {
	imonth, ok := args["month"]
	if !ok {
		return fleetbook.Month{}, nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return fleetbook.Month{}, fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}
	if smonth == "" {
		return fleetbook.Month{}, nil
	}
	return fleetbook.ParseMonth(smonth)
}

var monthSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: `The reporting month in "YYYY-MM" format. Omit it to report on all months.`,
}

func incomeSummary(dataDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "IncomeSummary",
			Description: `IncomeSummary reports the income total of every vehicle and the income
			total per category (Noleggio, Vendita, Servizio, Carburante, Altro) for a month.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables of the per-vehicle and per-category income totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, err := parseMonth(args)
			if err != nil {
				return errorResponse(id, "IncomeSummary", err)
			}
			book, err := fleetbook.LoadBook(dataDir)
			if err != nil {
				return errorResponse(id, "IncomeSummary", fmt.Errorf("could not load income book: %w", err))
			}
			out := renderer.SummaryMarkdown(book.NewSummary(month)) + "\n" +
				renderer.BreakdownMarkdown(book.NewBreakdown(month))
			return okResponse(id, "IncomeSummary", out)
		},
	}
}

func incomeList(dataDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "IncomeList",
			Description: `IncomeList lists the raw income records of a month, with date, vehicle, amount and note.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the income records.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, err := parseMonth(args)
			if err != nil {
				return errorResponse(id, "IncomeList", err)
			}
			book, err := fleetbook.LoadBook(dataDir)
			if err != nil {
				return errorResponse(id, "IncomeList", fmt.Errorf("could not load income book: %w", err))
			}
			return okResponse(id, "IncomeList", renderer.IncomesMarkdown(book, month))
		},
	}
}

func fineList(dataDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "FineList",
			Description: `FineList lists the traffic fines, most recent first, with the paid and
			outstanding totals. It can filter by a fragment of the driver's fiscal code.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fiscal_code": {
						Type:        genai.TypeString,
						Description: "A fragment of the driver's fiscal code to filter by. Omit it to list every fine.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the fines with the paid and outstanding totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cf := ""
			if icf, ok := args["fiscal_code"]; ok {
				scf, ok := icf.(string)
				if !ok {
					return errorResponse(id, "FineList", fmt.Errorf("argument 'fiscal_code' is not a string as expected but %T", icf))
				}
				cf = scf
			}
			fines, err := fleetbook.LoadFines(dataDir)
			if err != nil {
				return errorResponse(id, "FineList", fmt.Errorf("could not load fine register: %w", err))
			}
			return okResponse(id, "FineList", renderer.FinesMarkdown(fines, cf))
		},
	}
}
