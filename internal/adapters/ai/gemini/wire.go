package gemini

import (
	"fmt"
	"strings"

	"medisafe-companion/internal/ports/ai"
)

// Formato JSON de generateContent (v1beta).

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []toolSet `json:"tools,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text         string        `json:"text,omitempty"`
	InlineData   *inlineData   `json:"inlineData,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type functionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type toolSet struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type functionDeclaration struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  schema `json:"parameters"`
}

type schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Properties  map[string]schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func buildRequest(req ai.Request) generateRequest {
	parts := make([]part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.InlineData != nil {
			parts = append(parts, part{InlineData: &inlineData{
				MIMEType: p.InlineData.MIMEType,
				Data:     p.InlineData.Data,
			}})
			continue
		}
		parts = append(parts, part{Text: p.Text})
	}

	out := generateRequest{Contents: []content{{Role: "user", Parts: parts}}}
	if len(req.Tools) == 0 {
		return out
	}

	decls := make([]functionDeclaration, 0, len(req.Tools))
	for _, t := range req.Tools {
		params := schema{Type: "OBJECT", Properties: map[string]schema{}}
		for _, p := range t.Params {
			params.Properties[p.Name] = schema{
				Type:        "STRING",
				Description: p.Description,
				Enum:        p.Enum,
			}
			if p.Required {
				params.Required = append(params.Required, p.Name)
			}
		}
		decls = append(decls, functionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		})
	}
	out.Tools = []toolSet{{FunctionDeclarations: decls}}
	return out
}

func (c candidate) toResponse() ai.Response {
	var (
		resp  ai.Response
		texts []string
	)
	for _, p := range c.Content.Parts {
		if p.FunctionCall != nil {
			args := make(map[string]string, len(p.FunctionCall.Args))
			for k, v := range p.FunctionCall.Args {
				args[k] = fmt.Sprint(v)
			}
			resp.Calls = append(resp.Calls, ai.FunctionCall{Name: p.FunctionCall.Name, Args: args})
			continue
		}
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	resp.Text = strings.TrimSpace(strings.Join(texts, ""))
	return resp
}
