package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Advisor is one chat session with the model, equipped with the book
// functions as tools.
type Advisor struct {
	Config  *genai.GenerateContentConfig
	Library Library
	chat    *genai.Chat
}

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends the parts and resolves any function calls the model makes,
// looping until the model produces a plain answer.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from advisor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if a.Library == nil {
			return nil, fmt.Errorf("advisor has no functions to call")
		}
		fresp := a.Library(ctx, part0.FunctionCall)
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}
