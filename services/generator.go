package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// AnswerGenerator produces an answer from a question and a retrieved-context
// string. Implementations never return an error: a failed model call yields
// an error message inside the answer itself, so the request always succeeds.
type AnswerGenerator interface {
	Generate(ctx context.Context, question, contextText string) string
}

const answerPromptTemplate = `Use the following context to answer the question. If the answer is not contained in the context, say that you don't know.

Context:
%s

Question: %s

Answer:`

// GeminiGenerator answers questions with a single generative-model call.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGenerator{client: client, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, question, contextText string) string {
	prompt := fmt.Sprintf(answerPromptTemplate, contextText, question)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("QUERY: generation failed: %v", err)
		return fmt.Sprintf("Error generating answer: %v", err)
	}

	text := result.Text()
	if text == "" {
		return "I'm sorry, I couldn't generate a response."
	}
	return text
}
