// Command ask is the console surface of the hotel concierge: it processes
// one or more queries end to end and prints each tool result and the model's
// final answer. With no arguments it runs the built-in demo queries.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dileep-u-k/hotel-concierge/internal/agent"
	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
	"github.com/dileep-u-k/hotel-concierge/internal/llm"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"

	"github.com/joho/godotenv"
)

var demoQueries = []string{
	"What hotels are available in Tokyo under $300 per night?",
	"Show me details for The Savoy hotel in London and calculate the cost for 5 nights",
	"What are all the available booking locations?",
	"Find me a luxury hotel in Dubai with spa facilities",
}

func main() {
	log.SetFlags(log.LstdFlags)

	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: No .env file found, relying on system environment variables.")
	}

	modelID := os.Getenv("MODEL_ID")
	if modelID == "" {
		modelID = "gpt-4o"
	}

	client, err := buildClient(modelID)
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}

	hotelCatalog := catalog.Default()
	toolManager := tools.NewToolManager()
	toolManager.Register(tools.NewSearchTool(hotelCatalog))
	toolManager.Register(tools.NewDetailsTool(hotelCatalog))
	toolManager.Register(tools.NewCostTool())
	toolManager.Register(tools.NewLocationsTool(hotelCatalog))

	processor := agent.NewProcessor(client, toolManager, &llm.GenerationConfig{Model: modelID})

	queries := os.Args[1:]
	if len(queries) == 0 {
		queries = demoQueries
	}

	fmt.Println("Hotel Booking LLM System")
	fmt.Println(strings.Repeat("=", 50))

	for i, query := range queries {
		fmt.Printf("\nQuery %d: %s\n", i+1, query)
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println(processor.ProcessText(context.Background(), query))
		fmt.Println(strings.Repeat("=", 50))
	}
}

// buildClient selects the provider by model prefix and fails fast when the
// matching credential is absent.
func buildClient(modelID string) (llm.LLMClient, error) {
	switch {
	case strings.HasPrefix(modelID, "gpt"):
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return llm.NewOpenAIClient(apiKey)
	case strings.HasPrefix(modelID, "gemini"):
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		return llm.NewGeminiClient(apiKey, modelID)
	default:
		return nil, fmt.Errorf("unknown model provider for %s", modelID)
	}
}
