package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/stockpilot-ai/stockpilot"
	"github.com/stockpilot-ai/stockpilot/marketdata"
)

const systemPrompt = "You are a helpful financial assistant. Use the available tools to look up live market data when a question needs it. Answer briefly and include the retrieved price in your answer. If a price can not be retrieved, say so plainly instead of guessing."

func main() {
	model := flag.String("model", "", "Model name (defaults to STOCKPILOT_MODEL or "+stockpilot.DefaultModel+")")
	timeout := flag.Duration("timeout", 60*time.Second, "Overall deadline for answering the question")
	verbose := flag.Bool("v", false, "Print the tool-call transcript")
	flag.Parse()

	question := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "Usage: stockpilot [flags] <question>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := stockpilot.LoadConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("Configuration error: %v (set OPENAI_API_KEY)", err)
	}
	if *model != "" {
		config.Model = *model
	}

	llm := stockpilot.NewLLM(config.OpenAIAPIKey, config.OpenAIBaseURL)
	provider := marketdata.NewYahooClient()
	agent := stockpilot.NewAgent(systemPrompt, []stockpilot.Tool{
		stockpilot.NewStockPriceTool(provider),
	})
	agent.SetMaxSteps(config.MaxSteps)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	transcript, err := agent.Ask(ctx, llm, config.Model, question)
	if err != nil {
		log.Fatalf("Failed to answer question: %v", err)
	}

	if *verbose {
		for i, step := range transcript.Steps {
			fmt.Fprintf(os.Stderr, "[%d] %s(%s) -> %s\n", i+1, step.Tool, step.Input, step.Observation)
		}
	}
	fmt.Println(transcript.FinalAnswer)
}
