package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"kinhdich-rag-be/internal/bootstrap"
	"kinhdich-rag-be/internal/config"
	"kinhdich-rag-be/pkg/database"
	"kinhdich-rag-be/pkg/pipeline/state"

	"github.com/fatih/color"
)

// Diagnostic probe: runs representative queries through the full pipeline
// against the live store and prints what each stage decided. Useful after
// corpus reloads or threshold changes.

type probeCase struct {
	label   string
	query   string
	casting *state.CastingContext
}

var cases = []probeCase{
	{
		label: "entry-specific",
		query: "quẻ Thủy Lôi Truân nói về điều gì?",
	},
	{
		label: "divination with casting",
		query: "tôi được quẻ này, xin lời khuyên về sự nghiệp",
		casting: &state.CastingContext{
			Name:          "Truân",
			Summary:       "Khó khăn ban đầu",
			ChangingLines: []int{3, 6},
		},
	},
	{
		label: "philosophy",
		query: "triết lý âm dương được hiểu như thế nào?",
	},
	{
		label: "vague (semantic or random floor)",
		query: "dạo này mọi thứ thật bấp bênh",
	},
}

func main() {
	color.Cyan("🚀 Oracle pipeline probe\n")

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("DB connection failed: %v", err)
		os.Exit(1)
	}

	container := bootstrap.NewContainer(db, cfg)

	for i, pc := range cases {
		color.Yellow("\n[%d/%d] %s", i+1, len(cases), pc.label)
		fmt.Printf("   query: %s\n", pc.query)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		result, err := container.Pipeline.Execute(ctx, pc.query, pc.casting)
		cancel()

		if err != nil {
			color.Red("   FATAL: %v", err)
			continue
		}

		if result.Success {
			color.Green("   ok  type=%s strategy=%s confidence=%.2f sources=%d",
				result.QueryType, result.Strategy, result.Confidence, len(result.Sources))
		} else {
			color.Red("   unsuccessful (type=%s strategy=%s)", result.QueryType, result.Strategy)
		}

		for _, src := range result.Sources {
			fmt.Printf("   [%d] %s (%s) score=%.3f\n", src.Rank, src.EntryCode, src.ContentType, src.RelevanceScore)
			if src.Rank >= 3 {
				break
			}
		}

		fmt.Printf("   answer: %s\n", preview(result.Answer))

		fmt.Println("   trace:")
		for _, tr := range result.Trace {
			fmt.Printf("     - %s\n", tr)
		}
	}

	color.Cyan("\n📊 Aggregate stage stats")
	for name, st := range container.Pipeline.Stats() {
		fmt.Printf("   %-12s runs=%d failures=%d avg=%.1fms\n", name, st.Runs, st.Failures, st.AvgMillis)
	}
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > 160 {
		return string(runes[:160]) + "..."
	}
	return s
}
