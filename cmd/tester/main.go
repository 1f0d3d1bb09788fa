package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/estimators"
	"emotion-lab/fusion"
)

type Config struct {
	// TESTER_DEBUG_JSON dumps the full fusion result of each scenario as JSON
	DebugJSON bool `envconfig:"TESTER_DEBUG_JSON" default:"false"`
	// TESTER_COLOURS enables colorized output for better readability
	Colours  bool   `envconfig:"TESTER_COLOURS" default:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"error"`
}

type scenario struct {
	Name string
	Face *domain.ModalityEstimate
	Text string
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)

	engine, err := fusion.NewEngine(logger, fusion.DefaultConfig())
	if err != nil {
		log.Fatal("Engine rejected default config: ", err)
	}
	textEstimator, err := estimators.NewKeywordTextEstimator(logger)
	if err != nil {
		log.Fatal("Text estimator init failed: ", err)
	}

	scenarios := []scenario{
		{Name: "Exact match (happy face, happy words)",
			Face: faceEstimate(domain.Happy, 0.8), Text: "I am so happy and excited today"},
		{Name: "Potential fake (happy face, sad words)",
			Face: faceEstimate(domain.Happy, 0.9), Text: "I feel terrible, everything is awful"},
		{Name: "Moderate compatibility (sad face, neutral words)",
			Face: faceEstimate(domain.Sad, 0.7), Text: "the meeting is at three"},
		{Name: "Face only, confident",
			Face: faceEstimate(domain.Surprise, 0.85)},
		{Name: "Face only, weak",
			Face: faceEstimate(domain.Angry, 0.4)},
		{Name: "Text only (unverified)",
			Text: "I am furious and angry about this"},
		{Name: "No input at all"},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Final", "Confidence", "Authentic", "Compat", "Explanation"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	ctx := context.Background()
	for _, sc := range scenarios {
		in := fusion.Inputs{Face: sc.Face}
		if sc.Text != "" {
			est, err := textEstimator.Predict(ctx, contract.Input{Text: sc.Text})
			if err != nil {
				log.Fatalf("Text estimation failed for %q: %v", sc.Name, err)
			}
			in.Text = &est
		}

		result := engine.Fuse(in)
		table.Append([]string{
			sc.Name,
			string(result.FinalEmotion),
			fmt.Sprintf("%.2f", result.FinalConfidence),
			authenticLabel(result.IsAuthentic, cfg.Colours),
			fmt.Sprintf("%.2f", result.CompatibilityScore),
			result.Explanation,
		})

		if cfg.DebugJSON {
			raw, _ := json.MarshalIndent(result, "", "  ")
			fmt.Printf("--- %s ---\n%s\n", sc.Name, raw)
		}
	}

	fmt.Println()
	table.Render()
	fmt.Println()
}

func authenticLabel(authentic bool, colours bool) string {
	if !colours {
		return fmt.Sprintf("%v", authentic)
	}
	if authentic {
		return color.Green.Sprint("true")
	}
	return color.Red.Sprint("false")
}

func faceEstimate(emotion domain.Emotion, conf float64) *domain.ModalityEstimate {
	probs := map[domain.Emotion]float64{}
	for _, e := range domain.CanonicalOrder {
		probs[e] = (1 - conf) / float64(len(domain.CanonicalOrder)-1)
	}
	probs[emotion] = conf
	return &domain.ModalityEstimate{
		Emotion:       emotion,
		Confidence:    conf,
		Probabilities: probs,
		Modality:      domain.FaceModality,
		At:            time.Now().UTC(),
	}
}
