package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/projectdiscovery/gologger"
	"gopkg.in/yaml.v3"

	colprofile "github.com/colprofile/core"
	"github.com/colprofile/core/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	values := make([]string, 0, len(cliOpts.Values))
	for _, v := range cliOpts.Values {
		if strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}

	p, err := colprofile.Profile(values, cliOpts.Profile)
	if err != nil {
		gologger.Fatal().Msgf("failed to profile input: %v", err)
	}

	exported := colprofile.Export(p)

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if err := writeExport(output, exported, cliOpts.Format); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}

	printSummary(exported)
}

func printSummary(exported colprofile.ExportedProfile) {
	patternCount := color.New(color.FgGreen).Sprintf("%d pattern(s)", exported.Stats.PatternCount)
	anomalyColor := color.FgGreen
	if exported.Stats.AnomalyCount > 0 {
		anomalyColor = color.FgRed
	}
	anomalyCount := color.New(anomalyColor).Sprintf("%d anomal(y/ies)", exported.Stats.AnomalyCount)
	coverage := color.New(color.FgCyan).Sprintf("%.2f%% total coverage", exported.Stats.TotalCoverage*100)

	gologger.Info().Msgf("%s, %s, %s", patternCount, anomalyCount, coverage)
}

func writeExport(w io.Writer, exported colprofile.ExportedProfile, format string) error {
	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exported)
	}
	bin, err := yaml.Marshal(exported)
	if err != nil {
		return err
	}
	_, err = w.Write(bin)
	return err
}

func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
