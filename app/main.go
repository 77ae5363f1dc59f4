package main

import (
	"log/slog"
	"os"

	"github.com/lysyi3m/social-pulse/app/cfg"
	"github.com/lysyi3m/social-pulse/app/dataset"
	"github.com/lysyi3m/social-pulse/app/logging"
	"github.com/lysyi3m/social-pulse/app/post"
	"github.com/lysyi3m/social-pulse/app/report"
)

func main() {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	slog.SetDefault(logging.New(os.Stderr, appCfg.LogFormat, appCfg.Debug))
	slog.Debug("Configuration loaded", "version", appCfg.Version, "input", appCfg.InputFile, "output", appCfg.OutputFile)

	if err := run(appCfg); err != nil {
		slog.Error("Transformation failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	profile := post.DefaultProfile()
	if appCfg.ProfileFile != "" {
		var err error
		if profile, err = post.LoadProfile(appCfg.ProfileFile); err != nil {
			return err
		}
		slog.Debug("Profile loaded", "file", appCfg.ProfileFile, "author", profile.Author.Name)
	}

	raws, inputBytes, err := dataset.NewReader().Read(appCfg.InputFile)
	if err != nil {
		return err
	}
	slog.Debug("Dataset loaded", "records", len(raws), "bytes", inputBytes)

	posts := post.NewNormalizer(profile).Run(raws)

	writer := dataset.NewWriter()
	data, err := writer.Encode(posts)
	if err != nil {
		return err
	}
	if err := writer.Write(appCfg.OutputFile, data); err != nil {
		return err
	}

	summary := report.NewSummary(posts, inputBytes, int64(len(data)))
	slog.Info("Transformation completed",
		"records", summary.Records,
		"text", summary.Text,
		"image", summary.Image,
		"video", summary.Video,
		"image_exploit", summary.Exploit)

	return summary.Write(os.Stdout, appCfg.OutputFile)
}
