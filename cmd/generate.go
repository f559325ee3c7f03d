package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/runner"
	"github.com/shouni/go-comic-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

// generateCmd は、台本生成から画像生成、成果物出力までを一気に実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "原稿からコミックの台本・画像・成果物を一括生成するのだ。",
	Long: `原稿ファイルを解析してコミックの台本（章、パネル、キャプション）を生成し、
各パネルの画像生成、PDFとリソースバンドルの出力までを通しで実行するのだ。`,
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("原稿（--source-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("コミック生成パイプラインを起動するのだ！",
		"source", opts.SourceFile,
		"text_model", cfg.GeminiModel,
		"image_model", cfg.GeminiImageModel,
		"output", opts.OutputDir)

	app, err := workflow.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("依存関係の構築に失敗したのだ: %w", err)
	}

	script, err := runner.NewScriptRunner(cfg, app.Scriptwriter).Run(ctx)
	if err != nil {
		return fmt.Errorf("台本生成中にエラーが発生したのだ: %w", err)
	}

	imageRunner := runner.NewImageRunner(cfg, app.Painter, app.Assistant, app.Assistant)
	script, err = imageRunner.Run(ctx, script)
	if err != nil {
		return fmt.Errorf("画像生成中にエラーが発生したのだ: %w", err)
	}

	scriptPath, err := runner.SaveScript(opts.OutputDir, script)
	if err != nil {
		return err
	}
	slog.Info("台本（JSON）を保存したのだ", "path", scriptPath)

	result, err := runner.NewPublishRunner(cfg).Run(ctx, script)
	if err != nil {
		return fmt.Errorf("成果物の出力中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！",
		"pdf", result.PDFPath,
		"bundle", result.BundlePath)
	return nil
}

// loadConfig は環境変数とフラグをマージした設定を返すのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.Options = opts
	return cfg
}
