package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/runner"
	"github.com/shouni/go-comic-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

// scriptCmd は、台本の生成（JSON出力）のみを実行するのだ。
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "台本（JSON）のみを生成して保存するのだ。",
	Long: `原稿を解析してコミックの構成案（タイトル、章、パネル描写、キャプション）を
JSON形式で出力するのだ。画像生成は行わないのだよ。`,
	RunE: scriptCommand,
}

func scriptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("原稿（--source-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("台本生成モードを起動するのだ！",
		"source", opts.SourceFile,
		"text_model", cfg.GeminiModel,
		"output", opts.OutputDir)

	app, err := workflow.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("依存関係の構築に失敗したのだ: %w", err)
	}

	path, err := runner.NewScriptRunner(cfg, app.Scriptwriter).RunAndSave(ctx)
	if err != nil {
		return fmt.Errorf("台本生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("台本（JSON）の生成が完了したのだ！", "output_file", path)
	return nil
}
