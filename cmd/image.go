package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/runner"
	"github.com/shouni/go-comic-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

// imageCmd は、生成済みの台本JSONを読み込んで画像生成だけを実行するのだ。
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "保存済みの台本から未生成パネルの画像を生成するのだ。",
	Long: `scriptコマンドで出力した台本JSONを読み込み、画像を持たないパネルの
画像生成を実行するのだ。失敗したパネルは error 状態のまま残り、
再実行すればそのパネルだけが再生成対象になるのだよ。`,
	RunE: imageCommand,
}

func imageCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ScriptFile == "" {
		return fmt.Errorf("台本（--script-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	script, err := runner.LoadScript(opts.ScriptFile)
	if err != nil {
		return err
	}

	slog.Info("画像生成モードを起動するのだ！",
		"script", opts.ScriptFile,
		"image_model", cfg.GeminiImageModel,
		"panels", script.PanelCount())

	app, err := workflow.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("依存関係の構築に失敗したのだ: %w", err)
	}

	imageRunner := runner.NewImageRunner(cfg, app.Painter, app.Assistant, app.Assistant)
	path, err := imageRunner.RunAndSave(ctx, script)
	if err != nil {
		return fmt.Errorf("画像生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("画像生成が完了したのだ！", "output_file", path)
	return nil
}
