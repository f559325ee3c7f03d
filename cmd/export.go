package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/runner"

	"github.com/spf13/cobra"
)

// exportCmd は、生成済みの台本JSONからPDFとリソースバンドルを書き出すのだ。
// AIは呼ばないので、APIキーがなくても動くのだよ。
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "保存済みの台本からPDFとリソースバンドルを書き出すのだ。",
	Long: `台本JSONを読み込み、A4のPDFと、comic.json + 画像を同梱した
ZIPリソースバンドルを出力ディレクトリへ保存するのだ。
画像が未生成のパネルは枠と描写プロンプトのプレースホルダーになるのだよ。`,
	RunE: exportCommand,
}

func exportCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ScriptFile == "" {
		return fmt.Errorf("台本（--script-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	script, err := runner.LoadScript(opts.ScriptFile)
	if err != nil {
		return err
	}

	slog.Info("エクスポートモードを起動するのだ！",
		"script", opts.ScriptFile,
		"title", script.Title,
		"output", opts.OutputDir)

	result, err := runner.NewPublishRunner(cfg).Run(ctx, script)
	if err != nil {
		return fmt.Errorf("成果物の出力中にエラーが発生したのだ: %w", err)
	}

	slog.Info("エクスポートが完了したのだ！",
		"pdf", result.PDFPath,
		"bundle", result.BundlePath)
	return nil
}
