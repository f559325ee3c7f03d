package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-comic-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全コマンドで共有する実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.SourceFile, "source-file", "f", "", "原稿ファイルのパス（txt/md/docx/pdf）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptFile, "script-file", "s", "", "生成済み台本（JSON）のパスなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物の保存先ディレクトリなのだ。")

	// --- 台本生成の指示 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Theme, "theme", "t", "", "作品全体のテーマ・トーンなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Language, "language", "l", config.DefaultLanguage, "キャプションの言語なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ArtStyle, "art-style", config.DefaultArtStyle, "画像生成に使う画風の指定なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.ChapterCount, "chapters", "c", config.DefaultChapterCount, "生成する章（ページ）数なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成用の Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 画像生成の実行制御 ---
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", config.DefaultRateInterval, "画像生成リクエストの最小間隔なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.Parallel, "parallel", "p", 0, "画像生成の並列数（0以下で逐次実行）なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// export はAIを呼ばないので、APIキーのチェックは不要なのだ。
	if cmd.Name() == "export" {
		return nil
	}

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-comic-go",
		addAppFlags,
		preRunAppE,
		generateCmd,
		scriptCmd,
		imageCmd,
		exportCmd,
	)
}
