package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = 10 * time.Second
	DefaultChapterCount = 3
	DefaultLanguage     = "English"
	DefaultArtStyle     = "vibrant american comic book style, bold lines, dynamic shading"
	DefaultOutputDir    = "output"
	DefaultScriptName   = "comic_script.json"
	DefaultBundleName   = "comic_bundle.zip"
	DefaultPDFName      = "comic.pdf"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	SourceFile string // --source-file: 原稿（txt/md/docx/pdf）
	ScriptFile string // --script-file: 生成済みスクリプト（JSON）
	OutputDir  string // --output-dir

	// スクリプト生成の指示
	Theme        string // --theme
	Language     string // --language
	ArtStyle     string // --art-style
	ChapterCount int    // --chapters

	// AI挙動設定
	AIModel    string // --model: テキスト生成用のGeminiモデル
	ImageModel string // --image-model: 画像生成用のGeminiモデル

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	RateInterval time.Duration // --rate-interval: 画像生成のレート間隔
	Parallel     int           // --parallel: 画像生成の並列数（0以下で逐次）
}
