// Package workflow はアプリケーションの依存関係を組み立てるビルダー層です。
// 設定から AI クライアント、画像生成コア、各コラボレーターを構築し、
// runner 層へ渡す App としてまとめます。
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"

	"github.com/shouni/go-comic-kit/internal/config"
	comicgemini "github.com/shouni/go-comic-kit/pkg/gemini"
	coregen "github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/prompts"
)

const defaultGeminiTemperature = float32(0.2)

// App は組み立て済みのコラボレーター一式です。
type App struct {
	Scriptwriter coregen.ScriptGenerator
	Painter      coregen.ImageGenerator
	Assistant    *comicgemini.Assistant
}

// Build は設定から App を構築します。
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	aiClient, err := InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	promptBuilder, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	httpClient := httpkit.New(cfg.Options.HTTPTimeout)
	imgGen, err := InitializeImageGenerator(httpClient, aiClient, cfg.GeminiImageModel)
	if err != nil {
		return nil, err
	}

	return &App{
		Scriptwriter: comicgemini.NewScriptwriter(aiClient, promptBuilder, cfg.GeminiModel),
		Painter:      comicgemini.NewPainter(imgGen),
		Assistant:    comicgemini.NewAssistant(aiClient, promptBuilder, cfg.GeminiModel),
	}, nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeImageGenerator は ImageGeneratorを初期化します。
func InitializeImageGenerator(httpClient httpkit.ClientInterface, aiClient gemini.GenerativeModel, model string) (imagekit.ImageGenerator, error) {
	imgCache := cache.New(30*time.Minute, 1*time.Hour)
	cacheTTL := 1 * time.Hour

	// 画像処理コアを生成
	core, err := imagekit.NewGeminiImageCore(
		httpClient,
		imgCache,
		cacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCoreの初期化に失敗したのだ: %w", err)
	}

	imgGen, err := imagekit.NewGeminiGenerator(
		core,
		aiClient,
		model,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return imgGen, nil
}
