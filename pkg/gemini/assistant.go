package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
)

// Assistant は編集セッション向けのベストエフォートなテキスト補助です。
// editor.DescriptionRefiner と editor.PanelSuggester を実装します。
// ここでのエラーは呼び出し側でフォールバックに変換されるため、
// ユーザーへのエラーとしては決して表面化しません。
type Assistant struct {
	aiClient      gemini.GenerativeModel
	promptBuilder prompts.PromptBuilder
	model         string
}

// NewAssistant は依存関係を注入して初期化します。
func NewAssistant(aiClient gemini.GenerativeModel, pb prompts.PromptBuilder, model string) *Assistant {
	return &Assistant{
		aiClient:      aiClient,
		promptBuilder: pb,
		model:         model,
	}
}

// Refine は新しいキャプションに合わせて描写プロンプトを書き直します。
func (a *Assistant) Refine(ctx context.Context, caption, currentDescription, artStyle string) (string, error) {
	prompt, err := a.promptBuilder.Build(prompts.ModeRefine, prompts.RefineData{
		Caption:            caption,
		CurrentDescription: currentDescription,
		ArtStyle:           artStyle,
	})
	if err != nil {
		return "", fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	resp, err := a.aiClient.GenerateContent(ctx, prompt, a.model)
	if err != nil {
		return "", fmt.Errorf("描写の再計算に失敗しました: %w", err)
	}

	revised := strings.TrimSpace(resp.Text)
	if revised == "" {
		return "", fmt.Errorf("応答が空でした")
	}
	return revised, nil
}

// Suggest は隣接パネルと章の文脈から、新規パネルの内容を提案します。
func (a *Assistant) Suggest(ctx context.Context, artStyle, chapterContext string, prev, next *domain.PanelSeed) (domain.PanelSeed, error) {
	prompt, err := a.promptBuilder.Build(prompts.ModeSuggest, prompts.SuggestData{
		ArtStyle:       artStyle,
		ChapterContext: chapterContext,
		Prev:           prev,
		Next:           next,
	})
	if err != nil {
		return domain.PanelSeed{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	resp, err := a.aiClient.GenerateContent(ctx, prompt, a.model)
	if err != nil {
		return domain.PanelSeed{}, fmt.Errorf("パネル提案に失敗しました: %w", err)
	}

	var seed domain.PanelSeed
	if err := json.Unmarshal([]byte(extractJSON(resp.Text)), &seed); err != nil {
		return domain.PanelSeed{}, fmt.Errorf("提案JSONの解析に失敗しました (応答抜粋: %q): %w",
			truncateString(resp.Text, 200), err)
	}
	if seed.Description == "" {
		return domain.PanelSeed{}, fmt.Errorf("提案に描写が含まれていません")
	}
	return seed, nil
}
