package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/domain"
	coregen "github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
)

// maxSourceChars は台本生成プロンプトへ流し込む原稿の上限です。
// 長編がアップロードされてもトークン上限を超えないように切り詰めます。
const maxSourceChars = 5000

// Scriptwriter は Gemini を用いて原稿テキストから台本JSONを生成します。
// generator.ScriptGenerator を実装します。
type Scriptwriter struct {
	aiClient      gemini.GenerativeModel
	promptBuilder prompts.PromptBuilder
	model         string
}

// NewScriptwriter は依存関係を注入して初期化します。
func NewScriptwriter(aiClient gemini.GenerativeModel, pb prompts.PromptBuilder, model string) *Scriptwriter {
	return &Scriptwriter{
		aiClient:      aiClient,
		promptBuilder: pb,
		model:         model,
	}
}

// GenerateScript は原稿から台本を生成します。ページ数は chapterCount、
// キャプションは language、描写プロンプトは常に英語です。
// 利用可能なペイロードが得られない場合は GenerationError を返し、
// 部分的なスクリプトは返しません。
func (w *Scriptwriter) GenerateScript(ctx context.Context, sourceText, theme string, chapterCount int, language string) (domain.Script, error) {
	source := sourceText
	if len(source) > maxSourceChars {
		source = source[:maxSourceChars]
	}

	prompt, err := w.promptBuilder.Build(prompts.ModeScript, prompts.ScriptData{
		SourceText:   source,
		Theme:        theme,
		ChapterCount: chapterCount,
		Language:     language,
	})
	if err != nil {
		return domain.Script{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.Info("Scriptwriter: Calling Gemini API", "model", w.model, "chapters", chapterCount)
	resp, err := w.aiClient.GenerateContent(ctx, prompt, w.model)
	if err != nil {
		return domain.Script{}, &coregen.GenerationError{Reason: "バックエンド呼び出しに失敗しました", Err: err}
	}

	return w.parseScript(resp.Text)
}

// parseScript は AI 応答をパースして構造を検証します。
func (w *Scriptwriter) parseScript(raw string) (domain.Script, error) {
	var script domain.Script
	if err := json.Unmarshal([]byte(extractJSON(raw)), &script); err != nil {
		return domain.Script{}, &coregen.GenerationError{
			Reason: fmt.Sprintf("応答JSONの解析に失敗しました (応答抜粋: %q)", truncateString(raw, 200)),
			Err:    err,
		}
	}

	if script.Title == "" || len(script.Pages) == 0 {
		return domain.Script{}, &coregen.GenerationError{Reason: "応答に利用可能な台本が含まれていません"}
	}
	for _, page := range script.Pages {
		if len(page.Panels) == 0 {
			return domain.Script{}, &coregen.GenerationError{
				Reason: fmt.Sprintf("ページ %d にパネルがありません", page.PageNumber),
			}
		}
	}
	return script, nil
}
