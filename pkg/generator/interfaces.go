package generator

import (
	"context"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ScriptGenerator は原稿テキストから構造化された台本を生成する
// コラボレーターです。失敗はリクエスト全体に対して致命的であり、
// 部分的なスクリプトは保持されません。
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, sourceText, theme string, chapterCount int, language string) (domain.Script, error)
}

// ImageGenerator は単一パネルの画像を生成するコラボレーターです。
// 戻り値は画像参照（data URI）です。失敗は該当パネルのみに波及します。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, description, artStyle string) (string, error)
}
