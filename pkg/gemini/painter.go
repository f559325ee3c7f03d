package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
)

const (
	// PanelAspectRatio は単体パネル（1コマ）の推奨アスペクト比です。
	PanelAspectRatio = "16:9"

	// NegativePanelPrompt は不自然な描画を防ぐための標準ネガティブセットです。
	NegativePanelPrompt = "deformed faces, mismatched eyes, cross-eyed, low-quality faces, blurry facial features, melting faces, extra limbs, merged panels, messy lineart, distorted anatomy"

	// panelPromptFormat は画風と場面描写を組み合わせたパネル用プロンプトです。
	// 吹き出しや文字はコア側で重ねるため、画像内には含めません。
	panelPromptFormat = "Create a comic book panel image.\nArt Style: %s.\nScene Description: %s.\nEnsure the image has a comic book aesthetic.\nDo not include speech bubbles or text inside the image itself, only the visual art."
)

// Painter は gemini-image-kit を通じて単一パネルの画像を生成します。
// generator.ImageGenerator を実装します。
type Painter struct {
	adapter imagekit.ImageGenerator
}

// NewPainter は画像生成アダプターを注入して初期化します。
func NewPainter(adapter imagekit.ImageGenerator) *Painter {
	return &Painter{adapter: adapter}
}

// GenerateImage は描写プロンプトと画風からパネル画像を生成し、
// data URI 形式の画像参照を返します。ネットワーク障害・ポリシー拒否・
// 空の応答はすべてエラーとして返し、呼び出し側（ライフサイクル
// コントローラー）が該当パネルの status=error に変換します。
func (p *Painter) GenerateImage(ctx context.Context, description, artStyle string) (string, error) {
	req := imagedom.ImageGenerationRequest{
		Prompt:         fmt.Sprintf(panelPromptFormat, artStyle, description),
		NegativePrompt: NegativePanelPrompt,
		AspectRatio:    PanelAspectRatio,
	}

	resp, err := p.adapter.GenerateMangaPanel(ctx, req)
	if err != nil {
		return "", fmt.Errorf("画像生成リクエストに失敗しました: %w", err)
	}
	if resp == nil || len(resp.Data) == 0 {
		return "", fmt.Errorf("応答に画像データが含まれていません")
	}

	mime := resp.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(resp.Data)), nil
}
