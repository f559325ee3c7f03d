package generator

import "fmt"

// GenerationError は台本生成の致命的な失敗です。バックエンドが利用可能な
// ペイロードを返さなかった、あるいは構造が不正だった場合に返されます。
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("script generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("script generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ImageGenerationError は単一パネルの画像生成失敗です。
// 該当パネルを status=error にするだけで、他パネルの処理は継続されます。
type ImageGenerationError struct {
	PanelID string
	Err     error
}

func (e *ImageGenerationError) Error() string {
	return fmt.Sprintf("image generation failed for panel %s: %v", e.PanelID, e.Err)
}

func (e *ImageGenerationError) Unwrap() error { return e.Err }
