// Package publisher は完成したスクリプトの成果物化（リソースパック、
// ZIPバンドル、PDF）を担います。コアのデータを消費するだけで、
// スクリプト自体の変更は行いません。
package publisher

import (
	"fmt"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ResourcePack はエクスポート用のJSON構造です。フィールドは
// 外部消費者との契約であり、コアのデータをそのまま公開します。
type ResourcePack struct {
	Title    string    `json:"title"`
	Metadata Metadata  `json:"metadata"`
	Chapters []Chapter `json:"chapters"`
}

// Metadata はスクリプトレベルのエクスポートメタデータです。
type Metadata struct {
	ArtStyle     string `json:"artStyle"`
	ThemeAndTone string `json:"themeAndTone"`
	Language     string `json:"language"`
	Date         string `json:"date"`
}

// Chapter は1ページ（= 1章）分のエクスポート情報です。
type Chapter struct {
	ChapterNumber int         `json:"chapterNumber"`
	Title         string      `json:"title"`
	Panels        []PackPanel `json:"panels"`
}

// PackPanel は1パネル分のエクスポート情報です。
type PackPanel struct {
	Index         int    `json:"index"`
	Caption       string `json:"caption"`
	VisualPrompt  string `json:"visualPrompt"`
	ImageFileName string `json:"imageFileName"`
}

// ImageFileName はバンドル内の画像ファイル名を返します。
// ページ番号とパネル序数による安定した命名です。
func ImageFileName(pageNumber, ordinal int, mimeType string) string {
	return fmt.Sprintf("page_%d_panel_%d.%s", pageNumber, ordinal+1, extensionFor(mimeType))
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}

// BuildResourcePack はスクリプトからエクスポート用構造を組み立てます。
// 画像を持たないパネルの ImageFileName は空のままにします。
func BuildResourcePack(script domain.Script, artStyle, language string, date time.Time) ResourcePack {
	pack := ResourcePack{
		Title: script.Title,
		Metadata: Metadata{
			ArtStyle:     artStyle,
			ThemeAndTone: script.Theme,
			Language:     language,
			Date:         date.Format("2006-01-02"),
		},
	}

	for _, page := range script.Pages {
		title := page.ChapterTitle
		if title == "" {
			title = fmt.Sprintf("Chapter %d", page.PageNumber)
		}
		chapter := Chapter{
			ChapterNumber: page.PageNumber,
			Title:         title,
		}
		for j, panel := range page.Panels {
			pp := PackPanel{
				Index:        j + 1,
				Caption:      panel.Caption,
				VisualPrompt: panel.Description,
			}
			if panel.HasImage() {
				mime, _, err := DecodeImageRef(panel.ImageRef)
				if err == nil {
					pp.ImageFileName = ImageFileName(page.PageNumber, j, mime)
				}
			}
			chapter.Panels = append(chapter.Panels, pp)
		}
		pack.Chapters = append(pack.Chapters, chapter)
	}
	return pack
}
