package publisher

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

func dataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func exportScript() domain.Script {
	return domain.Script{
		Title: "Export Test",
		Theme: "noir mystery",
		Pages: []domain.Page{
			{
				PageNumber:   1,
				ChapterTitle: "The Case",
				Layout:       domain.LayoutDynamic,
				Panels: []domain.Panel{
					{
						ID:          "p1-0",
						Description: "a detective in the rain",
						Caption:     "雨の夜だった",
						Status:      domain.StatusComplete,
						ImageRef:    dataURI("image/png", []byte("png-bytes")),
					},
					{
						ID:          "p1-1",
						Description: "a shadow in the alley",
						Caption:     "誰だ？",
						Status:      domain.StatusError,
					},
				},
			},
			{
				PageNumber: 2,
				Layout:     domain.LayoutDynamic,
				Panels: []domain.Panel{
					{
						ID:          "p2-0",
						Description: "the chase begins",
						Caption:     "追え！",
						Status:      domain.StatusComplete,
						ImageRef:    dataURI("image/jpeg", []byte("jpeg-bytes")),
					},
				},
			},
		},
	}
}

func TestDecodeImageRef(t *testing.T) {
	t.Run("MIMEとデータが復元されること", func(t *testing.T) {
		mime, data, err := DecodeImageRef(dataURI("image/png", []byte("hello")))
		if err != nil {
			t.Fatalf("デコードに失敗しました: %v", err)
		}
		if mime != "image/png" || string(data) != "hello" {
			t.Errorf("期待値 (image/png, hello), 実際の値 (%s, %s)", mime, data)
		}
	})

	failures := []struct {
		name string
		ref  string
	}{
		{"data URI でない", "https://example.com/x.png"},
		{"base64 マーカーなし", "data:image/png,rawdata"},
		{"不正な base64", "data:image/png;base64,!!!"},
	}
	for _, c := range failures {
		t.Run(c.name+"はエラーになること", func(t *testing.T) {
			if _, _, err := DecodeImageRef(c.ref); err == nil {
				t.Error("エラーが返りませんでした")
			}
		})
	}
}

func TestImageFileName(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", "page_1_panel_2.png"},
		{"image/jpeg", "page_1_panel_2.jpg"},
		{"image/webp", "page_1_panel_2.webp"},
		{"image/unknown", "page_1_panel_2.png"},
	}
	for _, c := range cases {
		if got := ImageFileName(1, 1, c.mime); got != c.want {
			t.Errorf("%s: 期待値 %s, 実際の値 %s", c.mime, c.want, got)
		}
	}
}

func TestBuildResourcePack(t *testing.T) {
	date := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	pack := BuildResourcePack(exportScript(), "noir style", "Japanese", date)

	t.Run("メタデータが設定されること", func(t *testing.T) {
		md := pack.Metadata
		if md.ArtStyle != "noir style" || md.ThemeAndTone != "noir mystery" ||
			md.Language != "Japanese" || md.Date != "2026-08-28" {
			t.Errorf("メタデータが想定と異なります: %+v", md)
		}
	})

	t.Run("章とパネルの構造が保たれること", func(t *testing.T) {
		if len(pack.Chapters) != 2 {
			t.Fatalf("章数の期待値 2, 実際の値 %d", len(pack.Chapters))
		}
		ch := pack.Chapters[0]
		if ch.ChapterNumber != 1 || ch.Title != "The Case" || len(ch.Panels) != 2 {
			t.Errorf("章の内容が想定と異なります: %+v", ch)
		}
		p := ch.Panels[0]
		if p.Index != 1 || p.Caption != "雨の夜だった" || p.VisualPrompt != "a detective in the rain" {
			t.Errorf("パネルの内容が想定と異なります: %+v", p)
		}
	})

	t.Run("章タイトルがない場合は番号で補われること", func(t *testing.T) {
		if got := pack.Chapters[1].Title; got != "Chapter 2" {
			t.Errorf("期待値 'Chapter 2', 実際の値 '%s'", got)
		}
	})

	t.Run("画像の有無で imageFileName が切り替わること", func(t *testing.T) {
		if got := pack.Chapters[0].Panels[0].ImageFileName; got != "page_1_panel_1.png" {
			t.Errorf("期待値 'page_1_panel_1.png', 実際の値 '%s'", got)
		}
		if got := pack.Chapters[0].Panels[1].ImageFileName; got != "" {
			t.Errorf("未生成パネルの期待値 '', 実際の値 '%s'", got)
		}
		if got := pack.Chapters[1].Panels[0].ImageFileName; got != "page_2_panel_1.jpg" {
			t.Errorf("期待値 'page_2_panel_1.jpg', 実際の値 '%s'", got)
		}
	})

	t.Run("JSONのキーが契約どおりであること", func(t *testing.T) {
		data, err := json.Marshal(pack)
		if err != nil {
			t.Fatalf("エンコードに失敗しました: %v", err)
		}
		out := string(data)
		for _, key := range []string{
			`"title"`, `"metadata"`, `"artStyle"`, `"themeAndTone"`, `"language"`, `"date"`,
			`"chapters"`, `"chapterNumber"`, `"panels"`, `"index"`, `"caption"`,
			`"visualPrompt"`, `"imageFileName"`,
		} {
			if !strings.Contains(out, key) {
				t.Errorf("キー %s が出力に含まれていません", key)
			}
		}
	})
}
